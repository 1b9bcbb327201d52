// Package normalize converts SWIFT primitive encodings into the target-schema
// primitives used by the document mappers: six-digit dates into ISO 8601,
// comma-decimal amounts into exact decimals, three-letter charge codes into
// ISO 20022 charge-bearer codes and account strings into IBAN-vs-other routing.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ejyke90/iso20022-migration-service/internal/converr"
)

// DateLayoutISO is the ISO 8601 date layout produced for all value dates.
const DateLayoutISO = "2006-01-02"

// ISO 20022 ChargeBearerType1Code values.
const (
	ChargeBearerDEBT = "DEBT"
	ChargeBearerCRED = "CRED"
	ChargeBearerSHAR = "SHAR"
)

var chargeBearerCodes = map[string]string{
	"OUR": ChargeBearerDEBT,
	"BEN": ChargeBearerCRED,
	"SHA": ChargeBearerSHAR,
}

// ibanCountryPrefixes is the allow-list of IBAN-issuing country codes the
// source system routes as IBAN. This is a documented heuristic, not IBAN
// validation: no checksum, no length-per-country check.
var ibanCountryPrefixes = []string{"GB", "DE", "FR", "IT"}

var (
	dateCurrencyAmountPattern = regexp.MustCompile(`^(\d{6})([A-Z]{3})([\d,\.]+)$`)
	currencyAmountPattern     = regexp.MustCompile(`^([A-Z]{3})([\d,\.]+)$`)
)

// Date converts a six-digit SWIFT date (YYMMDD) to ISO 8601 (YYYY-MM-DD).
// Two-digit years 00-49 map to 2000-2049 and 50-99 to 1950-1999. Invalid
// calendar dates fail with a ValidationError.
func Date(messageType, raw string) (string, error) {
	if len(raw) != 6 {
		return "", invalidDate(messageType, raw, "expected YYMMDD")
	}
	yy, errY := strconv.Atoi(raw[0:2])
	mm, errM := strconv.Atoi(raw[2:4])
	dd, errD := strconv.Atoi(raw[4:6])
	if errY != nil || errM != nil || errD != nil {
		return "", invalidDate(messageType, raw, "expected YYMMDD")
	}

	yyyy := 1900 + yy
	if yy < 50 {
		yyyy = 2000 + yy
	}

	// time.Date normalizes out-of-range components, so round-trip the parts
	// to reject dates like month 13 or February 30.
	t := time.Date(yyyy, time.Month(mm), dd, 0, 0, 0, 0, time.UTC)
	if t.Year() != yyyy || int(t.Month()) != mm || t.Day() != dd {
		return "", invalidDate(messageType, raw, "not a calendar date")
	}

	return t.Format(DateLayoutISO), nil
}

// Amount parses a SWIFT amount, where "," is the decimal separator and
// thousands separators do not occur, into an exact decimal. The value must be
// strictly positive. The source precision is preserved: "10000," parses to
// exactly 10000 and "1234,56" to 1234.56.
func Amount(messageType, raw string) (decimal.Decimal, error) {
	standardized := standardizeAmount(raw)
	if standardized == "" {
		return decimal.Zero, invalidAmount(messageType, raw, "empty amount")
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, invalidAmount(messageType, raw, "not a decimal number")
	}
	if !amount.IsPositive() {
		return decimal.Zero, invalidAmount(messageType, raw, "amount must be positive")
	}

	return amount, nil
}

// standardizeAmount converts the SWIFT comma-decimal convention into a form
// decimal.NewFromString accepts. A single comma becomes the decimal point; a
// trailing separator with no fractional digits is dropped.
func standardizeAmount(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.Count(s, ",") > 1 || (strings.Contains(s, ",") && strings.Contains(s, ".")) {
		return ""
	}
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.TrimSuffix(s, ".")
	return s
}

// DateCurrencyAmount splits a :32A: field body (YYMMDD + currency + amount)
// into its normalized components.
func DateCurrencyAmount(messageType, raw string) (date, currency string, amount decimal.Decimal, err error) {
	m := dateCurrencyAmountPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "", "", decimal.Zero, &converr.ValidationError{
			MessageType: messageType,
			Field:       "value date/currency/amount",
			Value:       raw,
			Reason:      "expected YYMMDD, 3-letter currency and amount",
		}
	}
	if date, err = Date(messageType, m[1]); err != nil {
		return "", "", decimal.Zero, err
	}
	if amount, err = Amount(messageType, m[3]); err != nil {
		return "", "", decimal.Zero, err
	}
	return date, m[2], amount, nil
}

// CurrencyAmount splits a :32B: field body (currency + amount) into its
// normalized components.
func CurrencyAmount(messageType, raw string) (currency string, amount decimal.Decimal, err error) {
	m := currencyAmountPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "", decimal.Zero, &converr.ValidationError{
			MessageType: messageType,
			Field:       "currency/amount",
			Value:       raw,
			Reason:      "expected 3-letter currency and amount",
		}
	}
	if amount, err = Amount(messageType, m[2]); err != nil {
		return "", decimal.Zero, err
	}
	return m[1], amount, nil
}

// ChargeBearer maps a SWIFT charge code (OUR/BEN/SHA) to the ISO 20022
// charge-bearer code, failing with a ValidationError on anything else.
func ChargeBearer(messageType, code string) (string, error) {
	if mapped, ok := chargeBearerCodes[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return mapped, nil
	}
	return "", &converr.ValidationError{
		MessageType: messageType,
		Field:       "charge bearer code",
		Value:       code,
		Reason:      "expected OUR, BEN or SHA",
	}
}

// ChargeBearerKnown reports whether the SWIFT charge code has a mapping.
// Permissive converters use it to decide when to fall back to SHAR.
func ChargeBearerKnown(code string) bool {
	_, ok := chargeBearerCodes[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// IsIBANShaped classifies an account string: true when its two-letter prefix
// is on the IBAN-issuing country allow-list, in which case it is emitted as an
// IBAN identification; everything else becomes a generic other identification.
func IsIBANShaped(account string) bool {
	for _, prefix := range ibanCountryPrefixes {
		if strings.HasPrefix(account, prefix) {
			return true
		}
	}
	return false
}

func invalidDate(messageType, raw, reason string) error {
	return &converr.ValidationError{MessageType: messageType, Field: "value date", Value: raw, Reason: reason}
}

func invalidAmount(messageType, raw, reason string) error {
	return &converr.ValidationError{MessageType: messageType, Field: "amount", Value: raw, Reason: reason}
}
