package mt103

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ejyke90/iso20022-migration-service/internal/converr"
	"github.com/Ejyke90/iso20022-migration-service/internal/logging"
	"github.com/Ejyke90/iso20022-migration-service/internal/xmlutils"
)

const sampleMessage = `:20:REF123456
:23B:CRED
:32A:231005EUR1234,56
:33B:USD1350,00
:36:1,0934
:50K:/1234567890
JOHN DOE
123 MAIN ST
:52A:DEUTDEFF
:57A:CHASUS33
:59:/GB29NWBK60161331926819
JANE SMITH
456 OAK AVE
:70:INVOICE 42
:71A:SHA
`

func newTestConverter() *Converter {
	c := New(logging.NewLogrusAdapter("error", "text"))
	c.now = func() time.Time { return time.Date(2023, 10, 5, 12, 0, 0, 0, time.UTC) }
	c.newUETR = func() string { return "97ed4827-7b6f-4491-a06f-b548d5a7512d" }
	return c
}

func extract(t *testing.T, xmlText, xpath string) string {
	t.Helper()
	root, err := xmlutils.ParseXML(xmlText)
	require.NoError(t, err)
	value, err := xmlutils.ExtractOne(root, xpath)
	require.NoError(t, err)
	return value
}

func TestConvert(t *testing.T) {
	out, err := newTestConverter().Convert(sampleMessage)
	require.NoError(t, err)

	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, `urn:iso:std:iso:20022:tech:xsd:pacs.008.001.08`)

	grpHdr := "/Document/FIToFICstmrCdtTrf/GrpHdr"
	assert.Equal(t, "REF123456_20231005120000", extract(t, out, grpHdr+"/MsgId"))
	assert.Equal(t, "2023-10-05T12:00:00", extract(t, out, grpHdr+"/CreDtTm"))
	assert.Equal(t, "1", extract(t, out, grpHdr+"/NbOfTxs"))
	assert.Equal(t, "INDA", extract(t, out, grpHdr+"/SttlmInf/SttlmMtd"))

	tx := "/Document/FIToFICstmrCdtTrf/CdtTrfTxInf"
	assert.Equal(t, "REF123456", extract(t, out, tx+"/PmtId/InstrId"))
	assert.Equal(t, "REF123456", extract(t, out, tx+"/PmtId/EndToEndId"))
	assert.Equal(t, "REF123456_20231005120000", extract(t, out, tx+"/PmtId/TxId"))
	assert.Equal(t, "97ed4827-7b6f-4491-a06f-b548d5a7512d", extract(t, out, tx+"/PmtId/UETR"))

	assert.Equal(t, "1234.56", extract(t, out, tx+"/IntrBkSttlmAmt"))
	assert.Equal(t, "EUR", extract(t, out, tx+"/IntrBkSttlmAmt/@Ccy"))
	assert.Equal(t, "2023-10-05", extract(t, out, tx+"/IntrBkSttlmDt"))
	assert.Equal(t, "1350.00", extract(t, out, tx+"/InstdAmt"))
	assert.Equal(t, "USD", extract(t, out, tx+"/InstdAmt/@Ccy"))
	assert.Equal(t, "1.0934", extract(t, out, tx+"/XchgRate"))
	assert.Equal(t, "SHAR", extract(t, out, tx+"/ChrgBr"))

	assert.Equal(t, "JOHN DOE", extract(t, out, tx+"/Dbtr/Nm"))
	assert.Equal(t, "123 MAIN ST", extract(t, out, tx+"/Dbtr/PstlAdr/AdrLine"))
	assert.Equal(t, "1234567890", extract(t, out, tx+"/DbtrAcct/Id/Othr/Id"))
	assert.Equal(t, "EUR", extract(t, out, tx+"/DbtrAcct/Ccy"))
	assert.Equal(t, "DEUTDEFF", extract(t, out, tx+"/DbtrAgt/FinInstnId/BICFI"))

	assert.Equal(t, "JANE SMITH", extract(t, out, tx+"/Cdtr/Nm"))
	assert.Equal(t, "GB29NWBK60161331926819", extract(t, out, tx+"/CdtrAcct/Id/IBAN"))
	assert.Equal(t, "CHASUS33", extract(t, out, tx+"/CdtrAgt/FinInstnId/BICFI"))
	assert.Equal(t, "INVOICE 42", extract(t, out, tx+"/RmtInf/Ustrd"))
}

func TestConvertChargeCodes(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"OUR", "DEBT"},
		{"BEN", "CRED"},
		{"SHA", "SHAR"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			raw := ":20:R1\n:32A:231005EUR10,\n:50K:A\n:59:B\n:71A:" + tt.code + "\n"
			out, err := newTestConverter().Convert(raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, extract(t, out, "/Document/FIToFICstmrCdtTrf/CdtTrfTxInf/ChrgBr"))
		})
	}
}

func TestConvertUnknownChargeCode(t *testing.T) {
	raw := ":20:R1\n:32A:231005EUR10,\n:50K:A\n:59:B\n:71A:XXX\n"

	_, err := newTestConverter().Convert(raw)
	require.Error(t, err)
	assert.True(t, converr.IsValidation(err))
}

func TestConvertMissingMandatory(t *testing.T) {
	base := map[string]string{
		":20:":  ":20:REF1\n",
		":32A:": ":32A:231005EUR10,\n",
		":50K:": ":50K:JOHN DOE\n",
		":59:":  ":59:JANE SMITH\n",
		":71A:": ":71A:SHA\n",
	}

	for missing := range base {
		t.Run(missing, func(t *testing.T) {
			raw := ""
			for tag, line := range base {
				if tag != missing {
					raw += line
				}
			}
			_, err := newTestConverter().Convert(raw)
			require.Error(t, err)
			assert.True(t, converr.IsMissingField(err))
			assert.Contains(t, err.Error(), missing)
		})
	}
}

func TestConvertEmptyInput(t *testing.T) {
	_, err := newTestConverter().Convert("")
	require.Error(t, err)
	var parseErr *converr.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestConvertInvalidDate(t *testing.T) {
	raw := ":20:R1\n:32A:231345EUR10,\n:50K:A\n:59:B\n:71A:SHA\n"

	_, err := newTestConverter().Convert(raw)
	require.Error(t, err)
	assert.True(t, converr.IsValidation(err))
}

func TestConvertDateCenturyPivot(t *testing.T) {
	tx := "/Document/FIToFICstmrCdtTrf/CdtTrfTxInf"

	out, err := newTestConverter().Convert(":20:R1\n:32A:500101EUR10,\n:50K:A\n:59:B\n:71A:SHA\n")
	require.NoError(t, err)
	assert.Equal(t, "1950-01-01", extract(t, out, tx+"/IntrBkSttlmDt"))

	out, err = newTestConverter().Convert(":20:R1\n:32A:491231EUR10,\n:50K:A\n:59:B\n:71A:SHA\n")
	require.NoError(t, err)
	assert.Equal(t, "2049-12-31", extract(t, out, tx+"/IntrBkSttlmDt"))
}

func TestConvertAmountPrecision(t *testing.T) {
	tx := "/Document/FIToFICstmrCdtTrf/CdtTrfTxInf"

	out, err := newTestConverter().Convert(":20:R1\n:32A:231005CHF10000,\n:50K:A\n:59:B\n:71A:SHA\n")
	require.NoError(t, err)
	assert.Equal(t, "10000", extract(t, out, tx+"/IntrBkSttlmAmt"))

	out, err = newTestConverter().Convert(":20:R1\n:32A:231005CHF1000000000,99\n:50K:A\n:59:B\n:71A:SHA\n")
	require.NoError(t, err)
	assert.Equal(t, "1000000000.99", extract(t, out, tx+"/IntrBkSttlmAmt"))
}

func TestConvertUnnamedPartyFallback(t *testing.T) {
	raw := ":20:R1\n:32A:231005EUR10,\n:50K:/1234567890\n:59:/9876543210\n:71A:SHA\n"

	out, err := newTestConverter().Convert(raw)
	require.NoError(t, err)

	tx := "/Document/FIToFICstmrCdtTrf/CdtTrfTxInf"
	assert.Equal(t, "UNKNOWN", extract(t, out, tx+"/Dbtr/Nm"))
	assert.Equal(t, "UNKNOWN", extract(t, out, tx+"/Cdtr/Nm"))
}

func TestConvertOptionalAgentsOmitted(t *testing.T) {
	raw := ":20:R1\n:32A:231005EUR10,\n:50K:A\n:59:B\n:71A:SHA\n"

	out, err := newTestConverter().Convert(raw)
	require.NoError(t, err)

	assert.NotContains(t, out, "<DbtrAgt>")
	assert.NotContains(t, out, "<CdtrAgt>")
	assert.NotContains(t, out, "<RmtInf>")
	assert.NotContains(t, out, "<InstdAmt")
}

func TestConvertMalformedOptionalSkipped(t *testing.T) {
	// A malformed :33B: or :36: must not fail the conversion.
	raw := ":20:R1\n:32A:231005EUR10,\n:33B:garbage\n:36:abc\n:50K:A\n:59:B\n:71A:SHA\n"

	out, err := newTestConverter().Convert(raw)
	require.NoError(t, err)
	assert.NotContains(t, out, "<InstdAmt")
	assert.NotContains(t, out, "<XchgRate>")
}

func TestConvertDeterministicWithFixedClock(t *testing.T) {
	c := newTestConverter()
	first, err := c.Convert(sampleMessage)
	require.NoError(t, err)
	second, err := c.Convert(sampleMessage)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestConvertStableModuloGeneratedValues(t *testing.T) {
	// With the real clock and UETR source, repeated conversions differ only in
	// message id, creation time and UETR.
	c := New(logging.NewLogrusAdapter("error", "text"))
	first, err := c.Convert(sampleMessage)
	require.NoError(t, err)
	second, err := c.Convert(sampleMessage)
	require.NoError(t, err)

	mask := func(s string) string {
		for _, pattern := range []string{
			`<MsgId>[^<]+</MsgId>`,
			`<CreDtTm>[^<]+</CreDtTm>`,
			`<TxId>[^<]+</TxId>`,
			`<UETR>[^<]+</UETR>`,
		} {
			s = regexp.MustCompile(pattern).ReplaceAllString(s, "")
		}
		return s
	}
	assert.Equal(t, mask(first), mask(second))
}
