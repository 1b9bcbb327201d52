package converter

import (
	"github.com/Ejyke90/iso20022-migration-service/internal/iso20022"
	"github.com/Ejyke90/iso20022-migration-service/internal/normalize"
	"github.com/Ejyke90/iso20022-migration-service/internal/swift"
)

// MaxRemittanceLength is the schema limit for unstructured remittance text.
const MaxRemittanceLength = 140

// ISOParty builds an ISO party from a decomposed descriptor. When no name was
// resolved the fallback literal is substituted; callers log that substitution.
func ISOParty(info swift.PartyInfo, fallbackName string) iso20022.Party {
	party := iso20022.Party{Nm: info.Name}
	if party.Nm == "" {
		party.Nm = fallbackName
	}
	if len(info.AddressLines) > 0 {
		party.PstlAdr = &iso20022.PostalAddress{AdrLine: info.AddressLines}
	}
	return party
}

// ISOAccountID routes a non-empty account string as IBAN or generic other
// identification, per the two-letter country-prefix heuristic.
func ISOAccountID(account string) iso20022.AccountID {
	if normalize.IsIBANShaped(account) {
		return iso20022.AccountID{IBAN: account}
	}
	return iso20022.AccountID{Othr: &iso20022.OtherID{ID: account}}
}

// ISOAccount builds an optional cash account; nil when no account identifier
// was present.
func ISOAccount(account, ccy string) *iso20022.CashAccount {
	if account == "" {
		return nil
	}
	return &iso20022.CashAccount{ID: ISOAccountID(account), Ccy: ccy}
}

// ISOAccountOrUnknown builds a mandatory cash account, falling back to a
// generic UNKNOWN identification when no account identifier was present.
func ISOAccountOrUnknown(account string) iso20022.CashAccount {
	if account == "" {
		return iso20022.CashAccount{ID: iso20022.AccountID{Othr: &iso20022.OtherID{ID: "UNKNOWN"}}}
	}
	return iso20022.CashAccount{ID: ISOAccountID(account)}
}

// ISOAgent builds an optional agent from a decomposed institution descriptor;
// nil when neither BIC nor name resolved.
func ISOAgent(info swift.PartyInfo) *iso20022.Agent {
	if info.BIC == "" && info.Name == "" {
		return nil
	}
	return &iso20022.Agent{FinInstnID: iso20022.FinancialInstitutionID{
		BICFI: info.BIC,
		Nm:    info.Name,
	}}
}

// ISORemittance builds optional remittance information, truncated to the
// schema limit; nil for empty text.
func ISORemittance(text string) *iso20022.RemittanceInformation {
	if text == "" {
		return nil
	}
	return &iso20022.RemittanceInformation{Ustrd: []string{Truncate(text, MaxRemittanceLength)}}
}
