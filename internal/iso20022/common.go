// Package iso20022 defines the target document trees for pacs.008, pain.001
// and pacs.009 messages and renders them as namespace-qualified XML.
//
// Struct field order follows the message definitions' schema order, which is
// what encoding/xml emits; downstream ISO 20022 consumers depend on that
// ordering. Optional components are pointers or omitempty strings so that
// absent values are omitted entirely, never emitted as empty elements.
package iso20022

import "time"

// DateTimeLayout renders creation timestamps without sub-second precision or
// an explicit offset, as the message definitions expect.
const DateTimeLayout = "2006-01-02T15:04:05"

// FormatDateTime renders t in the ISO 20022 date-time form.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// SettlementMethod1Code values.
const (
	SettlementMethodINDA = "INDA"
	SettlementMethodCLRG = "CLRG"
)

// Amount is a currency-and-amount element: exact decimal text as character
// data with the currency as attribute.
type Amount struct {
	Value string `xml:",chardata"`
	Ccy   string `xml:"Ccy,attr"`
}

// PostalAddress carries unstructured address lines (PostalAddress24).
type PostalAddress struct {
	AdrLine []string `xml:"AdrLine"`
}

// Party identifies a debtor, creditor or initiating party
// (PartyIdentification135).
type Party struct {
	Nm      string         `xml:"Nm,omitempty"`
	PstlAdr *PostalAddress `xml:"PstlAdr,omitempty"`
}

// OtherID is a generic account identification.
type OtherID struct {
	ID string `xml:"Id"`
}

// AccountID routes an account either as IBAN or as other identification.
type AccountID struct {
	IBAN string   `xml:"IBAN,omitempty"`
	Othr *OtherID `xml:"Othr,omitempty"`
}

// CashAccount is a debtor or creditor account (CashAccount38).
type CashAccount struct {
	ID  AccountID `xml:"Id"`
	Ccy string    `xml:"Ccy,omitempty"`
}

// FinancialInstitutionID identifies an institution by BIC and/or name
// (FinancialInstitutionIdentification18).
type FinancialInstitutionID struct {
	BICFI string `xml:"BICFI,omitempty"`
	Nm    string `xml:"Nm,omitempty"`
}

// Agent wraps an institution identification
// (BranchAndFinancialInstitutionIdentification6).
type Agent struct {
	FinInstnID FinancialInstitutionID `xml:"FinInstnId"`
}

// PaymentID carries the identifiers of one transaction (PaymentIdentification13).
type PaymentID struct {
	InstrID    string `xml:"InstrId,omitempty"`
	EndToEndID string `xml:"EndToEndId"`
	TxID       string `xml:"TxId,omitempty"`
	UETR       string `xml:"UETR,omitempty"`
}

// SettlementInstruction holds the settlement method (SettlementInstruction7).
type SettlementInstruction struct {
	SttlmMtd string `xml:"SttlmMtd"`
}

// RemittanceInformation carries unstructured remittance text
// (RemittanceInformation16).
type RemittanceInformation struct {
	Ustrd []string `xml:"Ustrd"`
}

// DateChoice wraps a date where the schema offers a date-or-datetime choice.
type DateChoice struct {
	Dt string `xml:"Dt"`
}
