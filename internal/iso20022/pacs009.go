package iso20022

import "encoding/xml"

// NamespacePacs009 is the target namespace for financial-institution credit
// transfers (MT202 conversions).
const NamespacePacs009 = "urn:iso:std:iso:20022:tech:xsd:pacs.009.001.08"

// Pacs009Document is the root element of a pacs.009.001.08 message.
type Pacs009Document struct {
	XMLName  xml.Name                           `xml:"Document"`
	Xmlns    string                             `xml:"xmlns,attr"`
	XmlnsXSI string                             `xml:"xmlns:xsi,attr"`
	FICdtTrf FinancialInstitutionCreditTransfer `xml:"FICdtTrf"`
}

// NewPacs009Document wraps the message body in a namespaced Document root.
func NewPacs009Document(msg FinancialInstitutionCreditTransfer) *Pacs009Document {
	return &Pacs009Document{
		Xmlns:    NamespacePacs009,
		XmlnsXSI: NamespaceXSI,
		FICdtTrf: msg,
	}
}

// FinancialInstitutionCreditTransfer is the pacs.009 message body
// (FinancialInstitutionCreditTransferV08).
type FinancialInstitutionCreditTransfer struct {
	GrpHdr      Pacs009GroupHeader   `xml:"GrpHdr"`
	CdtTrfTxInf []Pacs009Transaction `xml:"CdtTrfTxInf"`
}

// Pacs009GroupHeader is emitted exactly once per document (GroupHeader93).
type Pacs009GroupHeader struct {
	MsgID    string                `xml:"MsgId"`
	CreDtTm  string                `xml:"CreDtTm"`
	NbOfTxs  string                `xml:"NbOfTxs"`
	SttlmInf SettlementInstruction `xml:"SttlmInf"`
	InstgAgt *Agent                `xml:"InstgAgt,omitempty"`
	InstdAgt *Agent                `xml:"InstdAgt,omitempty"`
}

// Pacs009Transaction is one institution-to-institution transfer
// (CreditTransferTransaction36). Creditor and creditor agent are both
// institution identifications.
type Pacs009Transaction struct {
	PmtID          PaymentID              `xml:"PmtId"`
	IntrBkSttlmAmt Amount                 `xml:"IntrBkSttlmAmt"`
	IntrBkSttlmDt  string                 `xml:"IntrBkSttlmDt,omitempty"`
	ChrgBr         string                 `xml:"ChrgBr,omitempty"`
	InstgAgt       *Agent                 `xml:"InstgAgt,omitempty"`
	InstdAgt       *Agent                 `xml:"InstdAgt,omitempty"`
	IntrmyAgt1     *Agent                 `xml:"IntrmyAgt1,omitempty"`
	CdtrAgt        Agent                  `xml:"CdtrAgt"`
	Cdtr           Agent                  `xml:"Cdtr"`
	RmtInf         *RemittanceInformation `xml:"RmtInf,omitempty"`
}
