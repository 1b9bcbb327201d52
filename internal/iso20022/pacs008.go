package iso20022

import "encoding/xml"

// NamespacePacs008 is the target namespace for FI-to-FI customer credit
// transfers (MT103 and MT102 conversions).
const NamespacePacs008 = "urn:iso:std:iso:20022:tech:xsd:pacs.008.001.08"

// Pacs008Document is the root element of a pacs.008.001.08 message.
type Pacs008Document struct {
	XMLName           xml.Name                     `xml:"Document"`
	Xmlns             string                       `xml:"xmlns,attr"`
	XmlnsXSI          string                       `xml:"xmlns:xsi,attr"`
	FIToFICstmrCdtTrf FIToFICustomerCreditTransfer `xml:"FIToFICstmrCdtTrf"`
}

// NewPacs008Document wraps the message body in a namespaced Document root.
func NewPacs008Document(msg FIToFICustomerCreditTransfer) *Pacs008Document {
	return &Pacs008Document{
		Xmlns:             NamespacePacs008,
		XmlnsXSI:          NamespaceXSI,
		FIToFICstmrCdtTrf: msg,
	}
}

// FIToFICustomerCreditTransfer is the pacs.008 message body
// (FIToFICustomerCreditTransferV08).
type FIToFICustomerCreditTransfer struct {
	GrpHdr      Pacs008GroupHeader          `xml:"GrpHdr"`
	CdtTrfTxInf []CreditTransferTransaction `xml:"CdtTrfTxInf"`
}

// Pacs008GroupHeader is emitted exactly once per document (GroupHeader93).
type Pacs008GroupHeader struct {
	MsgID             string                `xml:"MsgId"`
	CreDtTm           string                `xml:"CreDtTm"`
	NbOfTxs           string                `xml:"NbOfTxs"`
	TtlIntrBkSttlmAmt *Amount               `xml:"TtlIntrBkSttlmAmt,omitempty"`
	IntrBkSttlmDt     string                `xml:"IntrBkSttlmDt,omitempty"`
	SttlmInf          SettlementInstruction `xml:"SttlmInf"`
	InstgAgt          *Agent                `xml:"InstgAgt,omitempty"`
	InstdAgt          *Agent                `xml:"InstdAgt,omitempty"`
}

// CreditTransferTransaction is one credit transfer leg
// (CreditTransferTransaction39).
type CreditTransferTransaction struct {
	PmtID          PaymentID              `xml:"PmtId"`
	IntrBkSttlmAmt Amount                 `xml:"IntrBkSttlmAmt"`
	IntrBkSttlmDt  string                 `xml:"IntrBkSttlmDt,omitempty"`
	InstdAmt       *Amount                `xml:"InstdAmt,omitempty"`
	XchgRate       string                 `xml:"XchgRate,omitempty"`
	ChrgBr         string                 `xml:"ChrgBr"`
	InstgAgt       *Agent                 `xml:"InstgAgt,omitempty"`
	InstdAgt       *Agent                 `xml:"InstdAgt,omitempty"`
	Dbtr           Party                  `xml:"Dbtr"`
	DbtrAcct       *CashAccount           `xml:"DbtrAcct,omitempty"`
	DbtrAgt        *Agent                 `xml:"DbtrAgt,omitempty"`
	CdtrAgt        *Agent                 `xml:"CdtrAgt,omitempty"`
	Cdtr           Party                  `xml:"Cdtr"`
	CdtrAcct       *CashAccount           `xml:"CdtrAcct,omitempty"`
	RmtInf         *RemittanceInformation `xml:"RmtInf,omitempty"`
}
