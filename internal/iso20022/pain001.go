package iso20022

import "encoding/xml"

// NamespacePain001 is the target namespace for customer credit transfer
// initiations (MT101 conversions).
const NamespacePain001 = "urn:iso:std:iso:20022:tech:xsd:pain.001.001.09"

// Pain001Document is the root element of a pain.001.001.09 message.
type Pain001Document struct {
	XMLName         xml.Name                         `xml:"Document"`
	Xmlns           string                           `xml:"xmlns,attr"`
	XmlnsXSI        string                           `xml:"xmlns:xsi,attr"`
	CstmrCdtTrfInitn CustomerCreditTransferInitiation `xml:"CstmrCdtTrfInitn"`
}

// NewPain001Document wraps the message body in a namespaced Document root.
func NewPain001Document(msg CustomerCreditTransferInitiation) *Pain001Document {
	return &Pain001Document{
		Xmlns:            NamespacePain001,
		XmlnsXSI:         NamespaceXSI,
		CstmrCdtTrfInitn: msg,
	}
}

// CustomerCreditTransferInitiation is the pain.001 message body
// (CustomerCreditTransferInitiationV09).
type CustomerCreditTransferInitiation struct {
	GrpHdr Pain001GroupHeader   `xml:"GrpHdr"`
	PmtInf []PaymentInstruction `xml:"PmtInf"`
}

// Pain001GroupHeader is emitted exactly once per document (GroupHeader85).
type Pain001GroupHeader struct {
	MsgID    string `xml:"MsgId"`
	CreDtTm  string `xml:"CreDtTm"`
	NbOfTxs  string `xml:"NbOfTxs"`
	InitgPty Party  `xml:"InitgPty"`
}

// PaymentInstruction groups the debtor side with its transactions
// (PaymentInstruction30).
type PaymentInstruction struct {
	PmtInfID    string               `xml:"PmtInfId"`
	PmtMtd      string               `xml:"PmtMtd"`
	NbOfTxs     string               `xml:"NbOfTxs"`
	ReqdExctnDt DateChoice           `xml:"ReqdExctnDt"`
	Dbtr        Party                `xml:"Dbtr"`
	DbtrAcct    CashAccount          `xml:"DbtrAcct"`
	DbtrAgt     Agent                `xml:"DbtrAgt"`
	ChrgBr      string               `xml:"ChrgBr,omitempty"`
	CdtTrfTxInf []Pain001Transaction `xml:"CdtTrfTxInf"`
}

// Pain001PaymentID carries the per-transaction identifiers
// (PaymentIdentification6).
type Pain001PaymentID struct {
	InstrID    string `xml:"InstrId,omitempty"`
	EndToEndID string `xml:"EndToEndId"`
}

// InstructedAmount wraps the instructed amount choice (AmountType4Choice).
type InstructedAmount struct {
	InstdAmt Amount `xml:"InstdAmt"`
}

// Pain001Transaction is one credit transfer leg
// (CreditTransferTransaction34).
type Pain001Transaction struct {
	PmtID    Pain001PaymentID       `xml:"PmtId"`
	Amt      InstructedAmount       `xml:"Amt"`
	ChrgBr   string                 `xml:"ChrgBr,omitempty"`
	CdtrAgt  *Agent                 `xml:"CdtrAgt,omitempty"`
	Cdtr     Party                  `xml:"Cdtr"`
	CdtrAcct CashAccount            `xml:"CdtrAcct"`
	RmtInf   *RemittanceInformation `xml:"RmtInf,omitempty"`
}
