// Package mt202 converts general financial institution transfers (MT202) into
// pacs.009.001.08 documents. MT202 is always a single transaction between
// institutions; no customer parties occur, and the creditor of the target
// document is the beneficiary institution itself.
package mt202

import (
	"time"

	"github.com/Ejyke90/iso20022-migration-service/internal/converr"
	"github.com/Ejyke90/iso20022-migration-service/internal/converter"
	"github.com/Ejyke90/iso20022-migration-service/internal/iso20022"
	"github.com/Ejyke90/iso20022-migration-service/internal/logging"
	"github.com/Ejyke90/iso20022-migration-service/internal/normalize"
	"github.com/Ejyke90/iso20022-migration-service/internal/swift"
)

const messageType = "MT202"

// tagTable lists the fields recognized in an MT202 message body.
var tagTable = []swift.TagSpec{
	{Name: "transaction_ref", Base: "20", Mandatory: true},
	{Name: "related_ref", Base: "21"},
	{Name: "value_date_currency_amount", Base: "32", Variants: []string{"A"}, Mandatory: true},
	{Name: "ordering_institution", Base: "52", Variants: []string{"A", "D"}, Mandatory: true},
	{Name: "senders_correspondent", Base: "53", Variants: []string{"A", "B", "D"}},
	{Name: "receivers_correspondent", Base: "54", Variants: []string{"A", "B", "D"}},
	{Name: "intermediary", Base: "56", Variants: []string{"A", "C", "D"}},
	{Name: "account_with", Base: "57", Variants: []string{"A", "B", "C", "D"}},
	{Name: "beneficiary_institution", Base: "58", Variants: []string{"A", "D"}, Mandatory: true},
	{Name: "sender_to_receiver_info", Base: "72"},
}

// Converter converts MT202 message text into pacs.009 XML.
type Converter struct {
	logger logging.Logger
	now    func() time.Time
}

// New returns an MT202 converter logging through the given logger.
func New(logger logging.Logger) *Converter {
	return &Converter{
		logger: logger.WithField(logging.FieldConverter, messageType),
		now:    time.Now,
	}
}

// Convert parses the raw message, validates and normalizes its fields and
// renders the resulting pacs.009 document.
func (c *Converter) Convert(raw string) (string, error) {
	fields, err := swift.Extract(messageType, raw, tagTable)
	if err != nil {
		return "", err
	}

	date, currency, amount, err := normalize.DateCurrencyAmount(messageType, fields.Value("value_date_currency_amount"))
	if err != nil {
		return "", err
	}

	ordering := swift.DecomposeInstitution(fields.Text("ordering_institution"))
	beneficiary := swift.DecomposeInstitution(fields.Text("beneficiary_institution"))
	if beneficiary.BIC == "" && beneficiary.Name == "" {
		c.logger.Warn("beneficiary institution has neither BIC nor name")
	}

	ref := fields.Value("transaction_ref")
	endToEnd := fields.Value("related_ref")
	if endToEnd == "" {
		endToEnd = ref
	}

	creditorAgent := iso20022.Agent{FinInstnID: iso20022.FinancialInstitutionID{
		BICFI: beneficiary.BIC,
		Nm:    beneficiary.Name,
	}}

	now := c.now()
	tx := iso20022.Pacs009Transaction{
		PmtID: iso20022.PaymentID{
			EndToEndID: converter.Truncate(endToEnd, converter.MaxIDLength),
			TxID:       converter.Truncate(ref, converter.MaxIDLength),
		},
		IntrBkSttlmAmt: iso20022.Amount{Value: amount.String(), Ccy: currency},
		IntrBkSttlmDt:  date,
		ChrgBr:         normalize.ChargeBearerSHAR,
		InstgAgt:       converter.ISOAgent(ordering),
		IntrmyAgt1:     converter.ISOAgent(swift.DecomposeInstitution(fields.Text("intermediary"))),
		CdtrAgt:        creditorAgent,
		Cdtr:           creditorAgent,
		RmtInf:         converter.ISORemittance(fields.Text("sender_to_receiver_info")),
	}

	doc := iso20022.NewPacs009Document(iso20022.FinancialInstitutionCreditTransfer{
		GrpHdr: iso20022.Pacs009GroupHeader{
			MsgID:    converter.NewMessageID(ref, now),
			CreDtTm:  iso20022.FormatDateTime(now.UTC()),
			NbOfTxs:  "1",
			SttlmInf: iso20022.SettlementInstruction{SttlmMtd: iso20022.SettlementMethodINDA},
			InstgAgt: converter.ISOAgent(ordering),
		},
		CdtTrfTxInf: []iso20022.Pacs009Transaction{tx},
	})

	out, err := iso20022.Marshal(doc)
	if err != nil {
		return "", &converr.ConversionError{MessageType: messageType, Err: err}
	}

	c.logger.Debug("message converted",
		logging.Field{Key: logging.FieldTag, Value: ref})
	return out, nil
}
