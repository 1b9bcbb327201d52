// Package mt103 converts single customer credit transfers (MT103) into
// pacs.008.001.08 FI-to-FI customer credit transfer documents.
package mt103

import (
	"time"

	"github.com/Ejyke90/iso20022-migration-service/internal/converr"
	"github.com/Ejyke90/iso20022-migration-service/internal/converter"
	"github.com/Ejyke90/iso20022-migration-service/internal/iso20022"
	"github.com/Ejyke90/iso20022-migration-service/internal/logging"
	"github.com/Ejyke90/iso20022-migration-service/internal/normalize"
	"github.com/Ejyke90/iso20022-migration-service/internal/swift"
)

const messageType = "MT103"

// tagTable lists the fields recognized in an MT103 message body.
var tagTable = []swift.TagSpec{
	{Name: "transaction_ref", Base: "20", Mandatory: true},
	{Name: "bank_operation_code", Base: "23", Variants: []string{"B"}},
	{Name: "instruction_code", Base: "23", Variants: []string{"E"}},
	{Name: "transaction_type_code", Base: "26", Variants: []string{"T"}},
	{Name: "value_date_currency_amount", Base: "32", Variants: []string{"A"}, Mandatory: true},
	{Name: "instructed_currency_amount", Base: "33", Variants: []string{"B"}},
	{Name: "exchange_rate", Base: "36"},
	{Name: "ordering_customer", Base: "50", Variants: []string{"K"}, Mandatory: true},
	{Name: "ordering_institution", Base: "52", Variants: []string{"A", "D"}},
	{Name: "sender_correspondent", Base: "53", Variants: []string{"A", "B", "D"}},
	{Name: "receiver_correspondent", Base: "54", Variants: []string{"A", "B", "D"}},
	{Name: "intermediary", Base: "56", Variants: []string{"A", "C", "D"}},
	{Name: "account_with", Base: "57", Variants: []string{"A", "B", "C", "D"}},
	{Name: "beneficiary_customer", Base: "59", Mandatory: true},
	{Name: "remittance_info", Base: "70"},
	{Name: "details_of_charges", Base: "71", Variants: []string{"A"}, Mandatory: true},
	{Name: "sender_charges", Base: "71", Variants: []string{"F"}},
	{Name: "receiver_charges", Base: "71", Variants: []string{"G"}},
	{Name: "sender_to_receiver_info", Base: "72"},
}

// Converter converts MT103 message text into pacs.008 XML.
type Converter struct {
	logger  logging.Logger
	now     func() time.Time
	newUETR func() string
}

// New returns an MT103 converter logging through the given logger.
func New(logger logging.Logger) *Converter {
	return &Converter{
		logger:  logger.WithField(logging.FieldConverter, messageType),
		now:     time.Now,
		newUETR: converter.NewUETR,
	}
}

// Convert parses the raw message, validates and normalizes its fields and
// renders the resulting pacs.008 document. On any failure it returns an error
// from the converr taxonomy and no XML.
func (c *Converter) Convert(raw string) (string, error) {
	fields, err := swift.Extract(messageType, raw, tagTable)
	if err != nil {
		return "", err
	}

	tx, currency, err := c.buildTransaction(fields)
	if err != nil {
		return "", err
	}

	now := c.now()
	msgID := converter.NewMessageID(fields.Value("transaction_ref"), now)
	tx.PmtID.TxID = msgID

	doc := iso20022.NewPacs008Document(iso20022.FIToFICustomerCreditTransfer{
		GrpHdr: iso20022.Pacs008GroupHeader{
			MsgID:    msgID,
			CreDtTm:  iso20022.FormatDateTime(now.UTC()),
			NbOfTxs:  "1",
			SttlmInf: iso20022.SettlementInstruction{SttlmMtd: iso20022.SettlementMethodINDA},
		},
	})
	doc.FIToFICstmrCdtTrf.CdtTrfTxInf = []iso20022.CreditTransferTransaction{tx}

	out, err := iso20022.Marshal(doc)
	if err != nil {
		return "", &converr.ConversionError{MessageType: messageType, Err: err}
	}

	c.logger.Debug("message converted",
		logging.Field{Key: logging.FieldTag, Value: fields.Value("transaction_ref")},
		logging.Field{Key: "currency", Value: currency},
	)
	return out, nil
}

// buildTransaction normalizes the extracted fields into the single credit
// transfer leg. The settlement currency is returned for logging.
func (c *Converter) buildTransaction(fields swift.FieldSet) (iso20022.CreditTransferTransaction, string, error) {
	var tx iso20022.CreditTransferTransaction

	date, currency, amount, err := normalize.DateCurrencyAmount(messageType, fields.Value("value_date_currency_amount"))
	if err != nil {
		return tx, "", err
	}

	chargeBearer, err := normalize.ChargeBearer(messageType, fields.Value("details_of_charges"))
	if err != nil {
		return tx, "", err
	}

	ref := fields.Value("transaction_ref")
	debtor := swift.DecomposeParty(fields.Text("ordering_customer"))
	creditor := swift.DecomposeParty(fields.Text("beneficiary_customer"))
	c.warnUnnamed("debtor", debtor)
	c.warnUnnamed("creditor", creditor)

	tx = iso20022.CreditTransferTransaction{
		PmtID: iso20022.PaymentID{
			InstrID:    converter.Truncate(ref, converter.MaxIDLength),
			EndToEndID: converter.Truncate(ref, converter.MaxIDLength),
			UETR:       c.newUETR(),
		},
		IntrBkSttlmAmt: iso20022.Amount{Value: amount.String(), Ccy: currency},
		IntrBkSttlmDt:  date,
		ChrgBr:         chargeBearer,
		Dbtr:           converter.ISOParty(debtor, "UNKNOWN"),
		DbtrAcct:       converter.ISOAccount(debtor.Account, currency),
		DbtrAgt:        converter.ISOAgent(swift.DecomposeInstitution(fields.Text("ordering_institution"))),
		CdtrAgt:        converter.ISOAgent(swift.DecomposeInstitution(fields.Text("account_with"))),
		Cdtr:           converter.ISOParty(creditor, "UNKNOWN"),
		CdtrAcct:       converter.ISOAccount(creditor.Account, currency),
		RmtInf:         converter.ISORemittance(fields.Text("remittance_info")),
	}

	// Instructed amount and exchange rate are optional; a malformed value is
	// skipped rather than failing the conversion.
	if fields.Has("instructed_currency_amount") {
		if ccy, amt, err := normalize.CurrencyAmount(messageType, fields.Value("instructed_currency_amount")); err == nil {
			tx.InstdAmt = &iso20022.Amount{Value: amt.String(), Ccy: ccy}
		} else {
			c.logger.Debug("skipping malformed instructed amount",
				logging.Field{Key: logging.FieldTag, Value: ":33B:"})
		}
	}
	if fields.Has("exchange_rate") {
		if rate, err := normalize.Amount(messageType, fields.Value("exchange_rate")); err == nil {
			tx.XchgRate = rate.String()
		} else {
			c.logger.Debug("skipping malformed exchange rate",
				logging.Field{Key: logging.FieldTag, Value: ":36:"})
		}
	}

	return tx, currency, nil
}

func (c *Converter) warnUnnamed(role string, info swift.PartyInfo) {
	if info.Name == "" {
		c.logger.Warn("party has no name, substituting placeholder",
			logging.Field{Key: logging.FieldReason, Value: role + " name missing"})
	}
}
