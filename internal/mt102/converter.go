// Package mt102 converts multiple customer credit transfers (MT102) into
// pacs.008.001.08 documents carrying one credit transfer leg per :21: block.
// Unlike MT101, a message without any :21: marker is rejected: an empty leg
// list would violate the target document's cardinality.
package mt102

import (
	"fmt"
	"time"

	"github.com/Ejyke90/iso20022-migration-service/internal/converr"
	"github.com/Ejyke90/iso20022-migration-service/internal/converter"
	"github.com/Ejyke90/iso20022-migration-service/internal/iso20022"
	"github.com/Ejyke90/iso20022-migration-service/internal/logging"
	"github.com/Ejyke90/iso20022-migration-service/internal/normalize"
	"github.com/Ejyke90/iso20022-migration-service/internal/swift"
)

const messageType = "MT102"

// headerTable lists the message-level fields; :32A: carries the settlement
// date, currency and total amount for the whole message.
var headerTable = []swift.TagSpec{
	{Name: "transaction_ref", Base: "20", Mandatory: true},
	{Name: "value_date_currency_amount", Base: "32", Variants: []string{"A"}, Mandatory: true},
	{Name: "ordering_customer", Base: "50", Variants: []string{"K", "F"}, Mandatory: true},
	{Name: "ordering_institution", Base: "52", Variants: []string{"A", "D"}},
	{Name: "account_with", Base: "57", Variants: []string{"A", "C", "D"}},
	{Name: "details_of_charges", Base: "71", Variants: []string{"A"}},
}

// legTable lists the per-transaction fields extracted from each :21: block.
var legTable = []swift.TagSpec{
	{Name: "transaction_ref", Base: "21"},
	{Name: "currency_amount", Base: "32", Variants: []string{"B"}, Mandatory: true},
	{Name: "beneficiary", Base: "59"},
	{Name: "beneficiary_bank", Base: "57", Variants: []string{"A", "C", "D"}},
	{Name: "remittance_info", Base: "70"},
}

// Converter converts MT102 message text into pacs.008 XML.
type Converter struct {
	logger        logging.Logger
	now           func() time.Time
	newUETR       func() string
	strictCharges bool
}

// Option adjusts converter behavior.
type Option func(*Converter)

// WithStrictCharges makes unknown charge codes a validation failure.
func WithStrictCharges() Option {
	return func(c *Converter) { c.strictCharges = true }
}

// New returns an MT102 converter logging through the given logger.
func New(logger logging.Logger, opts ...Option) *Converter {
	c := &Converter{
		logger:  logger.WithField(logging.FieldConverter, messageType),
		now:     time.Now,
		newUETR: converter.NewUETR,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert parses the raw message, segments it into transaction legs and
// renders the resulting pacs.008 document.
func (c *Converter) Convert(raw string) (string, error) {
	fields, err := swift.Extract(messageType, raw, headerTable)
	if err != nil {
		return "", err
	}

	date, currency, total, err := normalize.DateCurrencyAmount(messageType, fields.Value("value_date_currency_amount"))
	if err != nil {
		return "", err
	}

	chargeBearer, err := c.chargeBearer(fields)
	if err != nil {
		return "", err
	}

	blocks := swift.Segment(raw, "21", false)
	if len(blocks) == 0 {
		return "", &converr.ValidationError{
			MessageType: messageType,
			Field:       "transaction blocks",
			Value:       "",
			Reason:      "no :21: transaction markers found",
		}
	}

	ordering := swift.DecomposeParty(fields.Text("ordering_customer"))
	if ordering.Name == "" {
		c.logger.Warn("ordering customer has no name, substituting placeholder")
	}
	orderingAgent := swift.DecomposeInstitution(fields.Text("ordering_institution"))

	transactions := make([]iso20022.CreditTransferTransaction, 0, len(blocks))
	for i, block := range blocks {
		tx, err := c.buildTransaction(i, block, ordering, orderingAgent, currency, chargeBearer)
		if err != nil {
			return "", err
		}
		transactions = append(transactions, tx)
	}

	now := c.now()
	ref := fields.Value("transaction_ref")
	doc := iso20022.NewPacs008Document(iso20022.FIToFICustomerCreditTransfer{
		GrpHdr: iso20022.Pacs008GroupHeader{
			MsgID:             converter.NewMessageID(ref, now),
			CreDtTm:           iso20022.FormatDateTime(now.UTC()),
			NbOfTxs:           fmt.Sprintf("%d", len(transactions)),
			TtlIntrBkSttlmAmt: &iso20022.Amount{Value: total.String(), Ccy: currency},
			IntrBkSttlmDt:     date,
			SttlmInf:          iso20022.SettlementInstruction{SttlmMtd: iso20022.SettlementMethodCLRG},
			InstgAgt:          converter.ISOAgent(orderingAgent),
		},
		CdtTrfTxInf: transactions,
	})

	out, err := iso20022.Marshal(doc)
	if err != nil {
		return "", &converr.ConversionError{MessageType: messageType, Err: err}
	}

	c.logger.Debug("message converted",
		logging.Field{Key: logging.FieldTag, Value: ref},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	)
	return out, nil
}

// buildTransaction maps one :21: block into a credit transfer leg. The header
// ordering customer is the debtor of every leg.
func (c *Converter) buildTransaction(index int, block swift.Block, ordering, orderingAgent swift.PartyInfo, headerCurrency, chargeBearer string) (iso20022.CreditTransferTransaction, error) {
	var tx iso20022.CreditTransferTransaction

	fields, err := swift.Extract(messageType, block.Text, legTable)
	if err != nil {
		return tx, err
	}

	currency, amount, err := normalize.CurrencyAmount(messageType, fields.Value("currency_amount"))
	if err != nil {
		return tx, err
	}

	beneficiary := swift.DecomposeParty(fields.Text("beneficiary"))
	if beneficiary.Name == "" {
		c.logger.Warn("beneficiary has no name, substituting placeholder",
			logging.Field{Key: "sequence", Value: block.Sequence})
	}

	endToEnd := block.Sequence
	if endToEnd == "" {
		endToEnd = fmt.Sprintf("E2E%03d", index+1)
	}

	debtorAcct := converter.ISOAccountOrUnknown(ordering.Account)
	debtorAcct.Ccy = headerCurrency
	creditorAcct := converter.ISOAccountOrUnknown(beneficiary.Account)
	creditorAcct.Ccy = currency

	tx = iso20022.CreditTransferTransaction{
		PmtID: iso20022.PaymentID{
			InstrID:    fmt.Sprintf("INSTR%03d", index+1),
			EndToEndID: converter.Truncate(endToEnd, converter.MaxIDLength),
			TxID:       fmt.Sprintf("TXN%03d", index+1),
			UETR:       c.newUETR(),
		},
		IntrBkSttlmAmt: iso20022.Amount{Value: amount.String(), Ccy: currency},
		ChrgBr:         chargeBearer,
		Dbtr:           converter.ISOParty(ordering, "Unknown Debtor"),
		DbtrAcct:       &debtorAcct,
		DbtrAgt:        converter.ISOAgent(orderingAgent),
		CdtrAgt:        converter.ISOAgent(swift.DecomposeInstitution(fields.Text("beneficiary_bank"))),
		Cdtr:           converter.ISOParty(beneficiary, "Unknown Creditor"),
		CdtrAcct:       &creditorAcct,
		RmtInf:         converter.ISORemittance(fields.Text("remittance_info")),
	}
	return tx, nil
}

// chargeBearer resolves :71A: like MT101: absent defaults to SHAR, unknown
// codes default to SHAR with a warning unless strict mode is on.
func (c *Converter) chargeBearer(fields swift.FieldSet) (string, error) {
	if !fields.Has("details_of_charges") {
		return normalize.ChargeBearerSHAR, nil
	}
	code := fields.Value("details_of_charges")
	if c.strictCharges || normalize.ChargeBearerKnown(code) {
		return normalize.ChargeBearer(messageType, code)
	}
	c.logger.Warn("unknown charge code, defaulting to SHAR",
		logging.Field{Key: logging.FieldReason, Value: code})
	return normalize.ChargeBearerSHAR, nil
}
