// Package mt101 converts requests for transfer (MT101) into pain.001.001.09
// customer credit transfer initiation documents. MT101 messages carry one or
// more transaction legs anchored on :21: sequence markers; a message without
// markers counts as a single implicit leg.
package mt101

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

const (
	messageType   = "MT101"
	paymentMethod = "TRF"
)

// headerTable lists the message-level fields; :32B: is checked on the whole
// message so that a request with no amount anywhere fails before segmentation.
var headerTable = []swift.TagSpec{
	{Name: "transaction_ref", Base: "20", Mandatory: true},
	{Name: "value_date", Base: "30"},
	{Name: "instruction_code", Base: "23", Variants: []string{"E"}},
	{Name: "currency_amount", Base: "32", Variants: []string{"B"}, Mandatory: true},
	{Name: "ordering_customer", Base: "50", Variants: []string{"K", "F"}, Mandatory: true},
	{Name: "ordering_institution", Base: "52", Variants: []string{"A", "D"}},
	{Name: "account_with", Base: "57", Variants: []string{"A", "C", "D"}},
	{Name: "details_of_charges", Base: "71", Variants: []string{"A"}},
	{Name: "remittance_info", Base: "70"},
}

// legTable lists the per-transaction fields extracted from each :21: block.
var legTable = []swift.TagSpec{
	{Name: "sequence", Base: "21"},
	{Name: "currency_amount", Base: "32", Variants: []string{"B"}, Mandatory: true},
	{Name: "beneficiary", Base: "59"},
	{Name: "beneficiary_institution", Base: "57", Variants: []string{"A", "C", "D"}},
	{Name: "remittance_info", Base: "70"},
}

// Converter converts MT101 message text into pain.001 XML.
type Converter struct {
	logger logging.Logger
	now    func() time.Time
	// strictCharges fails on unknown :71A: codes instead of defaulting to SHAR.
	strictCharges bool
}

// Option adjusts converter behavior.
type Option func(*Converter)

// WithStrictCharges makes unknown charge codes a validation failure.
func WithStrictCharges() Option {
	return func(c *Converter) { c.strictCharges = true }
}

// New returns an MT101 converter logging through the given logger.
func New(logger logging.Logger, opts ...Option) *Converter {
	c := &Converter{
		logger: logger.WithField(logging.FieldConverter, messageType),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert parses the raw message, segments it into transaction legs and
// renders the resulting pain.001 document.
func (c *Converter) Convert(raw string) (string, error) {
	fields, err := swift.Extract(messageType, raw, headerTable)
	if err != nil {
		return "", err
	}

	now := c.now()
	ref := fields.Value("transaction_ref")
	chargeBearer, err := c.chargeBearer(fields)
	if err != nil {
		return "", err
	}

	executionDate, err := c.executionDate(fields, now)
	if err != nil {
		return "", err
	}

	headerAgent := swift.DecomposeInstitution(fields.Text("account_with"))
	blocks := swift.Segment(raw, "21", true)
	transactions := make([]iso20022.Pain001Transaction, 0, len(blocks))
	for i, block := range blocks {
		tx, err := c.buildTransaction(i, block, headerAgent, chargeBearer)
		if err != nil {
			return "", err
		}
		transactions = append(transactions, tx)
	}

	ordering := swift.DecomposeParty(fields.Text("ordering_customer"))
	if ordering.Name == "" {
		c.logger.Warn("ordering customer has no name, substituting placeholder")
	}

	count := fmt.Sprintf("%d", len(transactions))
	doc := iso20022.NewPain001Document(iso20022.CustomerCreditTransferInitiation{
		GrpHdr: iso20022.Pain001GroupHeader{
			MsgID:    converter.NewMessageID(ref, now),
			CreDtTm:  iso20022.FormatDateTime(now.UTC()),
			NbOfTxs:  count,
			InitgPty: iso20022.Party{Nm: nameOr(ordering.Name, "Unknown Initiator")},
		},
		PmtInf: []iso20022.PaymentInstruction{{
			PmtInfID:    converter.Truncate("PMT"+converter.Truncate(ref, 30), converter.MaxIDLength),
			PmtMtd:      paymentMethod,
			NbOfTxs:     count,
			ReqdExctnDt: iso20022.DateChoice{Dt: executionDate},
			Dbtr:        converter.ISOParty(ordering, "Unknown Debtor"),
			DbtrAcct:    converter.ISOAccountOrUnknown(ordering.Account),
			DbtrAgt:     debtorAgent(fields.Text("ordering_institution")),
			ChrgBr:      chargeBearer,
			CdtTrfTxInf: transactions,
		}},
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
// account-with institution serves as creditor agent when the leg carries none.
func (c *Converter) buildTransaction(index int, block swift.Block, headerAgent swift.PartyInfo, chargeBearer string) (iso20022.Pain001Transaction, error) {
	var tx iso20022.Pain001Transaction

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

	agentInfo := headerAgent
	if legAgent := swift.DecomposeInstitution(fields.Text("beneficiary_institution")); !legAgent.IsEmpty() {
		agentInfo = legAgent
	}

	endToEnd := block.Sequence
	if endToEnd == "" {
		endToEnd = fmt.Sprintf("E2E%03d", index+1)
	}

	tx = iso20022.Pain001Transaction{
		PmtID: iso20022.Pain001PaymentID{
			InstrID:    fmt.Sprintf("INSTR%03d", index+1),
			EndToEndID: converter.Truncate(endToEnd, converter.MaxIDLength),
		},
		Amt:      iso20022.InstructedAmount{InstdAmt: iso20022.Amount{Value: amount.String(), Ccy: currency}},
		ChrgBr:   chargeBearer,
		CdtrAgt:  converter.ISOAgent(agentInfo),
		Cdtr:     converter.ISOParty(beneficiary, "Unknown Beneficiary"),
		CdtrAcct: converter.ISOAccountOrUnknown(beneficiary.Account),
		RmtInf:   converter.ISORemittance(fields.Text("remittance_info")),
	}
	return tx, nil
}

// chargeBearer resolves the :71A: code. An absent field defaults to SHAR; an
// unknown code defaults to SHAR with a warning unless strict mode is on.
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

// executionDate resolves :30:, defaulting to the generation date when absent.
func (c *Converter) executionDate(fields swift.FieldSet, now time.Time) (string, error) {
	if fields.Has("value_date") {
		return normalize.Date(messageType, fields.Value("value_date"))
	}
	return now.UTC().Format(normalize.DateLayoutISO), nil
}

// debtorAgent builds the mandatory pain.001 debtor agent; the original emits
// an empty identification when :52a: is absent.
func debtorAgent(text string) iso20022.Agent {
	info := swift.DecomposeInstitution(text)
	return iso20022.Agent{FinInstnID: iso20022.FinancialInstitutionID{BICFI: info.BIC, Nm: info.Name}}
}

func nameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
