package converr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	parseErr := &ParseError{MessageType: "MT103", Reason: "empty message"}
	assert.Equal(t, "MT103: cannot parse message: empty message", parseErr.Error())

	missingErr := &MissingFieldError{MessageType: "MT103", Tag: ":32A:", FieldName: "value_date_currency_amount"}
	assert.Contains(t, missingErr.Error(), ":32A:")
	assert.Contains(t, missingErr.Error(), "missing")

	validationErr := &ValidationError{MessageType: "MT103", Field: "amount", Value: "-5", Reason: "amount must be positive"}
	assert.Contains(t, validationErr.Error(), "invalid amount")
	assert.Contains(t, validationErr.Error(), "-5")
}

func TestConversionErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &ConversionError{MessageType: "MT202", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "MT202")
}

func TestIsMissingField(t *testing.T) {
	err := &MissingFieldError{MessageType: "MT103", Tag: ":20:"}
	assert.True(t, IsMissingField(err))
	assert.True(t, IsMissingField(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsMissingField(errors.New("other")))
	assert.False(t, IsMissingField(nil))
}

func TestIsValidation(t *testing.T) {
	err := &ValidationError{MessageType: "MT103", Field: "value date"}
	assert.True(t, IsValidation(err))
	assert.True(t, IsValidation(&ConversionError{MessageType: "MT103", Err: err}))
	assert.False(t, IsValidation(&ParseError{MessageType: "MT103"}))
}
