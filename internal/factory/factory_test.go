package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ejyke90/iso20022-migration-service/internal/converter"
	"github.com/Ejyke90/iso20022-migration-service/internal/logging"
)

func TestGet(t *testing.T) {
	logger := logging.NewLogrusAdapter("error", "text")

	for _, messageType := range []converter.Type{converter.MT103, converter.MT101, converter.MT102, converter.MT202} {
		conv, err := Get(messageType, logger)
		require.NoError(t, err, messageType)
		assert.NotNil(t, conv)
	}
}

func TestGetUnknownType(t *testing.T) {
	logger := logging.NewLogrusAdapter("error", "text")

	_, err := Get(converter.Type("mt999"), logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mt999")
}

func TestGetWithOptions(t *testing.T) {
	logger := logging.NewLogrusAdapter("error", "text")

	conv, err := GetWithOptions(converter.MT101, logger, Options{StrictChargeCodes: true})
	require.NoError(t, err)

	// A strict MT101 converter rejects unknown charge codes.
	_, err = conv.Convert(":20:R1\n:50K:A\n:71A:XYZ\n:32B:EUR10,\n:59:B\n")
	assert.Error(t, err)

	conv, err = GetWithOptions(converter.MT101, logger, Options{})
	require.NoError(t, err)
	_, err = conv.Convert(":20:R1\n:50K:A\n:71A:XYZ\n:32B:EUR10,\n:59:B\n")
	assert.NoError(t, err)
}

func TestParseType(t *testing.T) {
	tests := []struct {
		input    string
		expected converter.Type
	}{
		{"mt103", converter.MT103},
		{"MT103", converter.MT103},
		{" mt202 ", converter.MT202},
		{"MT101", converter.MT101},
		{"mt102", converter.MT102},
	}

	for _, tt := range tests {
		got, err := ParseType(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, got)
	}

	_, err := ParseType("camt053")
	assert.Error(t, err)
}
