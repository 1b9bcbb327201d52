package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ejyke90/iso20022-migration-service/internal/converr"
)

func TestDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"current century", "231005", "2023-10-05"},
		{"pivot low edge", "000101", "2000-01-01"},
		{"pivot upper edge", "491231", "2049-12-31"},
		{"previous century", "500101", "1950-01-01"},
		{"end of previous century", "991231", "1999-12-31"},
		{"leap day", "240229", "2024-02-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Date("MT103", tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDateInvalid(t *testing.T) {
	for _, input := range []string{"", "2310", "23100532", "231305", "230230", "23AB05", "230229"} {
		_, err := Date("MT103", input)
		require.Error(t, err, input)
		assert.True(t, converr.IsValidation(err), input)
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1234,56", "1234.56"},
		{"10000,", "10000"},
		{"0,01", "0.01"},
		{"1234.56", "1234.56"},
		{"1000000000,99", "1000000000.99"},
		{"1234,50", "1234.50"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Amount("MT103", tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestAmountInvalid(t *testing.T) {
	for _, input := range []string{"", "0,", "0", "-5,00", "1,2,3", "1,234.56", "abc"} {
		_, err := Amount("MT103", input)
		require.Error(t, err, input)
		assert.True(t, converr.IsValidation(err), input)
	}
}

func TestDateCurrencyAmount(t *testing.T) {
	date, currency, amount, err := DateCurrencyAmount("MT103", "231005EUR1234,56")
	require.NoError(t, err)

	assert.Equal(t, "2023-10-05", date)
	assert.Equal(t, "EUR", currency)
	assert.Equal(t, "1234.56", amount.String())
}

func TestDateCurrencyAmountMalformed(t *testing.T) {
	for _, input := range []string{"", "EUR1234,56", "231005EU1234,56", "2310051234,56", "231005EUR"} {
		_, _, _, err := DateCurrencyAmount("MT103", input)
		require.Error(t, err, input)
		assert.True(t, converr.IsValidation(err), input)
	}
}

func TestCurrencyAmount(t *testing.T) {
	currency, amount, err := CurrencyAmount("MT101", "GBP250,75")
	require.NoError(t, err)

	assert.Equal(t, "GBP", currency)
	assert.Equal(t, "250.75", amount.String())
}

func TestCurrencyAmountMalformed(t *testing.T) {
	for _, input := range []string{"", "250,75", "GB250,75", "GBP"} {
		_, _, err := CurrencyAmount("MT101", input)
		require.Error(t, err, input)
	}
}

func TestChargeBearer(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"OUR", ChargeBearerDEBT},
		{"BEN", ChargeBearerCRED},
		{"SHA", ChargeBearerSHAR},
		{"sha", ChargeBearerSHAR},
		{" OUR ", ChargeBearerDEBT},
	}

	for _, tt := range tests {
		got, err := ChargeBearer("MT103", tt.code)
		require.NoError(t, err, tt.code)
		assert.Equal(t, tt.expected, got)
	}
}

func TestChargeBearerUnknown(t *testing.T) {
	_, err := ChargeBearer("MT103", "XXX")
	require.Error(t, err)
	assert.True(t, converr.IsValidation(err))
}

func TestChargeBearerKnown(t *testing.T) {
	assert.True(t, ChargeBearerKnown("OUR"))
	assert.True(t, ChargeBearerKnown("ben"))
	assert.False(t, ChargeBearerKnown("XYZ"))
	assert.False(t, ChargeBearerKnown(""))
}

func TestIsIBANShaped(t *testing.T) {
	assert.True(t, IsIBANShaped("GB29NWBK60161331926819"))
	assert.True(t, IsIBANShaped("DE89370400440532013000"))
	assert.True(t, IsIBANShaped("FR1420041010050500013M02606"))
	assert.True(t, IsIBANShaped("IT60X0542811101000000123456"))

	assert.False(t, IsIBANShaped("CH9300762011623852957"))
	assert.False(t, IsIBANShaped("1234567890"))
	assert.False(t, IsIBANShaped(""))
}
