package render

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatterMoney(t *testing.T) {
	f := NewFormatter("usd")
	assert.Equal(t, "USD", f.Currency())

	tests := []struct {
		in   string
		want string
	}{
		{"10000", "$10,000.00"},
		{"0.5", "$0.50"},
		{"-2000.00", "-$2,000.00"},
		{"1.005", "$1.01"},
		{"0", "$0.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, f.Money(decimal.RequireFromString(tt.in)), "input %s", tt.in)
	}
}

func TestFormatterUnknownCurrency(t *testing.T) {
	f := NewFormatter("XYZ")
	assert.Equal(t, "12.30 XYZ", f.Money(decimal.RequireFromString("12.3")))
}

func TestFormatterOptional(t *testing.T) {
	f := NewFormatter("USD")
	assert.Equal(t, "", f.Optional(decimal.NullDecimal{}))
	assert.Equal(t, "$1.00", f.Optional(decimal.NewNullDecimal(decimal.NewFromInt(1))))
}

func TestFormatterBeyondInt64MinorUnits(t *testing.T) {
	f := NewFormatter("USD")

	tests := []struct {
		in   string
		want string
	}{
		{"100000000000000000", "100000000000000000.00 USD"},
		{"-100000000000000000", "-100000000000000000.00 USD"},
		{"92233720368547758.08", "92233720368547758.08 USD"},
		{"123456789012345678901234.567", "123456789012345678901234.57 USD"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, f.Money(decimal.RequireFromString(tt.in)), "input %s", tt.in)
	}

	// Largest amount that still fits is formatted normally.
	assert.Equal(t, "$92,233,720,368,547,758.07", f.Money(decimal.RequireFromString("92233720368547758.07")))
}
