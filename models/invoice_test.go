package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatInvoiceID(t *testing.T) {
	assert.Equal(t, "INV-00001", FormatInvoiceID(1))
	assert.Equal(t, "INV-00042", FormatInvoiceID(42))
	assert.Equal(t, "INV-123456", FormatInvoiceID(123456))
}

func TestParseInvoiceNumber(t *testing.T) {
	n, err := ParseInvoiceNumber("INV-00042")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = ParseInvoiceNumber("INV-123456")
	require.NoError(t, err)
	assert.Equal(t, 123456, n)

	_, err = ParseInvoiceNumber("42")
	require.Error(t, err)

	_, err = ParseInvoiceNumber("INV-abc")
	require.Error(t, err)
}

func TestBalanceMapArithmetic(t *testing.T) {
	b := ZeroBalances()
	b.Add(CurrencyUSD, decimal.NewFromInt(8))
	b.Sub(CurrencyUSD, decimal.NewFromInt(3))
	b.Add(CurrencySYP, decimal.NewFromInt(100000))

	assert.True(t, b.Get(CurrencyUSD).Equal(decimal.NewFromInt(5)))
	assert.True(t, b.Get(CurrencySYP).Equal(decimal.NewFromInt(100000)))
	assert.True(t, b.Get(CurrencyTRY).IsZero())
}

func TestNormalizedDropsUnknownCurrencies(t *testing.T) {
	b := BalanceMap{
		CurrencyUSD:     decimal.NewFromInt(5),
		Currency("EUR"): decimal.NewFromInt(9),
	}
	out := b.Normalized()
	assert.True(t, out.Get(CurrencyUSD).Equal(decimal.NewFromInt(5)))
	assert.True(t, out.Get(CurrencySYP).IsZero())
	_, hasEur := out[Currency("EUR")]
	assert.False(t, hasEur)
}
