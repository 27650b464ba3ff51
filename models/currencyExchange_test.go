package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRates() ExchangeRates {
	return ExchangeRates{
		USD: decimal.NewFromInt(14000),
		TRY: decimal.NewFromInt(450),
	}
}

func TestToSypMultipliesByRate(t *testing.T) {
	rates := testRates()

	syp, err := rates.ToSyp(Price{Amount: decimal.NewFromInt(100000), Currency: CurrencySYP})
	require.NoError(t, err)
	assert.True(t, syp.Equal(decimal.NewFromInt(100000)))

	usd, err := rates.ToSyp(Price{Amount: decimal.NewFromInt(8), Currency: CurrencyUSD})
	require.NoError(t, err)
	assert.True(t, usd.Equal(decimal.NewFromInt(112000)))

	try, err := rates.ToSyp(Price{Amount: decimal.NewFromInt(10), Currency: CurrencyTRY})
	require.NoError(t, err)
	assert.True(t, try.Equal(decimal.NewFromInt(4500)))
}

func TestFromSypDividesByRate(t *testing.T) {
	rates := testRates()

	usd, err := rates.FromSyp(decimal.NewFromInt(112000), CurrencyUSD)
	require.NoError(t, err)
	assert.True(t, usd.Equal(decimal.NewFromInt(8)))

	syp, err := rates.FromSyp(decimal.NewFromInt(5000), CurrencySYP)
	require.NoError(t, err)
	assert.True(t, syp.Equal(decimal.NewFromInt(5000)))
}

func TestRoundTripPreservesValue(t *testing.T) {
	rates := testRates()

	original := decimal.RequireFromString("123.45")
	syp, err := rates.ToSyp(Price{Amount: original, Currency: CurrencyUSD})
	require.NoError(t, err)
	back, err := rates.FromSyp(syp, CurrencyUSD)
	require.NoError(t, err)
	assert.True(t, back.Equal(original), "got %s", back)
}

func TestInvalidRatesRejected(t *testing.T) {
	bad := ExchangeRates{USD: decimal.Zero, TRY: decimal.NewFromInt(450)}
	require.Error(t, bad.Validate())

	negative := ExchangeRates{USD: decimal.NewFromInt(14000), TRY: decimal.NewFromInt(-1)}
	require.Error(t, negative.Validate())

	_, err := bad.ToSyp(Price{Amount: decimal.NewFromInt(1), Currency: CurrencyUSD})
	require.Error(t, err)

	// SYP conversion is identity and never touches the rates.
	syp, err := bad.ToSyp(Price{Amount: decimal.NewFromInt(1), Currency: CurrencySYP})
	require.NoError(t, err)
	assert.True(t, syp.Equal(decimal.NewFromInt(1)))
}

func TestUnknownCurrencyRejected(t *testing.T) {
	rates := testRates()
	_, err := rates.ToSyp(Price{Amount: decimal.NewFromInt(1), Currency: Currency("EUR")})
	require.Error(t, err)
	_, err = rates.FromSyp(decimal.NewFromInt(1), Currency("EUR"))
	require.Error(t, err)
}
