package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExchangeRates holds the two live rates, expressed as SYP per unit of the
// foreign currency. SYP converts to itself with identity. Rates are
// configuration, read fresh at settlement time; they are never cached beyond
// the snapshot a single transaction works with.
type ExchangeRates struct {
	USD decimal.Decimal `json:"USD"`
	TRY decimal.Decimal `json:"TRY"`
}

var ErrExchangeRatesNotConfigured = errors.New("exchange rates are not configured")

func (r ExchangeRates) Validate() error {
	if !r.USD.IsPositive() {
		return fmt.Errorf("invalid USD exchange rate: %s", r.USD)
	}
	if !r.TRY.IsPositive() {
		return fmt.Errorf("invalid TRY exchange rate: %s", r.TRY)
	}
	return nil
}

// ToSyp converts a price to the anchor currency.
func (r ExchangeRates) ToSyp(p Price) (decimal.Decimal, error) {
	switch p.Currency {
	case CurrencySYP:
		return p.Amount, nil
	case CurrencyUSD:
		if err := r.Validate(); err != nil {
			return decimal.Zero, err
		}
		return p.Amount.Mul(r.USD), nil
	case CurrencyTRY:
		if err := r.Validate(); err != nil {
			return decimal.Zero, err
		}
		return p.Amount.Mul(r.TRY), nil
	default:
		return decimal.Zero, fmt.Errorf("invalid currency: %q", p.Currency)
	}
}

// FromSyp converts an anchor-currency amount into the target currency.
func (r ExchangeRates) FromSyp(sypAmount decimal.Decimal, target Currency) (decimal.Decimal, error) {
	switch target {
	case CurrencySYP:
		return sypAmount, nil
	case CurrencyUSD:
		if err := r.Validate(); err != nil {
			return decimal.Zero, err
		}
		return sypAmount.Div(r.USD), nil
	case CurrencyTRY:
		if err := r.Validate(); err != nil {
			return decimal.Zero, err
		}
		return sypAmount.Div(r.TRY), nil
	default:
		return decimal.Zero, fmt.Errorf("invalid currency: %q", target)
	}
}

// GetExchangeRates reads the configured rates. A missing or invalid
// configuration is an error surfaced to the caller, never silently clamped.
func GetExchangeRates(tx *gorm.DB) (ExchangeRates, error) {
	rates, err := GetSetting[ExchangeRates](tx, SettingKeyExchangeRates)
	if err != nil {
		return ExchangeRates{}, err
	}
	if rates == nil {
		return ExchangeRates{}, ErrExchangeRatesNotConfigured
	}
	if err := rates.Validate(); err != nil {
		return ExchangeRates{}, err
	}
	return *rates, nil
}

func SetExchangeRates(tx *gorm.DB, rates ExchangeRates) error {
	if err := rates.Validate(); err != nil {
		return err
	}
	return SetSetting(tx, SettingKeyExchangeRates, rates)
}
