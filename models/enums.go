package models

import "fmt"

type Currency string

const (
	CurrencySYP Currency = "SYP"
	CurrencyUSD Currency = "USD"
	CurrencyTRY Currency = "TRY"
)

// AllCurrencies is the closed set of supported currencies. SYP is the anchor
// currency all cross-currency amounts are normalized to.
var AllCurrencies = []Currency{CurrencySYP, CurrencyUSD, CurrencyTRY}

func (c Currency) Valid() bool {
	switch c {
	case CurrencySYP, CurrencyUSD, CurrencyTRY:
		return true
	}
	return false
}

func ParseCurrency(s string) (Currency, error) {
	c := Currency(s)
	if !c.Valid() {
		return "", fmt.Errorf("invalid currency: %q", s)
	}
	return c, nil
}

type PaymentType string

const (
	PaymentTypeCash   PaymentType = "cash"
	PaymentTypeCredit PaymentType = "credit"
)

func (t PaymentType) Valid() bool {
	return t == PaymentTypeCash || t == PaymentTypeCredit
}

type InvoiceType string

const (
	InvoiceTypePOS      InvoiceType = "pos"
	InvoiceTypeSale     InvoiceType = "sale"
	InvoiceTypePurchase InvoiceType = "purchase"
)

func (t InvoiceType) Valid() bool {
	switch t {
	case InvoiceTypePOS, InvoiceTypeSale, InvoiceTypePurchase:
		return true
	}
	return false
}

// IsSale reports whether the invoice moves stock out and money in. POS and
// plain sales behave identically at the ledger level.
func (t InvoiceType) IsSale() bool {
	return t != InvoiceTypePurchase
}

type CashTransactionType string

const (
	CashTransactionTypeDeposit         CashTransactionType = "deposit"
	CashTransactionTypeWithdrawal      CashTransactionType = "withdrawal"
	CashTransactionTypeTransferIn      CashTransactionType = "transfer-in"
	CashTransactionTypeTransferOut     CashTransactionType = "transfer-out"
	CashTransactionTypeSale            CashTransactionType = "sale"
	CashTransactionTypePurchase        CashTransactionType = "purchase"
	CashTransactionTypeExpense         CashTransactionType = "expense"
	CashTransactionTypeOpeningBalance  CashTransactionType = "opening-balance"
	CashTransactionTypePaymentReceived CashTransactionType = "payment-received"
	CashTransactionTypePaymentMade     CashTransactionType = "payment-made"
)

type MovementType string

const (
	MovementTypeDeposit    MovementType = "deposit"
	MovementTypeWithdrawal MovementType = "withdrawal"
)

func (t MovementType) Valid() bool {
	return t == MovementTypeDeposit || t == MovementTypeWithdrawal
}

type PaymentDirection string

const (
	PaymentDirectionReceived PaymentDirection = "received"
	PaymentDirectionMade     PaymentDirection = "made"
)

func (d PaymentDirection) Valid() bool {
	return d == PaymentDirectionReceived || d == PaymentDirectionMade
}

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)
