package workflow

import (
	"context"
	"testing"

	"github.com/shamsoft/pos_backend/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentReceivedSettlesCustomerDebt(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	product := createTestProduct(t, "USB charger", 10)

	customer, err := models.CreateCustomer(ctx, &models.NewCustomer{Name: "Ahmad"})
	require.NoError(t, err)

	draft := posSaleDraft(product, 2, 100000)
	draft.PaymentType = models.PaymentTypeCredit
	draft.CustomerId = customer.ID
	draft.CashRegisterId = ""
	draft.Type = models.InvoiceTypeSale
	invoiceId, err := ProcessInvoice(ctx, draft, false, nil)
	require.NoError(t, err)

	require.NoError(t, RecordPayment(ctx, &NewPayment{
		Direction:       models.PaymentDirectionReceived,
		PartyId:         customer.ID,
		CashRegisterId:  models.MainCashRegisterId,
		Amount:          decimal.NewFromInt(60000),
		Currency:        models.CurrencySYP,
		LinkedInvoiceId: invoiceId,
	}))

	updated, err := models.GetCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assertDecimal(t, "40000", updated.Balances.Get(models.CurrencySYP))

	register, err := models.GetCashRegister(ctx, models.MainCashRegisterId)
	require.NoError(t, err)
	assertDecimal(t, "60000", register.Balances.Get(models.CurrencySYP))

	rows, err := models.GetCashTransactionsByRegister(ctx, models.MainCashRegisterId)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.CashTransactionTypePaymentReceived, rows[0].Type)
	assert.Equal(t, customer.ID, rows[0].RelatedId)
	assert.Equal(t, invoiceId, rows[0].LinkedInvoiceId)
	assert.Equal(t, "Payment from customer: Ahmad", rows[0].Description)
}

func TestPaymentMadeSettlesSupplierDebt(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	supplier, err := models.CreateSupplier(ctx, &models.NewSupplier{Name: "Damascus Wholesale"})
	require.NoError(t, err)

	require.NoError(t, RecordPayment(ctx, &NewPayment{
		Direction:      models.PaymentDirectionMade,
		PartyId:        supplier.ID,
		CashRegisterId: models.MainCashRegisterId,
		Amount:         decimal.NewFromInt(250000),
		Currency:       models.CurrencySYP,
	}))

	updated, err := models.GetSupplier(ctx, supplier.ID)
	require.NoError(t, err)
	assertDecimal(t, "-250000", updated.Balances.Get(models.CurrencySYP))

	register, err := models.GetCashRegister(ctx, models.MainCashRegisterId)
	require.NoError(t, err)
	assertDecimal(t, "-250000", register.Balances.Get(models.CurrencySYP))

	rows, err := models.GetCashTransactionsByRegister(ctx, models.MainCashRegisterId)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.CashTransactionTypePaymentMade, rows[0].Type)
	assert.Equal(t, "Payment to supplier: Damascus Wholesale", rows[0].Description)
}

func TestPaymentToMissingPartyFails(t *testing.T) {
	setupTestDB(t)

	err := RecordPayment(context.Background(), &NewPayment{
		Direction:      models.PaymentDirectionReceived,
		PartyId:        "c-missing",
		CashRegisterId: models.MainCashRegisterId,
		Amount:         decimal.NewFromInt(1000),
		Currency:       models.CurrencySYP,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestExpenseDebitsRegisterWithAuditRow(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	expense, err := RecordExpense(ctx, &models.NewExpense{
		Description:    "Electricity bill",
		CashRegisterId: models.MainCashRegisterId,
		Amount:         decimal.NewFromInt(45000),
		Currency:       models.CurrencySYP,
	})
	require.NoError(t, err)
	assertDecimal(t, "45000", expense.AmountInSyp)

	register, err := models.GetCashRegister(ctx, models.MainCashRegisterId)
	require.NoError(t, err)
	assertDecimal(t, "-45000", register.Balances.Get(models.CurrencySYP))

	rows, err := models.GetCashTransactionsByRegister(ctx, models.MainCashRegisterId)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.CashTransactionTypeExpense, rows[0].Type)
	assert.Equal(t, expense.ID, rows[0].RelatedId)
	assert.Equal(t, "Electricity bill", rows[0].Description)
}
