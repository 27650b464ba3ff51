package workflow

import (
	"context"
	"testing"

	"github.com/shamsoft/pos_backend/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferMovesFundsSymmetrically(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	drawer, err := models.CreateCashRegister(ctx, &models.NewCashRegister{Name: "Drawer"})
	require.NoError(t, err)

	require.NoError(t, RecordMovement(ctx, &NewMovement{
		RegisterId: models.MainCashRegisterId,
		Type:       models.CashTransactionTypeDeposit,
		Amount:     decimal.NewFromInt(500000),
		Currency:   models.CurrencySYP,
	}))

	require.NoError(t, TransferFunds(ctx, &NewTransfer{
		FromRegisterId: models.MainCashRegisterId,
		ToRegisterId:   drawer.ID,
		Amount:         decimal.NewFromInt(200000),
		Currency:       models.CurrencySYP,
	}))

	main, err := models.GetCashRegister(ctx, models.MainCashRegisterId)
	require.NoError(t, err)
	assertDecimal(t, "300000", main.Balances.Get(models.CurrencySYP))

	dest, err := models.GetCashRegister(ctx, drawer.ID)
	require.NoError(t, err)
	assertDecimal(t, "200000", dest.Balances.Get(models.CurrencySYP))

	outRows, err := models.GetCashTransactionsByRegister(ctx, models.MainCashRegisterId)
	require.NoError(t, err)
	require.Len(t, outRows, 2)
	assert.Equal(t, models.CashTransactionTypeTransferOut, outRows[1].Type)
	assert.Equal(t, drawer.ID, outRows[1].RelatedId)

	inRows, err := models.GetCashTransactionsByRegister(ctx, drawer.ID)
	require.NoError(t, err)
	require.Len(t, inRows, 1)
	assert.Equal(t, models.CashTransactionTypeTransferIn, inRows[0].Type)
	assert.Equal(t, "Transfer from Main register", inRows[0].Description)
}

func TestTransferToSameRegisterRejected(t *testing.T) {
	setupTestDB(t)

	err := TransferFunds(context.Background(), &NewTransfer{
		FromRegisterId: models.MainCashRegisterId,
		ToRegisterId:   models.MainCashRegisterId,
		Amount:         decimal.NewFromInt(1000),
		Currency:       models.CurrencySYP,
	})
	require.Error(t, err)
}

func TestTransferToMissingRegisterRollsBack(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	err := TransferFunds(ctx, &NewTransfer{
		FromRegisterId: models.MainCashRegisterId,
		ToRegisterId:   "cr-missing",
		Amount:         decimal.NewFromInt(1000),
		Currency:       models.CurrencySYP,
	})
	require.Error(t, err)

	main, err := models.GetCashRegister(ctx, models.MainCashRegisterId)
	require.NoError(t, err)
	assertDecimal(t, "0", main.Balances.Get(models.CurrencySYP))

	rows, err := models.GetCashTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestWithdrawalDebitsRegister(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, RecordMovement(ctx, &NewMovement{
		RegisterId:  models.MainCashRegisterId,
		Type:        models.CashTransactionTypeWithdrawal,
		Amount:      decimal.NewFromInt(75000),
		Currency:    models.CurrencySYP,
		Description: "Owner drawing",
	}))

	main, err := models.GetCashRegister(ctx, models.MainCashRegisterId)
	require.NoError(t, err)
	assertDecimal(t, "-75000", main.Balances.Get(models.CurrencySYP))

	rows, err := models.GetCashTransactionsByRegister(ctx, models.MainCashRegisterId)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Owner drawing", rows[0].Description)
	assertDecimal(t, "75000", rows[0].Amount)
}

func TestForeignCurrencyMovementAnchorsAmount(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	// Seeded rate: 1 USD = 14000 SYP.
	require.NoError(t, RecordMovement(ctx, &NewMovement{
		RegisterId: models.MainCashRegisterId,
		Type:       models.CashTransactionTypeDeposit,
		Amount:     decimal.NewFromInt(100),
		Currency:   models.CurrencyUSD,
	}))

	main, err := models.GetCashRegister(ctx, models.MainCashRegisterId)
	require.NoError(t, err)
	assertDecimal(t, "100", main.Balances.Get(models.CurrencyUSD))
	assertDecimal(t, "0", main.Balances.Get(models.CurrencySYP))

	rows, err := models.GetCashTransactionsByRegister(ctx, models.MainCashRegisterId)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assertDecimal(t, "1400000", rows[0].AmountInSyp)
}

func TestRejectsNonPositiveAmounts(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	err := RecordMovement(ctx, &NewMovement{
		RegisterId: models.MainCashRegisterId,
		Type:       models.CashTransactionTypeDeposit,
		Amount:     decimal.Zero,
		Currency:   models.CurrencySYP,
	})
	require.Error(t, err)

	err = TransferFunds(ctx, &NewTransfer{
		FromRegisterId: models.MainCashRegisterId,
		ToRegisterId:   "cr-2",
		Amount:         decimal.NewFromInt(-5),
		Currency:       models.CurrencySYP,
	})
	require.Error(t, err)
}
