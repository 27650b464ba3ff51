package reports

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shamsoft/pos_backend/config"
	"github.com/shamsoft/pos_backend/models"
	"github.com/shamsoft/pos_backend/workflow"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	t.Setenv("POS_DB_PATH", filepath.Join(t.TempDir(), "test.db"))
	config.ConnectDatabase()
	models.MigrateTable()
	models.SeedDefaults()
}

func sypPrice(n int64) models.Price {
	return models.Price{Amount: decimal.NewFromInt(n), Currency: models.CurrencySYP}
}

// Seeds a product with cost 30000 SYP, sells two units for 100000 SYP cash,
// and books a 25000 SYP expense.
func seedTradingDay(t *testing.T) *models.Product {
	t.Helper()
	ctx := context.Background()

	product, err := models.CreateProduct(ctx, &models.NewProduct{
		Name:           "USB charger",
		Stock:          decimal.NewFromInt(10),
		CostPrice:      sypPrice(30000),
		WholesalePrice: sypPrice(40000),
		SellingPrice:   sypPrice(50000),
	})
	require.NoError(t, err)

	_, err = workflow.ProcessInvoice(ctx, &models.NewInvoice{
		Items: []models.NewInvoiceItem{{
			ProductId:   product.ID,
			ProductName: product.Name,
			Quantity:    decimal.NewFromInt(2),
			UnitPrice:   sypPrice(50000),
			TotalPrice:  sypPrice(100000),
		}},
		TotalAmount:      decimal.NewFromInt(100000),
		Currency:         models.CurrencySYP,
		PaymentType:      models.PaymentTypeCash,
		TotalAmountInSyp: decimal.NewFromInt(100000),
		CustomerId:       models.CashCustomerId,
		Type:             models.InvoiceTypePOS,
		CashRegisterId:   models.MainCashRegisterId,
	}, false, nil)
	require.NoError(t, err)

	_, err = workflow.RecordExpense(ctx, &models.NewExpense{
		Description:    "Electricity bill",
		CashRegisterId: models.MainCashRegisterId,
		Amount:         decimal.NewFromInt(25000),
		Currency:       models.CurrencySYP,
	})
	require.NoError(t, err)

	return product
}

func wideOpenPeriod() (time.Time, time.Time) {
	return time.Now().AddDate(0, 0, -1), time.Now().AddDate(0, 0, 1)
}

func TestProfitAndLoss(t *testing.T) {
	setupTestDB(t)
	seedTradingDay(t)
	from, to := wideOpenPeriod()

	report, err := ProfitAndLoss(context.Background(), from, to)
	require.NoError(t, err)

	assert.True(t, report.Revenue.Equal(decimal.NewFromInt(100000)), "revenue %s", report.Revenue)
	assert.True(t, report.CostOfGoods.Equal(decimal.NewFromInt(60000)), "cogs %s", report.CostOfGoods)
	assert.True(t, report.GrossProfit.Equal(decimal.NewFromInt(40000)), "gross %s", report.GrossProfit)
	assert.True(t, report.Expenses.Equal(decimal.NewFromInt(25000)), "expenses %s", report.Expenses)
	assert.True(t, report.NetProfit.Equal(decimal.NewFromInt(15000)), "net %s", report.NetProfit)
}

func TestDailyCashFlow(t *testing.T) {
	setupTestDB(t)
	seedTradingDay(t)
	from, to := wideOpenPeriod()

	entries, err := DailyCashFlow(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	today := entries[0]
	assert.Equal(t, time.Now().Format("2006-01-02"), today.Day)
	assert.True(t, today.Income.Equal(decimal.NewFromInt(100000)), "income %s", today.Income)
	assert.True(t, today.Outcome.Equal(decimal.NewFromInt(25000)), "outcome %s", today.Outcome)
	assert.True(t, today.Net.Equal(decimal.NewFromInt(75000)), "net %s", today.Net)
}

func TestProductMovement(t *testing.T) {
	setupTestDB(t)
	product := seedTradingDay(t)
	from, to := wideOpenPeriod()

	entries, err := ProductMovement(context.Background(), product.ID, from, to)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Quantity.Equal(decimal.NewFromInt(-2)), "quantity %s", entries[0].Quantity)
	assert.Equal(t, "INV-00001", entries[0].InvoiceId)
}

func TestInventoryValuation(t *testing.T) {
	setupTestDB(t)
	seedTradingDay(t)

	report, err := InventoryValuation(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Entries, 1)

	// 8 units remain at 30000 SYP cost.
	assert.True(t, report.TotalValue.Equal(decimal.NewFromInt(240000)), "total %s", report.TotalValue)
}

func TestBestSellers(t *testing.T) {
	setupTestDB(t)
	seedTradingDay(t)
	from, to := wideOpenPeriod()

	entries, err := BestSellers(context.Background(), from, to, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "USB charger", entries[0].ProductName)
	assert.True(t, entries[0].Quantity.Equal(decimal.NewFromInt(2)))
	assert.True(t, entries[0].Revenue.Equal(decimal.NewFromInt(100000)), "revenue %s", entries[0].Revenue)
}

func TestExcelExportsProduceWorkbooks(t *testing.T) {
	setupTestDB(t)
	seedTradingDay(t)
	from, to := wideOpenPeriod()
	ctx := context.Background()

	pnl, err := ExportProfitAndLossExcel(ctx, from, to)
	require.NoError(t, err)
	assert.NotEmpty(t, pnl)

	valuation, err := ExportInventoryValuationExcel(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, valuation)
}
