package workflow

import (
	"context"
	"testing"

	"github.com/shamsoft/pos_backend/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSmallStore(t *testing.T) (productId, invoiceId string) {
	t.Helper()
	ctx := context.Background()
	product := createTestProduct(t, "USB charger", 10)

	invoiceId, err := ProcessInvoice(ctx, posSaleDraft(product, 2, 100000), false, nil)
	require.NoError(t, err)
	return product.ID, invoiceId
}

func TestBackupRestoreRoundTrip(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	productId, invoiceId := seedSmallStore(t)

	doc, err := Backup(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Products, 1)
	require.Len(t, doc.Invoices, 1)
	require.Len(t, doc.CashTransactions, 1)
	assert.Equal(t, 2, doc.NextInvoiceNumber)

	// Mutate the store after the snapshot, then restore over it.
	_, err = ProcessInvoice(ctx, posSaleDraft(&models.Product{ID: productId, Name: "USB charger"}, 1, 50000), false, nil)
	require.NoError(t, err)

	require.NoError(t, Restore(ctx, doc))

	invoices, err := models.GetInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, invoiceId, invoices[0].ID)
	require.Len(t, invoices[0].Items, 1)

	// Balances come back verbatim from the snapshot, not recomputed.
	register, err := models.GetCashRegister(ctx, models.MainCashRegisterId)
	require.NoError(t, err)
	assertDecimal(t, "100000", register.Balances.Get(models.CurrencySYP))

	product, err := models.GetProduct(ctx, productId)
	require.NoError(t, err)
	assertDecimal(t, "8", product.Stock)

	n, err := models.GetNextInvoiceNumber()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRestoreMergeKeepsLocalRecords(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	_, invoiceId := seedSmallStore(t)

	doc, err := Backup(ctx)
	require.NoError(t, err)

	// A product that only exists in the snapshot.
	doc.Products = append(doc.Products, models.Product{
		ID:           "p-from-backup",
		Name:         "Imported product",
		Stock:        decimal.NewFromInt(3),
		CostPrice:    sypPrice(1000),
		SellingPrice: sypPrice(2000),
	})
	doc.NextInvoiceNumber = 7

	localOnly := createTestProduct(t, "Local-only product", 4)

	require.NoError(t, RestoreMerge(ctx, doc))

	products, err := models.GetProducts(ctx)
	require.NoError(t, err)
	names := make(map[string]bool, len(products))
	for _, p := range products {
		names[p.Name] = true
	}
	assert.True(t, names["Imported product"])
	assert.True(t, names["Local-only product"])
	assert.True(t, names["USB charger"])

	// Duplicate ids are skipped, not duplicated.
	invoices, err := models.GetInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, invoiceId, invoices[0].ID)

	stillLocal, err := models.GetProduct(ctx, localOnly.ID)
	require.NoError(t, err)
	assertDecimal(t, "4", stillLocal.Stock)

	// Counter advances to the higher side.
	n, err := models.GetNextInvoiceNumber()
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestRestoreMergeImportsUnseenInvoices(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	productId, _ := seedSmallStore(t)

	doc, err := Backup(ctx)
	require.NoError(t, err)

	doc.Invoices = append(doc.Invoices, models.Invoice{
		ID:               "INV-00099",
		TotalAmount:      decimal.NewFromInt(50000),
		Currency:         models.CurrencySYP,
		PaymentType:      models.PaymentTypeCash,
		TotalAmountInSyp: decimal.NewFromInt(50000),
		Type:             models.InvoiceTypePOS,
		CashRegisterId:   models.MainCashRegisterId,
		Items: []models.InvoiceItem{{
			ID:          999,
			InvoiceId:   "INV-00099",
			ProductId:   productId,
			ProductName: "USB charger",
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   sypPrice(50000),
			TotalPrice:  sypPrice(50000),
		}},
	})

	require.NoError(t, RestoreMerge(ctx, doc))

	imported, err := models.GetInvoice(ctx, "INV-00099")
	require.NoError(t, err)
	require.Len(t, imported.Items, 1)
	assertDecimal(t, "1", imported.Items[0].Quantity)
}
