package main

import (
	"context"
	"log"

	"github.com/shamsoft/pos_backend/config"
	"github.com/shamsoft/pos_backend/models"
	"github.com/shamsoft/pos_backend/workflow"
	"github.com/shopspring/decimal"
)

// Seeds a small demo store: a few products, one credit customer, a supplier
// purchase, and a POS sale, so the UI has something to show on first run.
func main() {
	config.ConnectDatabase()
	models.MigrateTable()
	models.SeedDefaults()

	ctx := context.Background()

	electronics, err := models.CreateCategory(ctx, &models.NewCategory{Name: "Electronics"})
	if err != nil {
		log.Fatal(err)
	}

	sypPrice := func(n int64) models.Price {
		return models.Price{Amount: decimal.NewFromInt(n), Currency: models.CurrencySYP}
	}
	usdPrice := func(n int64) models.Price {
		return models.Price{Amount: decimal.NewFromInt(n), Currency: models.CurrencyUSD}
	}

	charger, err := models.CreateProduct(ctx, &models.NewProduct{
		Name:           "USB charger",
		Stock:          decimal.NewFromInt(50),
		CostPrice:      sypPrice(30000),
		WholesalePrice: sypPrice(40000),
		SellingPrice:   sypPrice(50000),
		CategoryId:     electronics.ID,
	})
	if err != nil {
		log.Fatal(err)
	}

	headphones, err := models.CreateProduct(ctx, &models.NewProduct{
		Name:           "Headphones",
		Stock:          decimal.NewFromInt(20),
		CostPrice:      usdPrice(4),
		WholesalePrice: usdPrice(6),
		SellingPrice:   usdPrice(8),
		CategoryId:     electronics.ID,
	})
	if err != nil {
		log.Fatal(err)
	}

	customer, err := models.CreateCustomer(ctx, &models.NewCustomer{Name: "Ahmad", Phone: "0999 000 111"})
	if err != nil {
		log.Fatal(err)
	}

	supplier, err := models.CreateSupplier(ctx, &models.NewSupplier{Name: "Damascus Wholesale"})
	if err != nil {
		log.Fatal(err)
	}

	// Purchase 30 chargers on credit.
	purchaseTotal := decimal.NewFromInt(900000)
	_, err = workflow.ProcessInvoice(ctx, &models.NewInvoice{
		Items: []models.NewInvoiceItem{{
			ProductId:   charger.ID,
			ProductName: charger.Name,
			Quantity:    decimal.NewFromInt(30),
			UnitPrice:   sypPrice(30000),
			TotalPrice:  sypPrice(900000),
		}},
		TotalAmount:      purchaseTotal,
		Currency:         models.CurrencySYP,
		PaymentType:      models.PaymentTypeCredit,
		TotalAmountInSyp: purchaseTotal,
		SupplierId:       supplier.ID,
		Type:             models.InvoiceTypePurchase,
	}, false, nil)
	if err != nil {
		log.Fatal(err)
	}

	// POS cash sale of two chargers to the walk-in customer.
	saleTotal := decimal.NewFromInt(100000)
	_, err = workflow.ProcessInvoice(ctx, &models.NewInvoice{
		Items: []models.NewInvoiceItem{{
			ProductId:   charger.ID,
			ProductName: charger.Name,
			Quantity:    decimal.NewFromInt(2),
			UnitPrice:   sypPrice(50000),
			TotalPrice:  sypPrice(100000),
		}},
		TotalAmount:      saleTotal,
		Currency:         models.CurrencySYP,
		PaymentType:      models.PaymentTypeCash,
		TotalAmountInSyp: saleTotal,
		CustomerId:       models.CashCustomerId,
		Type:             models.InvoiceTypePOS,
		CashRegisterId:   models.MainCashRegisterId,
	}, false, nil)
	if err != nil {
		log.Fatal(err)
	}

	// Credit sale of one pair of headphones in USD.
	usdTotal := decimal.NewFromInt(8)
	_, err = workflow.ProcessInvoice(ctx, &models.NewInvoice{
		Items: []models.NewInvoiceItem{{
			ProductId:   headphones.ID,
			ProductName: headphones.Name,
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   usdPrice(8),
			TotalPrice:  usdPrice(8),
		}},
		TotalAmount:      usdTotal,
		Currency:         models.CurrencyUSD,
		PaymentType:      models.PaymentTypeCredit,
		TotalAmountInSyp: usdTotal.Mul(decimal.NewFromInt(14000)),
		CustomerId:       customer.ID,
		Type:             models.InvoiceTypeSale,
	}, false, nil)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("demo data seeded")
}
