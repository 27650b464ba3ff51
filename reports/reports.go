package reports

import (
	"context"
	"sort"
	"time"

	"github.com/shamsoft/pos_backend/config"
	"github.com/shamsoft/pos_backend/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// All report figures are expressed in SYP. Historical rows carry their own
// anchored amounts; only figures derived from the live catalog (cost of
// goods, inventory valuation) are converted at the rates configured now.

type ProfitAndLossReport struct {
	From        time.Time       `json:"from"`
	To          time.Time       `json:"to"`
	Revenue     decimal.Decimal `json:"revenue"`
	CostOfGoods decimal.Decimal `json:"costOfGoods"`
	GrossProfit decimal.Decimal `json:"grossProfit"`
	Expenses    decimal.Decimal `json:"expenses"`
	NetProfit   decimal.Decimal `json:"netProfit"`
}

type DailyCashFlowEntry struct {
	Day     string          `json:"day"`
	Income  decimal.Decimal `json:"income"`
	Outcome decimal.Decimal `json:"outcome"`
	Net     decimal.Decimal `json:"net"`
}

type ProductMovementEntry struct {
	Date      time.Time       `json:"date"`
	InvoiceId string          `json:"invoiceId"`
	Type      string          `json:"type"`
	Quantity  decimal.Decimal `json:"quantity"`
}

type InventoryValuationEntry struct {
	ProductId  string          `json:"productId"`
	Name       string          `json:"name"`
	Stock      decimal.Decimal `json:"stock"`
	UnitCost   decimal.Decimal `json:"unitCostInSyp"`
	TotalValue decimal.Decimal `json:"totalValueInSyp"`
}

type InventoryValuationReport struct {
	Entries    []InventoryValuationEntry `json:"entries"`
	TotalValue decimal.Decimal           `json:"totalValueInSyp"`
}

type BestSellerEntry struct {
	ProductId   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    decimal.Decimal `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenueInSyp"`
}

// ProfitAndLoss aggregates sales revenue against cost of goods and expenses
// for the period. Cost of goods uses the product's current cost price
// converted at the rates configured now.
func ProfitAndLoss(ctx context.Context, from, to time.Time) (*ProfitAndLossReport, error) {
	db := config.GetDB().WithContext(ctx)

	rates, err := models.GetExchangeRates(db)
	if err != nil {
		return nil, err
	}

	var invoices []models.Invoice
	if err := db.Preload("Items").
		Where("date >= ? AND date < ? AND type <> ?", from, to, models.InvoiceTypePurchase).
		Find(&invoices).Error; err != nil {
		return nil, err
	}

	costs, err := productCostIndex(db, rates)
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	costOfGoods := decimal.Zero
	for _, invoice := range invoices {
		revenue = revenue.Add(invoice.TotalAmountInSyp)
		for _, item := range invoice.Items {
			costOfGoods = costOfGoods.Add(costs[item.ProductId].Mul(item.Quantity))
		}
	}

	var expenses []models.Expense
	if err := db.Where("date >= ? AND date < ?", from, to).Find(&expenses).Error; err != nil {
		return nil, err
	}
	expenseTotal := decimal.Zero
	for _, expense := range expenses {
		expenseTotal = expenseTotal.Add(expense.AmountInSyp)
	}

	grossProfit := revenue.Sub(costOfGoods)
	return &ProfitAndLossReport{
		From:        from,
		To:          to,
		Revenue:     revenue,
		CostOfGoods: costOfGoods,
		GrossProfit: grossProfit,
		Expenses:    expenseTotal,
		NetProfit:   grossProfit.Sub(expenseTotal),
	}, nil
}

// DailyCashFlow buckets the audit trail per calendar day. Sales, deposits,
// incoming transfers, and received payments count as income; everything else
// is outcome.
func DailyCashFlow(ctx context.Context, from, to time.Time) ([]DailyCashFlowEntry, error) {
	db := config.GetDB().WithContext(ctx)

	var rows []models.CashTransaction
	if err := db.Where("date >= ? AND date < ?", from, to).Order("date").Find(&rows).Error; err != nil {
		return nil, err
	}

	incomeTypes := map[models.CashTransactionType]bool{
		models.CashTransactionTypeSale:            true,
		models.CashTransactionTypeDeposit:         true,
		models.CashTransactionTypeTransferIn:      true,
		models.CashTransactionTypePaymentReceived: true,
		models.CashTransactionTypeOpeningBalance:  true,
	}

	type bucket struct {
		income  decimal.Decimal
		outcome decimal.Decimal
	}
	days := map[string]*bucket{}
	for _, row := range rows {
		day := row.Date.Format("2006-01-02")
		b := days[day]
		if b == nil {
			b = &bucket{}
			days[day] = b
		}
		if incomeTypes[row.Type] {
			b.income = b.income.Add(row.AmountInSyp)
		} else {
			b.outcome = b.outcome.Add(row.AmountInSyp)
		}
	}

	keys := make([]string, 0, len(days))
	for day := range days {
		keys = append(keys, day)
	}
	sort.Strings(keys)

	entries := make([]DailyCashFlowEntry, 0, len(keys))
	for _, day := range keys {
		b := days[day]
		entries = append(entries, DailyCashFlowEntry{
			Day:     day,
			Income:  b.income,
			Outcome: b.outcome,
			Net:     b.income.Sub(b.outcome),
		})
	}
	return entries, nil
}

// ProductMovement lists every invoice line touching a product in the period.
// Sales carry negative quantities, purchases positive, matching the stock
// effect.
func ProductMovement(ctx context.Context, productId string, from, to time.Time) ([]ProductMovementEntry, error) {
	db := config.GetDB().WithContext(ctx)

	var invoices []models.Invoice
	if err := db.Preload("Items", "product_id = ?", productId).
		Where("date >= ? AND date < ?", from, to).
		Order("date").Find(&invoices).Error; err != nil {
		return nil, err
	}

	var entries []ProductMovementEntry
	for _, invoice := range invoices {
		for _, item := range invoice.Items {
			quantity := item.Quantity
			if invoice.Type.IsSale() {
				quantity = quantity.Neg()
			}
			entries = append(entries, ProductMovementEntry{
				Date:      invoice.Date,
				InvoiceId: invoice.ID,
				Type:      string(invoice.Type),
				Quantity:  quantity,
			})
		}
	}
	return entries, nil
}

// InventoryValuation prices the current stock at cost, converted at the rates
// configured now.
func InventoryValuation(ctx context.Context) (*InventoryValuationReport, error) {
	db := config.GetDB().WithContext(ctx)

	rates, err := models.GetExchangeRates(db)
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := db.Order("name").Find(&products).Error; err != nil {
		return nil, err
	}

	report := InventoryValuationReport{TotalValue: decimal.Zero}
	for _, product := range products {
		unitCost, err := rates.ToSyp(product.CostPrice)
		if err != nil {
			return nil, err
		}
		total := unitCost.Mul(product.Stock)
		report.Entries = append(report.Entries, InventoryValuationEntry{
			ProductId:  product.ID,
			Name:       product.Name,
			Stock:      product.Stock,
			UnitCost:   unitCost,
			TotalValue: total,
		})
		report.TotalValue = report.TotalValue.Add(total)
	}
	return &report, nil
}

// BestSellers ranks products by quantity sold in the period.
func BestSellers(ctx context.Context, from, to time.Time, limit int) ([]BestSellerEntry, error) {
	db := config.GetDB().WithContext(ctx)

	var invoices []models.Invoice
	if err := db.Preload("Items").
		Where("date >= ? AND date < ? AND type <> ?", from, to, models.InvoiceTypePurchase).
		Find(&invoices).Error; err != nil {
		return nil, err
	}

	rates, err := models.GetExchangeRates(db)
	if err != nil {
		return nil, err
	}

	totals := map[string]*BestSellerEntry{}
	for _, invoice := range invoices {
		for _, item := range invoice.Items {
			entry := totals[item.ProductId]
			if entry == nil {
				entry = &BestSellerEntry{ProductId: item.ProductId, ProductName: item.ProductName}
				totals[item.ProductId] = entry
			}
			entry.Quantity = entry.Quantity.Add(item.Quantity)
			lineRevenue, err := rates.ToSyp(item.TotalPrice)
			if err != nil {
				return nil, err
			}
			entry.Revenue = entry.Revenue.Add(lineRevenue)
		}
	}

	entries := make([]BestSellerEntry, 0, len(totals))
	for _, entry := range totals {
		entries = append(entries, *entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Quantity.GreaterThan(entries[j].Quantity)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func productCostIndex(db *gorm.DB, rates models.ExchangeRates) (map[string]decimal.Decimal, error) {
	var products []models.Product
	if err := db.Find(&products).Error; err != nil {
		return nil, err
	}
	costs := make(map[string]decimal.Decimal, len(products))
	for _, product := range products {
		cost, err := rates.ToSyp(product.CostPrice)
		if err != nil {
			return nil, err
		}
		costs[product.ID] = cost
	}
	return costs, nil
}
