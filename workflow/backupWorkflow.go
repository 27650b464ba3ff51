package workflow

import (
	"context"

	"github.com/shamsoft/pos_backend/config"
	"github.com/shamsoft/pos_backend/models"
	"gorm.io/gorm"
)

// BackupDocument is the portable snapshot of the whole store: every table
// plus the settings and the invoice counter, in one JSON document.
type BackupDocument struct {
	Products          []models.Product         `json:"products"`
	Categories        []models.Category        `json:"categories"`
	Invoices          []models.Invoice         `json:"invoices"`
	NextInvoiceNumber int                      `json:"nextInvoiceNumber"`
	Customers         []models.Customer        `json:"customers"`
	Suppliers         []models.Supplier        `json:"suppliers"`
	ExpenseCategories []models.ExpenseCategory `json:"expenseCategories"`
	Expenses          []models.Expense         `json:"expenses"`
	CashRegisters     []models.CashRegister    `json:"cashRegisters"`
	CashTransactions  []models.CashTransaction `json:"cashTransactions"`
	ExchangeRates     *models.ExchangeRates    `json:"exchangeRates,omitempty"`
	CompanyInfo       *models.CompanyInfo      `json:"companyInfo,omitempty"`
	PrinterSettings   *models.PrinterSettings  `json:"printerSettings,omitempty"`
}

// Backup reads the full store inside one transaction so the snapshot is
// internally consistent.
func Backup(ctx context.Context) (*BackupDocument, error) {
	db := config.GetDB()
	var doc BackupDocument
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reads := []error{
			tx.Order("name").Find(&doc.Products).Error,
			tx.Order("name").Find(&doc.Categories).Error,
			tx.Preload("Items").Order("date").Find(&doc.Invoices).Error,
			tx.Order("name").Find(&doc.Customers).Error,
			tx.Order("name").Find(&doc.Suppliers).Error,
			tx.Order("name").Find(&doc.ExpenseCategories).Error,
			tx.Order("date").Find(&doc.Expenses).Error,
			tx.Order("name").Find(&doc.CashRegisters).Error,
			tx.Order("date").Find(&doc.CashTransactions).Error,
		}
		for _, err := range reads {
			if err != nil {
				return err
			}
		}

		n, err := models.NextInvoiceNumber(tx)
		if err != nil {
			return err
		}
		doc.NextInvoiceNumber = n

		if rates, err := models.GetSetting[models.ExchangeRates](tx, models.SettingKeyExchangeRates); err != nil {
			return err
		} else {
			doc.ExchangeRates = rates
		}
		if info, err := models.GetCompanyInfo(tx); err != nil {
			return err
		} else {
			doc.CompanyInfo = info
		}
		if printer, err := models.GetPrinterSettings(tx); err != nil {
			return err
		} else {
			doc.PrinterSettings = printer
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Restore replaces the entire store with the snapshot. Balances, stock, and
// the audit trail are taken verbatim from the document; nothing is
// recomputed.
func Restore(ctx context.Context, doc *BackupDocument) error {
	db := config.GetDB()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wipes := []error{
			tx.Where("1 = 1").Delete(&models.InvoiceItem{}).Error,
			tx.Where("1 = 1").Delete(&models.Invoice{}).Error,
			tx.Where("1 = 1").Delete(&models.CashTransaction{}).Error,
			tx.Where("1 = 1").Delete(&models.Expense{}).Error,
			tx.Where("1 = 1").Delete(&models.ExpenseCategory{}).Error,
			tx.Where("1 = 1").Delete(&models.Product{}).Error,
			tx.Where("1 = 1").Delete(&models.Category{}).Error,
			tx.Where("1 = 1").Delete(&models.Customer{}).Error,
			tx.Where("1 = 1").Delete(&models.Supplier{}).Error,
			tx.Where("1 = 1").Delete(&models.CashRegister{}).Error,
		}
		for _, err := range wipes {
			if err != nil {
				return err
			}
		}

		if err := insertAll(tx, doc.Categories); err != nil {
			return err
		}
		if err := insertAll(tx, doc.Products); err != nil {
			return err
		}
		if err := insertAll(tx, doc.Customers); err != nil {
			return err
		}
		if err := insertAll(tx, doc.Suppliers); err != nil {
			return err
		}
		if err := insertAll(tx, doc.CashRegisters); err != nil {
			return err
		}
		if err := insertAll(tx, doc.ExpenseCategories); err != nil {
			return err
		}
		if err := insertAll(tx, doc.Expenses); err != nil {
			return err
		}
		if err := insertAll(tx, doc.CashTransactions); err != nil {
			return err
		}
		// Invoices go last so their items land after every referenced record.
		if err := insertAll(tx, doc.Invoices); err != nil {
			return err
		}

		if doc.NextInvoiceNumber > 0 {
			if err := models.SetNextInvoiceNumber(tx, doc.NextInvoiceNumber); err != nil {
				return err
			}
		}
		if doc.ExchangeRates != nil {
			if err := models.SetSetting(tx, models.SettingKeyExchangeRates, *doc.ExchangeRates); err != nil {
				return err
			}
		}
		if doc.CompanyInfo != nil {
			if err := models.SetCompanyInfo(tx, *doc.CompanyInfo); err != nil {
				return err
			}
		}
		if doc.PrinterSettings != nil {
			if err := models.SetPrinterSettings(tx, *doc.PrinterSettings); err != nil {
				return err
			}
		}
		return nil
	})
}

// RestoreMerge imports only the records whose ids are not present locally.
// Balances and stock stay as stored on both sides; the merge moves records,
// it does not re-run history. The counter advances to whichever side is
// higher so future invoice numbers stay unique.
func RestoreMerge(ctx context.Context, doc *BackupDocument) error {
	db := config.GetDB()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mergeByID(tx, doc.Categories, func(c models.Category) string { return c.ID }, &models.Category{}); err != nil {
			return err
		}
		if err := mergeByID(tx, doc.Products, func(p models.Product) string { return p.ID }, &models.Product{}); err != nil {
			return err
		}
		if err := mergeByID(tx, doc.Customers, func(c models.Customer) string { return c.ID }, &models.Customer{}); err != nil {
			return err
		}
		if err := mergeByID(tx, doc.Suppliers, func(s models.Supplier) string { return s.ID }, &models.Supplier{}); err != nil {
			return err
		}
		if err := mergeByID(tx, doc.CashRegisters, func(r models.CashRegister) string { return r.ID }, &models.CashRegister{}); err != nil {
			return err
		}
		if err := mergeByID(tx, doc.ExpenseCategories, func(c models.ExpenseCategory) string { return c.ID }, &models.ExpenseCategory{}); err != nil {
			return err
		}
		if err := mergeByID(tx, doc.Expenses, func(e models.Expense) string { return e.ID }, &models.Expense{}); err != nil {
			return err
		}
		if err := mergeByID(tx, doc.CashTransactions, func(t models.CashTransaction) string { return t.ID }, &models.CashTransaction{}); err != nil {
			return err
		}

		existing, err := existingIDs(tx, &models.Invoice{})
		if err != nil {
			return err
		}
		for _, invoice := range doc.Invoices {
			if existing[invoice.ID] {
				continue
			}
			items := invoice.Items
			invoice.Items = nil
			if err := tx.Create(&invoice).Error; err != nil {
				return err
			}
			for i := range items {
				items[i].ID = 0
				items[i].InvoiceId = invoice.ID
			}
			if len(items) > 0 {
				if err := tx.Create(&items).Error; err != nil {
					return err
				}
			}
		}

		if doc.NextInvoiceNumber > 0 {
			local, err := models.NextInvoiceNumber(tx)
			if err != nil {
				return err
			}
			if doc.NextInvoiceNumber > local {
				if err := models.SetNextInvoiceNumber(tx, doc.NextInvoiceNumber); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func insertAll[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.CreateInBatches(rows, 200).Error
}

func mergeByID[T any](tx *gorm.DB, rows []T, id func(T) string, model interface{}) error {
	if len(rows) == 0 {
		return nil
	}
	existing, err := existingIDs(tx, model)
	if err != nil {
		return err
	}
	var missing []T
	for _, row := range rows {
		if !existing[id(row)] {
			missing = append(missing, row)
		}
	}
	return insertAll(tx, missing)
}

func existingIDs(tx *gorm.DB, model interface{}) (map[string]bool, error) {
	var ids []string
	if err := tx.Model(model).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
