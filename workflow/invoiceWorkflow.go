package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shamsoft/pos_backend/config"
	"github.com/shamsoft/pos_backend/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// InsufficientStockError rejects a sale whose line quantity exceeds the
// product's current stock. The whole settlement aborts; no partial state
// survives.
type InsufficientStockError struct {
	ProductName string
	Available   decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: %s available", e.ProductName, e.Available)
}

// ProcessInvoice settles an invoice draft against inventory, the party
// ledgers, and the cash registers as one transaction:
//
//  1. reverse the original invoice's effects (edits only)
//  2. validate stock against the effective state (sales only)
//  3. assign the invoice number (reuse on edit, counter on create)
//  4. apply stock, ledger / register, and audit-trail effects
//  5. persist the header and line items
//  6. advance the counter (new invoices only)
//
// Any failure rolls the whole unit back, including the reversal.
func ProcessInvoice(ctx context.Context, draft *models.NewInvoice, isEditing bool, originalInvoice *models.Invoice) (string, error) {
	logger := config.GetLogger()

	if err := validateDraft(draft, isEditing, originalInvoice); err != nil {
		return "", err
	}

	db := config.GetDB()
	var invoiceId string
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		invoiceId, err = processInvoice(tx, logger, draft, isEditing, originalInvoice)
		return err
	})
	if err != nil {
		return "", err
	}
	return invoiceId, nil
}

func validateDraft(draft *models.NewInvoice, isEditing bool, originalInvoice *models.Invoice) error {
	if isEditing && originalInvoice == nil {
		return errors.New("editing requires the original invoice")
	}
	if !draft.Type.Valid() {
		return fmt.Errorf("invalid invoice type: %q", draft.Type)
	}
	if !draft.PaymentType.Valid() {
		return fmt.Errorf("invalid payment type: %q", draft.PaymentType)
	}
	if !draft.Currency.Valid() {
		return fmt.Errorf("invalid currency: %q", draft.Currency)
	}
	if len(draft.Items) == 0 {
		return errors.New("an invoice needs at least one item")
	}
	for _, item := range draft.Items {
		if !item.Quantity.IsPositive() {
			return fmt.Errorf("invalid quantity for %s", item.ProductName)
		}
	}
	if draft.Type.IsSale() && draft.CustomerId == "" {
		return errors.New("a sale invoice requires a customer")
	}
	if draft.Type.IsSale() && draft.PaymentType == models.PaymentTypeCredit && draft.CustomerId == models.CashCustomerId {
		return errors.New("credit sales to the walk-in customer are not allowed")
	}
	if draft.PaymentType == models.PaymentTypeCash && draft.CashRegisterId == "" {
		return errors.New("a cash invoice requires a cash register")
	}
	return nil
}

func processInvoice(tx *gorm.DB, logger *logrus.Logger, draft *models.NewInvoice, isEditing bool, originalInvoice *models.Invoice) (string, error) {
	isSale := draft.Type.IsSale()

	// Step 1: revert original invoice effects if editing.
	if isEditing {
		if err := reverseInvoice(tx, logger, originalInvoice); err != nil {
			return "", err
		}
	}

	// Step 2: validate stock against the post-reversal state.
	if isSale {
		for _, item := range draft.Items {
			var product models.Product
			err := tx.Where("id = ?", item.ProductId).First(&product).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", &InsufficientStockError{ProductName: item.ProductName, Available: decimal.Zero}
			}
			if err != nil {
				config.LogError(logger, "invoiceWorkflow.go", "processInvoice", "ValidateStock", item, err)
				return "", err
			}
			if product.Stock.LessThan(item.Quantity) {
				return "", &InsufficientStockError{ProductName: product.Name, Available: product.Stock}
			}
		}
	}

	// Step 3: invoice number. Edits keep the original number; the counter is
	// only advanced after a fully successful new-invoice commit.
	var invoiceNumber int
	var err error
	if isEditing {
		invoiceNumber, err = models.ParseInvoiceNumber(originalInvoice.ID)
	} else {
		invoiceNumber, err = models.NextInvoiceNumber(tx)
	}
	if err != nil {
		config.LogError(logger, "invoiceWorkflow.go", "processInvoice", "InvoiceNumber", nil, err)
		return "", err
	}
	invoiceId := models.FormatInvoiceID(invoiceNumber)

	// Step 4: apply new invoice effects.
	for _, item := range draft.Items {
		change := item.Quantity
		if isSale {
			change = change.Neg()
		}
		if err := tx.Model(&models.Product{}).Where("id = ?", item.ProductId).
			UpdateColumn("stock", gorm.Expr("stock + ?", change)).Error; err != nil {
			config.LogError(logger, "invoiceWorkflow.go", "processInvoice", "ApplyStock", item, err)
			return "", err
		}
	}

	if draft.PaymentType == models.PaymentTypeCredit {
		// A credit sale increases what the customer owes us; a credit
		// purchase increases what we owe the supplier. Anonymous credit
		// purchases have no ledger leg.
		if isSale {
			var customer models.Customer
			if err := tx.Where("id = ?", draft.CustomerId).First(&customer).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return "", errors.New("customer not found")
				}
				return "", err
			}
			customer.Balances.Add(draft.Currency, draft.TotalAmount)
			if err := tx.Model(&customer).Update("balances", customer.Balances).Error; err != nil {
				config.LogError(logger, "invoiceWorkflow.go", "processInvoice", "ApplyCustomerBalance", customer.ID, err)
				return "", err
			}
		} else if draft.SupplierId != "" {
			var supplier models.Supplier
			if err := tx.Where("id = ?", draft.SupplierId).First(&supplier).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return "", errors.New("supplier not found")
				}
				return "", err
			}
			supplier.Balances.Add(draft.Currency, draft.TotalAmount)
			if err := tx.Model(&supplier).Update("balances", supplier.Balances).Error; err != nil {
				config.LogError(logger, "invoiceWorkflow.go", "processInvoice", "ApplySupplierBalance", supplier.ID, err)
				return "", err
			}
		}
	} else {
		var register models.CashRegister
		if err := tx.Where("id = ?", draft.CashRegisterId).First(&register).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", errors.New("cash register not found")
			}
			return "", err
		}
		delta := draft.TotalAmount
		kind := models.CashTransactionTypeSale
		description := fmt.Sprintf("Sale invoice #%s", invoiceId)
		if !isSale {
			delta = delta.Neg()
			kind = models.CashTransactionTypePurchase
			description = fmt.Sprintf("Purchase invoice #%s", invoiceId)
		}
		register.Balances.Add(draft.Currency, delta)
		if err := tx.Model(&register).Update("balances", register.Balances).Error; err != nil {
			config.LogError(logger, "invoiceWorkflow.go", "processInvoice", "ApplyRegisterBalance", register.ID, err)
			return "", err
		}

		audit := models.CashTransaction{
			ID:          models.NewCashTransactionID(),
			Date:        time.Now(),
			RegisterId:  draft.CashRegisterId,
			Type:        kind,
			Amount:      draft.TotalAmount,
			Currency:    draft.Currency,
			AmountInSyp: draft.TotalAmountInSyp,
			Description: description,
			RelatedId:   invoiceId,
		}
		if err := tx.Create(&audit).Error; err != nil {
			config.LogError(logger, "invoiceWorkflow.go", "processInvoice", "CreateCashTransaction", audit, err)
			return "", err
		}
	}

	// Step 5: persist header and line items; edits keep the original date.
	date := time.Now()
	if isEditing {
		date = originalInvoice.Date
	}
	if isEditing {
		err = tx.Model(&models.Invoice{}).Where("id = ?", invoiceId).Updates(map[string]interface{}{
			"Date":                date,
			"TotalAmount":         draft.TotalAmount,
			"Currency":            draft.Currency,
			"PaymentType":         draft.PaymentType,
			"TotalAmountInSyp":    draft.TotalAmountInSyp,
			"CustomerId":          draft.CustomerId,
			"SupplierId":          draft.SupplierId,
			"Type":                draft.Type,
			"CashRegisterId":      draft.CashRegisterId,
			"VendorInvoiceNumber": draft.VendorInvoiceNumber,
		}).Error
	} else {
		err = tx.Create(&models.Invoice{
			ID:                  invoiceId,
			Date:                date,
			TotalAmount:         draft.TotalAmount,
			Currency:            draft.Currency,
			PaymentType:         draft.PaymentType,
			TotalAmountInSyp:    draft.TotalAmountInSyp,
			CustomerId:          draft.CustomerId,
			SupplierId:          draft.SupplierId,
			Type:                draft.Type,
			CashRegisterId:      draft.CashRegisterId,
			VendorInvoiceNumber: draft.VendorInvoiceNumber,
		}).Error
	}
	if err != nil {
		config.LogError(logger, "invoiceWorkflow.go", "processInvoice", "PersistInvoice", invoiceId, err)
		return "", err
	}

	items := make([]models.InvoiceItem, 0, len(draft.Items))
	for _, item := range draft.Items {
		items = append(items, models.InvoiceItem{
			InvoiceId:   invoiceId,
			ProductId:   item.ProductId,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}
	if err := tx.Create(&items).Error; err != nil {
		config.LogError(logger, "invoiceWorkflow.go", "processInvoice", "CreateInvoiceItems", invoiceId, err)
		return "", err
	}

	if !isEditing {
		if err := models.SetNextInvoiceNumber(tx, invoiceNumber+1); err != nil {
			config.LogError(logger, "invoiceWorkflow.go", "processInvoice", "AdvanceCounter", invoiceNumber+1, err)
			return "", err
		}
	}

	return invoiceId, nil
}

// reverseInvoice undoes every effect of a committed invoice: stock, the
// credit or cash leg, the audit row, and the line items. The deltas are the
// exact negation of what apply produced, so edit symmetry holds.
func reverseInvoice(tx *gorm.DB, logger *logrus.Logger, original *models.Invoice) error {
	wasSale := original.Type.IsSale()

	var oldItems []models.InvoiceItem
	if err := tx.Where("invoice_id = ?", original.ID).Find(&oldItems).Error; err != nil {
		config.LogError(logger, "invoiceWorkflow.go", "reverseInvoice", "LoadItems", original.ID, err)
		return err
	}

	for _, oldItem := range oldItems {
		revert := oldItem.Quantity
		if !wasSale {
			revert = revert.Neg()
		}
		if err := tx.Model(&models.Product{}).Where("id = ?", oldItem.ProductId).
			UpdateColumn("stock", gorm.Expr("stock + ?", revert)).Error; err != nil {
			config.LogError(logger, "invoiceWorkflow.go", "reverseInvoice", "RevertStock", oldItem, err)
			return err
		}
	}

	if original.PaymentType == models.PaymentTypeCredit {
		if wasSale && original.CustomerId != "" {
			var customer models.Customer
			if err := tx.Where("id = ?", original.CustomerId).First(&customer).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errors.New("customer not found")
				}
				return err
			}
			customer.Balances.Sub(original.Currency, original.TotalAmount)
			if err := tx.Model(&customer).Update("balances", customer.Balances).Error; err != nil {
				return err
			}
		} else if !wasSale && original.SupplierId != "" {
			var supplier models.Supplier
			if err := tx.Where("id = ?", original.SupplierId).First(&supplier).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errors.New("supplier not found")
				}
				return err
			}
			supplier.Balances.Sub(original.Currency, original.TotalAmount)
			if err := tx.Model(&supplier).Update("balances", supplier.Balances).Error; err != nil {
				return err
			}
		}
	} else if original.CashRegisterId != "" {
		var register models.CashRegister
		if err := tx.Where("id = ?", original.CashRegisterId).First(&register).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("cash register not found")
			}
			return err
		}
		delta := original.TotalAmount
		if wasSale {
			delta = delta.Neg()
		}
		register.Balances.Add(original.Currency, delta)
		if err := tx.Model(&register).Update("balances", register.Balances).Error; err != nil {
			return err
		}
	}

	if err := models.DeleteCashTransactionsByRelatedId(tx, original.ID); err != nil {
		config.LogError(logger, "invoiceWorkflow.go", "reverseInvoice", "DeleteCashTransactions", original.ID, err)
		return err
	}
	if err := tx.Where("invoice_id = ?", original.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
		config.LogError(logger, "invoiceWorkflow.go", "reverseInvoice", "DeleteItems", original.ID, err)
		return err
	}
	return nil
}
