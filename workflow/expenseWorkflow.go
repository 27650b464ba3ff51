package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shamsoft/pos_backend/config"
	"github.com/shamsoft/pos_backend/models"
	"gorm.io/gorm"
)

// RecordExpense books a business expense: the expense record, the register
// debit, and the audit row commit together.
func RecordExpense(ctx context.Context, input *models.NewExpense) (*models.Expense, error) {
	logger := config.GetLogger()

	if !input.Amount.IsPositive() {
		return nil, errors.New("expense amount must be positive")
	}
	if !input.Currency.Valid() {
		return nil, fmt.Errorf("invalid currency: %q", input.Currency)
	}

	db := config.GetDB()
	var expense models.Expense
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var register models.CashRegister
		if err := tx.Where("id = ?", input.CashRegisterId).First(&register).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("cash register not found")
			}
			return err
		}

		amountInSyp, err := anchorAmount(tx, input.Amount, input.Currency)
		if err != nil {
			return err
		}

		now := time.Now()
		expense = models.Expense{
			ID:             models.NewExpenseID(),
			Date:           now,
			Description:    input.Description,
			CategoryId:     input.CategoryId,
			CashRegisterId: input.CashRegisterId,
			Amount:         input.Amount,
			Currency:       input.Currency,
			AmountInSyp:    amountInSyp,
		}
		if err := tx.Create(&expense).Error; err != nil {
			config.LogError(logger, "expenseWorkflow.go", "RecordExpense", "CreateExpense", expense, err)
			return err
		}

		register.Balances.Sub(input.Currency, input.Amount)
		if err := tx.Model(&register).Update("balances", register.Balances).Error; err != nil {
			config.LogError(logger, "expenseWorkflow.go", "RecordExpense", "UpdateRegisterBalance", register.ID, err)
			return err
		}

		audit := models.CashTransaction{
			ID:          models.NewCashTransactionID(),
			Date:        now,
			RegisterId:  register.ID,
			Type:        models.CashTransactionTypeExpense,
			Amount:      input.Amount,
			Currency:    input.Currency,
			AmountInSyp: amountInSyp,
			Description: input.Description,
			RelatedId:   expense.ID,
		}
		if err := tx.Create(&audit).Error; err != nil {
			config.LogError(logger, "expenseWorkflow.go", "RecordExpense", "CreateCashTransaction", audit, err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &expense, nil
}
