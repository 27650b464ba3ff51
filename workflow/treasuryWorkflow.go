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

type NewTransfer struct {
	FromRegisterId string          `json:"fromRegisterId" binding:"required"`
	ToRegisterId   string          `json:"toRegisterId" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Currency       models.Currency `json:"currency" binding:"required"`
}

type NewMovement struct {
	RegisterId  string                     `json:"registerId" binding:"required"`
	Type        models.CashTransactionType `json:"type" binding:"required"`
	Amount      decimal.Decimal            `json:"amount" binding:"required"`
	Currency    models.Currency            `json:"currency" binding:"required"`
	Description string                     `json:"description"`
}

// TransferFunds moves cash between two registers atomically, leaving one
// transfer-out and one transfer-in audit row. Registers may go negative; only
// the invariant that the two deltas cancel is enforced.
func TransferFunds(ctx context.Context, input *NewTransfer) error {
	logger := config.GetLogger()

	if !input.Amount.IsPositive() {
		return errors.New("transfer amount must be positive")
	}
	if !input.Currency.Valid() {
		return fmt.Errorf("invalid currency: %q", input.Currency)
	}
	if input.FromRegisterId == input.ToRegisterId {
		return errors.New("cannot transfer a register to itself")
	}

	db := config.GetDB()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var from, to models.CashRegister
		if err := tx.Where("id = ?", input.FromRegisterId).First(&from).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("source register not found")
			}
			return err
		}
		if err := tx.Where("id = ?", input.ToRegisterId).First(&to).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("destination register not found")
			}
			return err
		}

		amountInSyp, err := anchorAmount(tx, input.Amount, input.Currency)
		if err != nil {
			return err
		}

		from.Balances.Sub(input.Currency, input.Amount)
		to.Balances.Add(input.Currency, input.Amount)
		if err := tx.Model(&from).Update("balances", from.Balances).Error; err != nil {
			config.LogError(logger, "treasuryWorkflow.go", "TransferFunds", "UpdateSource", from.ID, err)
			return err
		}
		if err := tx.Model(&to).Update("balances", to.Balances).Error; err != nil {
			config.LogError(logger, "treasuryWorkflow.go", "TransferFunds", "UpdateDestination", to.ID, err)
			return err
		}

		now := time.Now()
		rows := []models.CashTransaction{
			{
				ID:          models.NewCashTransactionID(),
				Date:        now,
				RegisterId:  from.ID,
				Type:        models.CashTransactionTypeTransferOut,
				Amount:      input.Amount,
				Currency:    input.Currency,
				AmountInSyp: amountInSyp,
				Description: fmt.Sprintf("Transfer to %s", to.Name),
				RelatedId:   to.ID,
			},
			{
				ID:          models.NewCashTransactionID(),
				Date:        now,
				RegisterId:  to.ID,
				Type:        models.CashTransactionTypeTransferIn,
				Amount:      input.Amount,
				Currency:    input.Currency,
				AmountInSyp: amountInSyp,
				Description: fmt.Sprintf("Transfer from %s", from.Name),
				RelatedId:   from.ID,
			},
		}
		if err := tx.Create(&rows).Error; err != nil {
			config.LogError(logger, "treasuryWorkflow.go", "TransferFunds", "CreateCashTransactions", input, err)
			return err
		}
		return nil
	})
}

// RecordMovement applies a manual deposit or withdrawal to a register.
func RecordMovement(ctx context.Context, input *NewMovement) error {
	logger := config.GetLogger()

	if !input.Amount.IsPositive() {
		return errors.New("movement amount must be positive")
	}
	if !input.Currency.Valid() {
		return fmt.Errorf("invalid currency: %q", input.Currency)
	}
	if input.Type != models.CashTransactionTypeDeposit && input.Type != models.CashTransactionTypeWithdrawal {
		return fmt.Errorf("invalid movement type: %q", input.Type)
	}

	db := config.GetDB()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return recordMovement(tx, logger, input)
	})
}

func recordMovement(tx *gorm.DB, logger *logrus.Logger, input *NewMovement) error {
	var register models.CashRegister
	if err := tx.Where("id = ?", input.RegisterId).First(&register).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("cash register not found")
		}
		return err
	}

	amountInSyp, err := anchorAmount(tx, input.Amount, input.Currency)
	if err != nil {
		return err
	}

	delta := input.Amount
	description := input.Description
	if input.Type == models.CashTransactionTypeWithdrawal {
		delta = delta.Neg()
		if description == "" {
			description = "Cash withdrawal"
		}
	} else if description == "" {
		description = "Cash deposit"
	}

	register.Balances.Add(input.Currency, delta)
	if err := tx.Model(&register).Update("balances", register.Balances).Error; err != nil {
		config.LogError(logger, "treasuryWorkflow.go", "recordMovement", "UpdateRegister", register.ID, err)
		return err
	}

	audit := models.CashTransaction{
		ID:          models.NewCashTransactionID(),
		Date:        time.Now(),
		RegisterId:  register.ID,
		Type:        input.Type,
		Amount:      input.Amount,
		Currency:    input.Currency,
		AmountInSyp: amountInSyp,
		Description: description,
	}
	if err := tx.Create(&audit).Error; err != nil {
		config.LogError(logger, "treasuryWorkflow.go", "recordMovement", "CreateCashTransaction", audit, err)
		return err
	}
	return nil
}

// anchorAmount converts an amount to SYP at the rates configured right now.
func anchorAmount(tx *gorm.DB, amount decimal.Decimal, currency models.Currency) (decimal.Decimal, error) {
	if currency == models.CurrencySYP {
		return amount, nil
	}
	rates, err := models.GetExchangeRates(tx)
	if err != nil {
		return decimal.Zero, err
	}
	return rates.ToSyp(models.Price{Amount: amount, Currency: currency})
}
