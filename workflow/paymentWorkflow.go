package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shamsoft/pos_backend/config"
	"github.com/shamsoft/pos_backend/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type NewPayment struct {
	Direction       models.PaymentDirection `json:"direction" binding:"required"`
	PartyId         string                  `json:"partyId" binding:"required"`
	CashRegisterId  string                  `json:"cashRegisterId" binding:"required"`
	Amount          decimal.Decimal         `json:"amount" binding:"required"`
	Currency        models.Currency         `json:"currency" binding:"required"`
	LinkedInvoiceId string                  `json:"linkedInvoiceId"`
}

// RecordPayment settles part of a party's credit balance in cash. A received
// payment is a customer paying us; a made payment is us paying a supplier.
// Either way the party's debt in that currency shrinks by the amount, the
// register moves by the same amount in the matching direction, and one audit
// row records it. Overpayment is allowed and drives the balance negative.
func RecordPayment(ctx context.Context, input *NewPayment) error {
	logger := config.GetLogger()

	if !input.Direction.Valid() {
		return fmt.Errorf("invalid payment direction: %q", input.Direction)
	}
	if !input.Amount.IsPositive() {
		return errors.New("payment amount must be positive")
	}
	if !input.Currency.Valid() {
		return fmt.Errorf("invalid currency: %q", input.Currency)
	}

	db := config.GetDB()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var partyName string
		if input.Direction == models.PaymentDirectionReceived {
			var customer models.Customer
			if err := tx.Where("id = ?", input.PartyId).First(&customer).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errors.New("customer not found")
				}
				return err
			}
			customer.Balances.Sub(input.Currency, input.Amount)
			if err := tx.Model(&customer).Update("balances", customer.Balances).Error; err != nil {
				config.LogError(logger, "paymentWorkflow.go", "RecordPayment", "UpdateCustomerBalance", customer.ID, err)
				return err
			}
			partyName = customer.Name
		} else {
			var supplier models.Supplier
			if err := tx.Where("id = ?", input.PartyId).First(&supplier).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errors.New("supplier not found")
				}
				return err
			}
			supplier.Balances.Sub(input.Currency, input.Amount)
			if err := tx.Model(&supplier).Update("balances", supplier.Balances).Error; err != nil {
				config.LogError(logger, "paymentWorkflow.go", "RecordPayment", "UpdateSupplierBalance", supplier.ID, err)
				return err
			}
			partyName = supplier.Name
		}

		var register models.CashRegister
		if err := tx.Where("id = ?", input.CashRegisterId).First(&register).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("cash register not found")
			}
			return err
		}

		delta := input.Amount
		kind := models.CashTransactionTypePaymentReceived
		description := fmt.Sprintf("Payment from customer: %s", partyName)
		if input.Direction == models.PaymentDirectionMade {
			delta = delta.Neg()
			kind = models.CashTransactionTypePaymentMade
			description = fmt.Sprintf("Payment to supplier: %s", partyName)
		}
		register.Balances.Add(input.Currency, delta)
		if err := tx.Model(&register).Update("balances", register.Balances).Error; err != nil {
			config.LogError(logger, "paymentWorkflow.go", "RecordPayment", "UpdateRegisterBalance", register.ID, err)
			return err
		}

		amountInSyp, err := anchorAmount(tx, input.Amount, input.Currency)
		if err != nil {
			return err
		}
		audit := models.CashTransaction{
			ID:              models.NewCashTransactionID(),
			Date:            time.Now(),
			RegisterId:      register.ID,
			Type:            kind,
			Amount:          input.Amount,
			Currency:        input.Currency,
			AmountInSyp:     amountInSyp,
			Description:     description,
			RelatedId:       input.PartyId,
			LinkedInvoiceId: input.LinkedInvoiceId,
		}
		if err := tx.Create(&audit).Error; err != nil {
			config.LogError(logger, "paymentWorkflow.go", "RecordPayment", "CreateCashTransaction", audit, err)
			return err
		}
		return nil
	})
}
