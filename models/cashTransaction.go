package models

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shamsoft/pos_backend/config"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CashTransaction is the append-only audit trail of every cash movement.
// Rows are inserted by the treasury and settlement workflows and deleted only
// by relatedId during an invoice-edit reversal; they are never updated.
type CashTransaction struct {
	ID              string              `gorm:"primaryKey;size:64" json:"id"`
	Date            time.Time           `gorm:"not null;index" json:"date"`
	RegisterId      string              `gorm:"size:64;not null;index" json:"registerId"`
	Type            CashTransactionType `gorm:"size:32;not null" json:"type"`
	Amount          decimal.Decimal     `gorm:"type:decimal(20,4);not null" json:"amount"`
	Currency        Currency            `gorm:"size:8;not null" json:"currency"`
	AmountInSyp     decimal.Decimal     `gorm:"type:decimal(20,4);not null" json:"amountInSyp"`
	Description     string              `gorm:"size:500;not null" json:"description"`
	RelatedId       string              `gorm:"size:64;index" json:"relatedId,omitempty"`
	LinkedInvoiceId string              `gorm:"size:64;index" json:"linkedInvoiceId,omitempty"`
}

func NewCashTransactionID() string {
	return "ct-" + uuid.NewString()
}

func GetCashTransactions(ctx context.Context) ([]*CashTransaction, error) {
	db := config.GetDB()
	var results []*CashTransaction
	if err := db.WithContext(ctx).Order("date").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func GetCashTransactionsByRegister(ctx context.Context, registerId string) ([]*CashTransaction, error) {
	db := config.GetDB()
	var results []*CashTransaction
	if err := db.WithContext(ctx).Where("register_id = ?", registerId).Order("date").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// DeleteCashTransactionsByRelatedId removes the audit rows tied to a record
// being reversed. Only the settlement engine calls this, inside its
// transaction.
func DeleteCashTransactionsByRelatedId(tx *gorm.DB, relatedId string) error {
	return tx.Where("related_id = ?", relatedId).Delete(&CashTransaction{}).Error
}
