package models

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shamsoft/pos_backend/config"
	"github.com/shopspring/decimal"
)

type ExpenseCategory struct {
	ID   string `gorm:"primaryKey;size:64" json:"id"`
	Name string `gorm:"size:200;not null" json:"name"`
}

type NewExpenseCategory struct {
	Name string `json:"name" binding:"required"`
}

type Expense struct {
	ID             string          `gorm:"primaryKey;size:64" json:"id"`
	Date           time.Time       `gorm:"not null;index" json:"date"`
	Description    string          `gorm:"size:500;not null" json:"description"`
	CategoryId     string          `gorm:"size:64;index" json:"categoryId,omitempty"`
	CashRegisterId string          `gorm:"size:64;not null;index" json:"cashRegisterId"`
	Amount         decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	Currency       Currency        `gorm:"size:8;not null" json:"currency"`
	AmountInSyp    decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amountInSyp"`
}

// NewExpense is the input for the expense-recording workflow; the anchor
// amount is computed there from live rates.
type NewExpense struct {
	Description    string          `json:"description" binding:"required"`
	CategoryId     string          `json:"categoryId"`
	CashRegisterId string          `json:"cashRegisterId" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Currency       Currency        `json:"currency" binding:"required"`
}

func NewExpenseID() string {
	return "e-" + uuid.NewString()
}

func CreateExpenseCategory(ctx context.Context, input *NewExpenseCategory) (*ExpenseCategory, error) {
	category := ExpenseCategory{
		ID:   "ec-" + uuid.NewString(),
		Name: input.Name,
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func GetExpenseCategories(ctx context.Context) ([]*ExpenseCategory, error) {
	db := config.GetDB()
	var results []*ExpenseCategory
	if err := db.WithContext(ctx).Order("name").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func GetExpenses(ctx context.Context) ([]*Expense, error) {
	db := config.GetDB()
	var results []*Expense
	if err := db.WithContext(ctx).Order("date desc").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
