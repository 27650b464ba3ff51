package models

import (
	"fmt"
	"strconv"

	"github.com/shamsoft/pos_backend/config"
	"gorm.io/gorm"
)

// SettingInternal backs counters the UI must not edit directly. Its single
// meaningful row is the invoice number sequence.
type SettingInternal struct {
	Key   string `gorm:"primaryKey;size:100" json:"key"`
	Value string `gorm:"not null" json:"value"`
}

func (SettingInternal) TableName() string {
	return "settings_internal"
}

const nextInvoiceNumberKey = "nextInvoiceNumber"

// NextInvoiceNumber reads the counter without advancing it. Callers advance
// it with SetNextInvoiceNumber inside the same transaction, so a rolled-back
// commit never burns a number.
func NextInvoiceNumber(tx *gorm.DB) (int, error) {
	var row SettingInternal
	if err := tx.Where("key = ?", nextInvoiceNumberKey).First(&row).Error; err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(row.Value)
	if err != nil {
		return 0, fmt.Errorf("corrupt invoice counter %q: %w", row.Value, err)
	}
	return n, nil
}

func SetNextInvoiceNumber(tx *gorm.DB, n int) error {
	return tx.Model(&SettingInternal{}).
		Where("key = ?", nextInvoiceNumberKey).
		Update("value", strconv.Itoa(n)).Error
}

func GetNextInvoiceNumber() (int, error) {
	return NextInvoiceNumber(config.GetDB())
}
