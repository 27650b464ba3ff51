package models

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shamsoft/pos_backend/config"
)

// MainCashRegisterId is seeded on first run so a fresh install can sell
// immediately.
const MainCashRegisterId = "cr-1"

type CashRegister struct {
	ID       string     `gorm:"primaryKey;size:64" json:"id"`
	Name     string     `gorm:"size:200;not null" json:"name"`
	Balances BalanceMap `gorm:"not null" json:"balances"`
}

type NewCashRegister struct {
	Name string `json:"name" binding:"required"`
}

func CreateCashRegister(ctx context.Context, input *NewCashRegister) (*CashRegister, error) {
	register := CashRegister{
		ID:       "cr-" + uuid.NewString(),
		Name:     input.Name,
		Balances: ZeroBalances(),
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&register).Error; err != nil {
		return nil, err
	}
	return &register, nil
}

func UpdateCashRegister(ctx context.Context, id string, input *NewCashRegister) (*CashRegister, error) {
	register, err := GetCashRegister(ctx, id)
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	err = db.WithContext(ctx).Model(register).Updates(map[string]interface{}{
		"Name": input.Name,
	}).Error
	if err != nil {
		return nil, err
	}
	return register, nil
}

func DeleteCashRegister(ctx context.Context, id string) (*CashRegister, error) {
	register, err := GetCashRegister(ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	// The audit trail must stay resolvable: refuse to delete a register with
	// recorded transactions.
	var count int64
	if err := db.WithContext(ctx).Model(&CashTransaction{}).Where("register_id = ?", id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("register has recorded transactions")
	}

	if err := db.WithContext(ctx).Delete(register).Error; err != nil {
		return nil, err
	}
	return register, nil
}

func GetCashRegister(ctx context.Context, id string) (*CashRegister, error) {
	db := config.GetDB()
	var register CashRegister
	if err := db.WithContext(ctx).Where("id = ?", id).First(&register).Error; err != nil {
		return nil, err
	}
	return &register, nil
}

func GetCashRegisters(ctx context.Context) ([]*CashRegister, error) {
	db := config.GetDB()
	var results []*CashRegister
	if err := db.WithContext(ctx).Order("name").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
