package models

import (
	"context"

	"github.com/google/uuid"
	"github.com/shamsoft/pos_backend/config"
)

type Supplier struct {
	ID       string     `gorm:"primaryKey;size:64" json:"id"`
	Name     string     `gorm:"size:200;not null" json:"name"`
	Phone    string     `gorm:"size:50" json:"phone,omitempty"`
	Balances BalanceMap `gorm:"not null" json:"balances"`
}

type NewSupplier struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

func CreateSupplier(ctx context.Context, input *NewSupplier) (*Supplier, error) {
	supplier := Supplier{
		ID:       "s-" + uuid.NewString(),
		Name:     input.Name,
		Phone:    input.Phone,
		Balances: ZeroBalances(),
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&supplier).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func UpdateSupplier(ctx context.Context, id string, input *NewSupplier) (*Supplier, error) {
	supplier, err := GetSupplier(ctx, id)
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	err = db.WithContext(ctx).Model(supplier).Updates(map[string]interface{}{
		"Name":  input.Name,
		"Phone": input.Phone,
	}).Error
	if err != nil {
		return nil, err
	}
	return supplier, nil
}

func DeleteSupplier(ctx context.Context, id string) (*Supplier, error) {
	supplier, err := GetSupplier(ctx, id)
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(supplier).Error; err != nil {
		return nil, err
	}
	return supplier, nil
}

func GetSupplier(ctx context.Context, id string) (*Supplier, error) {
	db := config.GetDB()
	var supplier Supplier
	if err := db.WithContext(ctx).Where("id = ?", id).First(&supplier).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func GetSuppliers(ctx context.Context) ([]*Supplier, error) {
	db := config.GetDB()
	var results []*Supplier
	if err := db.WithContext(ctx).Order("name").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
