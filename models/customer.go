package models

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shamsoft/pos_backend/config"
)

// CashCustomerId is the sentinel walk-in customer every POS cash sale may
// fall back to. It must never carry a credit balance.
const CashCustomerId = "c-cash"

type Customer struct {
	ID       string     `gorm:"primaryKey;size:64" json:"id"`
	Name     string     `gorm:"size:200;not null" json:"name"`
	Phone    string     `gorm:"size:50" json:"phone,omitempty"`
	Balances BalanceMap `gorm:"not null" json:"balances"`
}

type NewCustomer struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

func CreateCustomer(ctx context.Context, input *NewCustomer) (*Customer, error) {
	customer := Customer{
		ID:       "c-" + uuid.NewString(),
		Name:     input.Name,
		Phone:    input.Phone,
		Balances: ZeroBalances(),
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// UpdateCustomer edits identity fields only. Balances are mutated exclusively
// by the settlement and payment workflows.
func UpdateCustomer(ctx context.Context, id string, input *NewCustomer) (*Customer, error) {
	customer, err := GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	err = db.WithContext(ctx).Model(customer).Updates(map[string]interface{}{
		"Name":  input.Name,
		"Phone": input.Phone,
	}).Error
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func DeleteCustomer(ctx context.Context, id string) (*Customer, error) {
	if id == CashCustomerId {
		return nil, errors.New("the walk-in customer cannot be deleted")
	}
	customer, err := GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

func GetCustomer(ctx context.Context, id string) (*Customer, error) {
	db := config.GetDB()
	var customer Customer
	if err := db.WithContext(ctx).Where("id = ?", id).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func GetCustomers(ctx context.Context) ([]*Customer, error) {
	db := config.GetDB()
	var results []*Customer
	if err := db.WithContext(ctx).Order("name").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
