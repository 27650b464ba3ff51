package models

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shamsoft/pos_backend/config"
	"github.com/shamsoft/pos_backend/utils"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID             string          `gorm:"primaryKey;size:64" json:"id"`
	Name           string          `gorm:"size:200;not null;index" json:"name"`
	Sku            *string         `gorm:"size:100;uniqueIndex" json:"sku,omitempty"`
	Stock          decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"stock"`
	CostPrice      Price           `gorm:"not null" json:"costPrice"`
	WholesalePrice Price           `gorm:"not null" json:"wholesalePrice"`
	SellingPrice   Price           `gorm:"not null" json:"sellingPrice"`
	CategoryId     string          `gorm:"size:64;index" json:"categoryId,omitempty"`
}

type NewProduct struct {
	Name           string          `json:"name" binding:"required"`
	Sku            *string         `json:"sku"`
	Stock          decimal.Decimal `json:"stock"`
	CostPrice      Price           `json:"costPrice" binding:"required"`
	WholesalePrice Price           `json:"wholesalePrice" binding:"required"`
	SellingPrice   Price           `json:"sellingPrice" binding:"required"`
	CategoryId     string          `json:"categoryId"`
}

// validate input for both create & update. (id = "" for create)

func (input *NewProduct) validate(ctx context.Context, id string) error {
	if input.Stock.IsNegative() {
		return errors.New("stock cannot be negative")
	}
	for _, p := range []Price{input.CostPrice, input.WholesalePrice, input.SellingPrice} {
		if !p.Currency.Valid() {
			return errors.New("invalid price currency")
		}
	}
	if input.Sku != nil && *input.Sku != "" {
		db := config.GetDB()
		var count int64
		dbCtx := db.WithContext(ctx).Model(&Product{}).Where("sku = ?", *input.Sku)
		if id != "" {
			dbCtx = dbCtx.Where("id <> ?", id)
		}
		if err := dbCtx.Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errors.New("sku already in use")
		}
	}
	return nil
}

func CreateProduct(ctx context.Context, input *NewProduct) (*Product, error) {
	if err := input.validate(ctx, ""); err != nil {
		return nil, err
	}

	product := Product{
		ID:             "p-" + uuid.NewString(),
		Name:           input.Name,
		Sku:            input.Sku,
		Stock:          input.Stock,
		CostPrice:      input.CostPrice,
		WholesalePrice: input.WholesalePrice,
		SellingPrice:   input.SellingPrice,
		CategoryId:     input.CategoryId,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func UpdateProduct(ctx context.Context, id string, input *NewProduct) (*Product, error) {
	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	product, err := GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(product).Updates(map[string]interface{}{
		"Name":           input.Name,
		"Sku":            input.Sku,
		"Stock":          input.Stock,
		"CostPrice":      input.CostPrice,
		"WholesalePrice": input.WholesalePrice,
		"SellingPrice":   input.SellingPrice,
		"CategoryId":     input.CategoryId,
	}).Error
	if err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProductStock is the direct inventory-edit path; invoice-driven stock
// changes go through the settlement engine instead.
func UpdateProductStock(ctx context.Context, id string, newStock decimal.Decimal) error {
	if newStock.IsNegative() {
		return errors.New("stock cannot be negative")
	}
	db := config.GetDB()
	result := db.WithContext(ctx).Model(&Product{}).Where("id = ?", id).Update("stock", newStock)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.ErrorRecordNotFound
	}
	return nil
}

func DeleteProduct(ctx context.Context, id string) (*Product, error) {
	product, err := GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func GetProduct(ctx context.Context, id string) (*Product, error) {
	db := config.GetDB()
	var product Product
	if err := db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProducts returns the full catalog snapshot; the UI filters client-side.
func GetProducts(ctx context.Context) ([]*Product, error) {
	db := config.GetDB()
	var results []*Product
	if err := db.WithContext(ctx).Order("name").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
