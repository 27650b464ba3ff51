package models

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shamsoft/pos_backend/config"
)

type Category struct {
	ID       string `gorm:"primaryKey;size:64" json:"id"`
	Name     string `gorm:"size:200;not null" json:"name"`
	ParentId string `gorm:"size:64;index" json:"parentId,omitempty"`
}

type NewCategory struct {
	Name     string `json:"name" binding:"required"`
	ParentId string `json:"parentId"`
}

func CreateCategory(ctx context.Context, input *NewCategory) (*Category, error) {
	category := Category{
		ID:       "cat-" + uuid.NewString(),
		Name:     input.Name,
		ParentId: input.ParentId,
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func UpdateCategory(ctx context.Context, id string, input *NewCategory) (*Category, error) {
	category, err := GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	err = db.WithContext(ctx).Model(category).Updates(map[string]interface{}{
		"Name":     input.Name,
		"ParentId": input.ParentId,
	}).Error
	if err != nil {
		return nil, err
	}
	return category, nil
}

func DeleteCategory(ctx context.Context, id string) (*Category, error) {
	category, err := GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	// Do not delete while products still reference the category.
	var count int64
	if err := db.WithContext(ctx).Model(&Product{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("used by products")
	}

	if err := db.WithContext(ctx).Delete(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func GetCategory(ctx context.Context, id string) (*Category, error) {
	db := config.GetDB()
	var category Category
	if err := db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func GetCategories(ctx context.Context) ([]*Category, error) {
	db := config.GetDB()
	var results []*Category
	if err := db.WithContext(ctx).Order("name").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
