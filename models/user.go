package models

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shamsoft/pos_backend/config"
	"github.com/shamsoft/pos_backend/utils"
	"gorm.io/gorm"
)

type User struct {
	ID       string   `gorm:"primaryKey;size:64" json:"id"`
	Username string   `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Password string   `gorm:"size:200;not null" json:"-"`
	Role     UserRole `gorm:"size:16;not null;default:'user'" json:"role"`
}

type NewUser struct {
	Username string   `json:"username" binding:"required"`
	Password string   `json:"password" binding:"required,min=4"`
	Role     UserRole `json:"role"`
}

var ErrInvalidCredentials = errors.New("invalid username or password")

func CreateUser(ctx context.Context, input *NewUser) (*User, error) {
	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	role := input.Role
	if role == "" {
		role = UserRoleUser
	}
	user := User{
		ID:       "u-" + uuid.NewString(),
		Username: input.Username,
		Password: string(hashed),
		Role:     role,
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func AuthenticateUser(ctx context.Context, username, password string) (*User, error) {
	db := config.GetDB()
	var user User
	err := db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := utils.ComparePassword(user.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func CountUsers(ctx context.Context) (int64, error) {
	db := config.GetDB()
	var count int64
	err := db.WithContext(ctx).Model(&User{}).Count(&count).Error
	return count, err
}
