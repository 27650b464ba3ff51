package models

import (
	"errors"

	"github.com/shamsoft/pos_backend/config"
	"github.com/shamsoft/pos_backend/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Setting is a JSON-valued key/value row. Ledger-neutral configuration
// (exchange rates, company info, printer settings) lives here.
type Setting struct {
	Key   string `gorm:"primaryKey;size:100" json:"key"`
	Value string `gorm:"type:text;not null" json:"value"`
}

const (
	SettingKeyExchangeRates   = "exchangeRates"
	SettingKeyCompanyInfo     = "companyInfo"
	SettingKeyPrinterSettings = "printerSettings"
	SettingKeySetupCompleted  = "isSetupCompleted"
)

type CompanyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Logo    string `json:"logo,omitempty"`
}

type PrinterSettings struct {
	PaperSize             string `json:"paperSize"`
	DefaultPrinterName    string `json:"defaultPrinterName,omitempty"`
	DefaultPrinterAddress string `json:"defaultPrinterAddress,omitempty"`
}

// GetSetting returns the decoded value for key, or nil when the key is absent.
func GetSetting[T any](tx *gorm.DB, key string) (*T, error) {
	var row Setting
	err := tx.Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out T
	if err := utils.UnmarshalFromJSON([]byte(row.Value), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func SetSetting[T any](tx *gorm.DB, key string, value T) error {
	data, err := utils.MarshalToJSON(value)
	if err != nil {
		return err
	}
	row := Setting{Key: key, Value: data}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&row).Error
}

func GetCompanyInfo(tx *gorm.DB) (*CompanyInfo, error) {
	return GetSetting[CompanyInfo](tx, SettingKeyCompanyInfo)
}

func SetCompanyInfo(tx *gorm.DB, info CompanyInfo) error {
	return SetSetting(tx, SettingKeyCompanyInfo, info)
}

func GetPrinterSettings(tx *gorm.DB) (*PrinterSettings, error) {
	return GetSetting[PrinterSettings](tx, SettingKeyPrinterSettings)
}

func SetPrinterSettings(tx *gorm.DB, settings PrinterSettings) error {
	return SetSetting(tx, SettingKeyPrinterSettings, settings)
}

func IsSetupCompleted(tx *gorm.DB) (bool, error) {
	v, err := GetSetting[bool](tx, SettingKeySetupCompleted)
	if err != nil || v == nil {
		return false, err
	}
	return *v, nil
}

func SetSetupCompleted(completed bool) error {
	return SetSetting(config.GetDB(), SettingKeySetupCompleted, completed)
}
