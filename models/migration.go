package models

import (
	"log"

	"github.com/shamsoft/pos_backend/config"
	"github.com/shopspring/decimal"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&Category{}, &Product{},
		&Customer{}, &Supplier{},
		&CashRegister{}, &CashTransaction{},
		&Invoice{}, &InvoiceItem{},
		&ExpenseCategory{}, &Expense{},
		&Setting{}, &SettingInternal{},
		&User{},
	)
	if err != nil {
		log.Fatal(err)
	}
}

// SeedDefaults is idempotent: it inserts the records a fresh install needs
// and leaves existing data alone.
func SeedDefaults() {
	db := config.GetDB()

	seeds := []error{
		db.FirstOrCreate(&CashRegister{}, CashRegister{ID: MainCashRegisterId}).Error,
		db.FirstOrCreate(&Customer{}, Customer{ID: CashCustomerId}).Error,
		db.FirstOrCreate(&SettingInternal{}, SettingInternal{Key: nextInvoiceNumberKey}).Error,
	}
	for _, err := range seeds {
		if err != nil {
			log.Fatal(err)
		}
	}

	// FirstOrCreate with only the key set leaves the payload columns zeroed
	// on first insert; fill them in without clobbering existing rows.
	var register CashRegister
	if err := db.First(&register, "id = ?", MainCashRegisterId).Error; err == nil && register.Name == "" {
		db.Model(&register).Updates(map[string]interface{}{
			"Name":     "Main register",
			"Balances": ZeroBalances(),
		})
	}
	var cashCustomer Customer
	if err := db.First(&cashCustomer, "id = ?", CashCustomerId).Error; err == nil && cashCustomer.Name == "" {
		db.Model(&cashCustomer).Updates(map[string]interface{}{
			"Name":     "Walk-in customer",
			"Balances": ZeroBalances(),
		})
	}
	var counter SettingInternal
	if err := db.First(&counter, "key = ?", nextInvoiceNumberKey).Error; err == nil && counter.Value == "" {
		db.Model(&counter).Update("value", "1")
	}

	if rates, err := GetSetting[ExchangeRates](db, SettingKeyExchangeRates); err == nil && rates == nil {
		SetSetting(db, SettingKeyExchangeRates, ExchangeRates{
			USD: decimal.NewFromInt(14000),
			TRY: decimal.NewFromInt(450),
		})
	}
	if info, err := GetSetting[CompanyInfo](db, SettingKeyCompanyInfo); err == nil && info == nil {
		SetSetting(db, SettingKeyCompanyInfo, CompanyInfo{Name: "Company name", Address: "Address", Phone: "Phone"})
	}
	if printer, err := GetSetting[PrinterSettings](db, SettingKeyPrinterSettings); err == nil && printer == nil {
		SetSetting(db, SettingKeyPrinterSettings, PrinterSettings{PaperSize: "80mm"})
	}
}
