package models

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shamsoft/pos_backend/config"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Invoice struct {
	ID                  string          `gorm:"primaryKey;size:64" json:"id"`
	Date                time.Time       `gorm:"not null;index" json:"date"`
	Items               []InvoiceItem   `gorm:"foreignKey:InvoiceId;references:ID" json:"items"`
	TotalAmount         decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"totalAmount"`
	Currency            Currency        `gorm:"size:8;not null" json:"currency"`
	PaymentType         PaymentType     `gorm:"size:16;not null" json:"paymentType"`
	TotalAmountInSyp    decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"totalAmountInSyp"`
	CustomerId          string          `gorm:"size:64;index" json:"customerId,omitempty"`
	SupplierId          string          `gorm:"size:64;index" json:"supplierId,omitempty"`
	Type                InvoiceType     `gorm:"size:16;not null" json:"type"`
	CashRegisterId      string          `gorm:"size:64;index" json:"cashRegisterId,omitempty"`
	VendorInvoiceNumber string          `gorm:"size:100" json:"vendorInvoiceNumber,omitempty"`
}

// InvoiceItem snapshots the product name and prices at sale time, so later
// catalog edits do not rewrite history.
type InvoiceItem struct {
	ID          int             `gorm:"primaryKey" json:"id"`
	InvoiceId   string          `gorm:"size:64;not null;index" json:"invoiceId"`
	ProductId   string          `gorm:"size:64;not null;index" json:"productId"`
	ProductName string          `gorm:"size:200;not null" json:"productName"`
	Quantity    decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"quantity"`
	UnitPrice   Price           `gorm:"not null" json:"unitPrice"`
	TotalPrice  Price           `gorm:"not null" json:"totalPrice"`
}

// NewInvoice is the settlement draft: a complete invoice missing only id and
// date. Monetary totals must already be currency-consistent; the engine uses
// them as presented.
type NewInvoice struct {
	Items               []NewInvoiceItem `json:"items" binding:"required,min=1"`
	TotalAmount         decimal.Decimal  `json:"totalAmount"`
	Currency            Currency         `json:"currency" binding:"required"`
	PaymentType         PaymentType      `json:"paymentType" binding:"required"`
	TotalAmountInSyp    decimal.Decimal  `json:"totalAmountInSyp"`
	CustomerId          string           `json:"customerId"`
	SupplierId          string           `json:"supplierId"`
	Type                InvoiceType      `json:"type" binding:"required"`
	CashRegisterId      string           `json:"cashRegisterId"`
	VendorInvoiceNumber string           `json:"vendorInvoiceNumber"`
}

type NewInvoiceItem struct {
	ProductId   string          `json:"productId" binding:"required"`
	ProductName string          `json:"productName" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   Price           `json:"unitPrice"`
	TotalPrice  Price           `json:"totalPrice"`
}

const invoiceIdPrefix = "INV-"

func FormatInvoiceID(number int) string {
	return fmt.Sprintf("%s%05d", invoiceIdPrefix, number)
}

// ParseInvoiceNumber extracts the numeric suffix of an id like INV-00042.
func ParseInvoiceNumber(id string) (int, error) {
	suffix, ok := strings.CutPrefix(id, invoiceIdPrefix)
	if !ok {
		return 0, fmt.Errorf("malformed invoice id: %q", id)
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, fmt.Errorf("malformed invoice id: %q", id)
	}
	return n, nil
}

func GetInvoice(ctx context.Context, id string) (*Invoice, error) {
	db := config.GetDB()
	var invoice Invoice
	if err := db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&invoice).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

// GetInvoiceWithRetry looks up a just-committed invoice for immediate
// printing. A print triggered right after commit can race the read snapshot,
// so the lookup retries briefly instead of failing the print job.
func GetInvoiceWithRetry(ctx context.Context, id string, attempts int, delay time.Duration) (*Invoice, error) {
	var lastErr error
	for i := 0; i < attempts; i++ {
		invoice, err := GetInvoice(ctx, id)
		if err == nil {
			return invoice, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		lastErr = err
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
	return nil, lastErr
}

func GetInvoices(ctx context.Context) ([]*Invoice, error) {
	db := config.GetDB()
	var results []*Invoice
	if err := db.WithContext(ctx).Preload("Items").Order("date desc").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
