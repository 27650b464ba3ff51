package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shamsoft/pos_backend/models"
	"github.com/shamsoft/pos_backend/workflow"
	"gorm.io/gorm"
)

// ProcessInvoice settles a new invoice draft.
func ProcessInvoice(c *gin.Context) {
	var draft models.NewInvoice
	if err := c.ShouldBindJSON(&draft); err != nil {
		respondBadRequest(c, err)
		return
	}

	invoiceId, err := workflow.ProcessInvoice(c.Request.Context(), &draft, false, nil)
	if err != nil {
		var stockErr *workflow.InsufficientStockError
		if errors.As(err, &stockErr) {
			respondError(c, http.StatusConflict, err)
			return
		}
		respondBadRequest(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "invoice processed",
		"invoiceId": invoiceId,
	})
}

// EditInvoice reverses the stored invoice and re-applies the new draft under
// the same number.
func EditInvoice(c *gin.Context) {
	id := c.Param("id")

	var draft models.NewInvoice
	if err := c.ShouldBindJSON(&draft); err != nil {
		respondBadRequest(c, err)
		return
	}

	original, err := models.GetInvoice(c.Request.Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, errors.New("invoice not found"))
		return
	}
	if err != nil {
		respondInternal(c, err)
		return
	}

	invoiceId, err := workflow.ProcessInvoice(c.Request.Context(), &draft, true, original)
	if err != nil {
		var stockErr *workflow.InsufficientStockError
		if errors.As(err, &stockErr) {
			respondError(c, http.StatusConflict, err)
			return
		}
		respondBadRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "invoice updated",
		"invoiceId": invoiceId,
	})
}

func GetInvoices(c *gin.Context) {
	invoices, err := models.GetInvoices(c.Request.Context())
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, invoices)
}

// GetInvoice serves a single invoice. With ?forPrint=true the lookup retries
// briefly, covering the print job fired immediately after settlement.
func GetInvoice(c *gin.Context) {
	id := c.Param("id")

	var invoice *models.Invoice
	var err error
	if c.Query("forPrint") == "true" {
		invoice, err = models.GetInvoiceWithRetry(c.Request.Context(), id, 5, 100*time.Millisecond)
	} else {
		invoice, err = models.GetInvoice(c.Request.Context(), id)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, errors.New("invoice not found"))
		return
	}
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, invoice)
}

// GetNextInvoiceNumber previews the number the next invoice will take.
func GetNextInvoiceNumber(c *gin.Context) {
	n, err := models.GetNextInvoiceNumber()
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, gin.H{
		"number": n,
		"id":     models.FormatInvoiceID(n),
	})
}
