package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shamsoft/pos_backend/models"
	"github.com/shamsoft/pos_backend/workflow"
	"gorm.io/gorm"
)

func CreateCashRegister(c *gin.Context) {
	var input models.NewCashRegister
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err)
		return
	}
	register, err := models.CreateCashRegister(c.Request.Context(), &input)
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondCreated(c, register)
}

func UpdateCashRegister(c *gin.Context) {
	var input models.NewCashRegister
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err)
		return
	}
	register, err := models.UpdateCashRegister(c.Request.Context(), c.Param("id"), &input)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, errors.New("cash register not found"))
		return
	}
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, register)
}

func DeleteCashRegister(c *gin.Context) {
	register, err := models.DeleteCashRegister(c.Request.Context(), c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, errors.New("cash register not found"))
		return
	}
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	respondOK(c, register)
}

func GetCashRegisters(c *gin.Context) {
	registers, err := models.GetCashRegisters(c.Request.Context())
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, registers)
}

// GetCashTransactions lists the audit trail, optionally filtered by register.
func GetCashTransactions(c *gin.Context) {
	registerId := c.Query("registerId")

	var rows []*models.CashTransaction
	var err error
	if registerId != "" {
		rows, err = models.GetCashTransactionsByRegister(c.Request.Context(), registerId)
	} else {
		rows, err = models.GetCashTransactions(c.Request.Context())
	}
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, rows)
}

// TransferFunds moves cash between two registers.
func TransferFunds(c *gin.Context) {
	var input workflow.NewTransfer
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := workflow.TransferFunds(c.Request.Context(), &input); err != nil {
		respondBadRequest(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "transfer recorded",
	})
}

// RecordMovement applies a manual deposit or withdrawal.
func RecordMovement(c *gin.Context) {
	var input workflow.NewMovement
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := workflow.RecordMovement(c.Request.Context(), &input); err != nil {
		respondBadRequest(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "movement recorded",
	})
}
