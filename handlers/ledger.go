package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shamsoft/pos_backend/models"
	"github.com/shamsoft/pos_backend/workflow"
	"gorm.io/gorm"
)

func CreateCustomer(c *gin.Context) {
	var input models.NewCustomer
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err)
		return
	}
	customer, err := models.CreateCustomer(c.Request.Context(), &input)
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondCreated(c, customer)
}

func UpdateCustomer(c *gin.Context) {
	var input models.NewCustomer
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err)
		return
	}
	customer, err := models.UpdateCustomer(c.Request.Context(), c.Param("id"), &input)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, errors.New("customer not found"))
		return
	}
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, customer)
}

func DeleteCustomer(c *gin.Context) {
	customer, err := models.DeleteCustomer(c.Request.Context(), c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, errors.New("customer not found"))
		return
	}
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	respondOK(c, customer)
}

func GetCustomers(c *gin.Context) {
	customers, err := models.GetCustomers(c.Request.Context())
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, customers)
}

func CreateSupplier(c *gin.Context) {
	var input models.NewSupplier
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err)
		return
	}
	supplier, err := models.CreateSupplier(c.Request.Context(), &input)
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondCreated(c, supplier)
}

func UpdateSupplier(c *gin.Context) {
	var input models.NewSupplier
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err)
		return
	}
	supplier, err := models.UpdateSupplier(c.Request.Context(), c.Param("id"), &input)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, errors.New("supplier not found"))
		return
	}
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, supplier)
}

func DeleteSupplier(c *gin.Context) {
	supplier, err := models.DeleteSupplier(c.Request.Context(), c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, errors.New("supplier not found"))
		return
	}
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, supplier)
}

func GetSuppliers(c *gin.Context) {
	suppliers, err := models.GetSuppliers(c.Request.Context())
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, suppliers)
}

// RecordPayment settles part of a customer's or supplier's credit balance.
func RecordPayment(c *gin.Context) {
	var input workflow.NewPayment
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := workflow.RecordPayment(c.Request.Context(), &input); err != nil {
		respondBadRequest(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "payment recorded",
	})
}
