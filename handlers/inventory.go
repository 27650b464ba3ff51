package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shamsoft/pos_backend/models"
	"github.com/shamsoft/pos_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func CreateProduct(c *gin.Context) {
	var input models.NewProduct
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err)
		return
	}
	product, err := models.CreateProduct(c.Request.Context(), &input)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	respondCreated(c, product)
}

func UpdateProduct(c *gin.Context) {
	var input models.NewProduct
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err)
		return
	}
	product, err := models.UpdateProduct(c.Request.Context(), c.Param("id"), &input)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, errors.New("product not found"))
		return
	}
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	respondOK(c, product)
}

type updateStockRequest struct {
	Stock decimal.Decimal `json:"stock"`
}

func UpdateProductStock(c *gin.Context) {
	var req updateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	err := models.UpdateProductStock(c.Request.Context(), c.Param("id"), req.Stock)
	if errors.Is(err, utils.ErrorRecordNotFound) {
		respondError(c, http.StatusNotFound, errors.New("product not found"))
		return
	}
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	respondOK(c, nil)
}

func DeleteProduct(c *gin.Context) {
	product, err := models.DeleteProduct(c.Request.Context(), c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, errors.New("product not found"))
		return
	}
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, product)
}

func GetProducts(c *gin.Context) {
	products, err := models.GetProducts(c.Request.Context())
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, products)
}

func GetProduct(c *gin.Context) {
	product, err := models.GetProduct(c.Request.Context(), c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, errors.New("product not found"))
		return
	}
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, product)
}

func CreateCategory(c *gin.Context) {
	var input models.NewCategory
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err)
		return
	}
	category, err := models.CreateCategory(c.Request.Context(), &input)
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondCreated(c, category)
}

func UpdateCategory(c *gin.Context) {
	var input models.NewCategory
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err)
		return
	}
	category, err := models.UpdateCategory(c.Request.Context(), c.Param("id"), &input)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, errors.New("category not found"))
		return
	}
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, category)
}

func DeleteCategory(c *gin.Context) {
	category, err := models.DeleteCategory(c.Request.Context(), c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, errors.New("category not found"))
		return
	}
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	respondOK(c, category)
}

func GetCategories(c *gin.Context) {
	categories, err := models.GetCategories(c.Request.Context())
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, categories)
}
