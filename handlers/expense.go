package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shamsoft/pos_backend/models"
	"github.com/shamsoft/pos_backend/workflow"
)

func CreateExpenseCategory(c *gin.Context) {
	var input models.NewExpenseCategory
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err)
		return
	}
	category, err := models.CreateExpenseCategory(c.Request.Context(), &input)
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondCreated(c, category)
}

func GetExpenseCategories(c *gin.Context) {
	categories, err := models.GetExpenseCategories(c.Request.Context())
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, categories)
}

// RecordExpense books an expense against a register.
func RecordExpense(c *gin.Context) {
	var input models.NewExpense
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err)
		return
	}
	expense, err := workflow.RecordExpense(c.Request.Context(), &input)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	respondCreated(c, expense)
}

func GetExpenses(c *gin.Context) {
	expenses, err := models.GetExpenses(c.Request.Context())
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, expenses)
}
