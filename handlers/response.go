package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope so the desktop client can
// treat responses uniformly.

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{
		"success": false,
		"message": err.Error(),
	})
}

func respondBadRequest(c *gin.Context, err error) {
	respondError(c, http.StatusBadRequest, err)
}

func respondInternal(c *gin.Context, err error) {
	respondError(c, http.StatusInternalServerError, err)
}
