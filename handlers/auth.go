package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shamsoft/pos_backend/models"
	"github.com/shamsoft/pos_backend/utils"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, err := models.AuthenticateUser(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, models.ErrInvalidCredentials) {
		respondError(c, http.StatusUnauthorized, err)
		return
	}
	if err != nil {
		respondInternal(c, err)
		return
	}

	token, err := utils.JwtGenerate(user.ID, string(user.Role))
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, gin.H{"token": token, "user": user})
}

// Register creates a user account. The very first account is created openly
// and becomes the admin; after that only admins may add users, which the
// route setup enforces.
func Register(c *gin.Context) {
	var input models.NewUser
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err)
		return
	}

	count, err := models.CountUsers(c.Request.Context())
	if err != nil {
		respondInternal(c, err)
		return
	}
	if count == 0 {
		input.Role = models.UserRoleAdmin
	}

	user, err := models.CreateUser(c.Request.Context(), &input)
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondCreated(c, user)
}

// HasUsers lets the client decide whether to show first-run registration.
func HasUsers(c *gin.Context) {
	count, err := models.CountUsers(c.Request.Context())
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, gin.H{"hasUsers": count > 0})
}
