package controllers

import (
	"net/http"

	"estay-backend/models"
	"estay-backend/services"
	"estay-backend/utils"

	"github.com/gin-gonic/gin"
)

type RegisterPayload struct {
	Username string `json:"username" binding:"required,min=3,max=150"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

type LoginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

func (ctl *AuthController) Register(c *gin.Context) {
	var payload RegisterPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	role := models.UserRole(payload.Role)
	switch role {
	case "", models.RoleUser:
		role = models.RoleUser
	case models.RoleMerchant:
	default:
		// Admin accounts are seeded, not self-registered.
		utils.JSONError(c, http.StatusBadRequest, "invalid role")
		return
	}

	user, token, err := ctl.Auth.Register(payload.Username, payload.Email, payload.Password, role)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"user": user, "token": token})
}

func (ctl *AuthController) Login(c *gin.Context) {
	var payload LoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := ctl.Auth.Login(payload.Username, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"user": user, "token": token})
}
