// internal/handlers/auth.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/artisanmarket/backend/internal/models"
	"github.com/artisanmarket/backend/internal/services"
	"github.com/artisanmarket/backend/internal/utils"
)

type AuthHandler struct {
	accountService *services.AccountService
}

func NewAuthHandler(accountService *services.AccountService) *AuthHandler {
	return &AuthHandler{accountService: accountService}
}

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var draft models.RegistrationDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&draft)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	user, err := h.accountService.Register(c.Request.Context(), draft)
	if err != nil {
		respondServiceError(c, err, "user")
		return
	}

	utils.CreatedResponse(c, user)
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	user, err := h.accountService.Login(c.Request.Context(), req.Email)
	if err != nil {
		respondServiceError(c, err, "user")
		return
	}

	utils.SuccessResponse(c, user)
}

// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.accountService.Logout(c.Request.Context()); err != nil {
		respondServiceError(c, err, "user")
		return
	}
	utils.SuccessResponse(c, gin.H{"message": "Logged out"})
}

// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.accountService.Current(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "user")
		return
	}
	utils.SuccessResponse(c, user)
}
