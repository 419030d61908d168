// internal/handlers/seller.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/artisanmarket/backend/internal/models"
	"github.com/artisanmarket/backend/internal/services"
	"github.com/artisanmarket/backend/internal/utils"
)

type SellerHandler struct {
	inventoryService *services.InventoryService
	accountService   *services.AccountService
}

func NewSellerHandler(inventoryService *services.InventoryService, accountService *services.AccountService) *SellerHandler {
	return &SellerHandler{inventoryService: inventoryService, accountService: accountService}
}

// currentSeller resolves the signed-in seller or writes the error
// response and reports false.
func (h *SellerHandler) currentSeller(c *gin.Context) (models.UserAccount, bool) {
	user, err := h.accountService.Current(c.Request.Context())
	if err != nil {
		utils.UnauthorizedResponse(c, "")
		return models.UserAccount{}, false
	}
	if !user.IsSeller() {
		utils.ForbiddenResponse(c, "Seller account required")
		return models.UserAccount{}, false
	}
	return user, true
}

// GET /seller/products
func (h *SellerHandler) GetProducts(c *gin.Context) {
	user, ok := h.currentSeller(c)
	if !ok {
		return
	}

	products, err := h.inventoryService.Load(c.Request.Context(), user.Email)
	if err != nil {
		respondServiceError(c, err, "inventory")
		return
	}
	utils.SuccessResponse(c, products)
}

// POST /seller/products
func (h *SellerHandler) CreateProduct(c *gin.Context) {
	user, ok := h.currentSeller(c)
	if !ok {
		return
	}

	var draft models.ProductDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&draft)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	sellerName := user.BusinessName
	if sellerName == "" {
		sellerName = user.FirstName + " " + user.LastName
	}

	product, err := h.inventoryService.AddProduct(c.Request.Context(), user.Email, sellerName, draft)
	if err != nil {
		respondServiceError(c, err, "product")
		return
	}
	utils.CreatedResponse(c, product)
}

// DELETE /seller/products/:id
func (h *SellerHandler) DeleteProduct(c *gin.Context) {
	user, ok := h.currentSeller(c)
	if !ok {
		return
	}

	if err := h.inventoryService.Remove(c.Request.Context(), user.Email, c.Param("id")); err != nil {
		respondServiceError(c, err, "product")
		return
	}
	utils.SuccessResponse(c, gin.H{"deleted": c.Param("id")})
}

// GET /seller/stats
func (h *SellerHandler) GetStats(c *gin.Context) {
	user, ok := h.currentSeller(c)
	if !ok {
		return
	}

	products, err := h.inventoryService.Load(c.Request.Context(), user.Email)
	if err != nil {
		respondServiceError(c, err, "inventory")
		return
	}

	utils.SuccessResponse(c, h.inventoryService.Stats(products))
}
