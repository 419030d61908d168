// internal/handlers/cart.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/artisanmarket/backend/internal/models"
	"github.com/artisanmarket/backend/internal/services"
	"github.com/artisanmarket/backend/internal/utils"
)

type CartHandler struct {
	cartService    *services.CartService
	catalogService *services.CatalogService
}

func NewCartHandler(cartService *services.CartService, catalogService *services.CatalogService) *CartHandler {
	return &CartHandler{cartService: cartService, catalogService: catalogService}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.cartService.Load(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "cart")
		return
	}
	utils.SuccessResponse(c, gin.H{"items": cart})
}

// POST /cart/items
//
// The line's name, price and image are resolved from the catalog so the
// cart never carries stale data the client made up.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req struct {
		ProductID string `json:"product_id" binding:"required"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	ctx := c.Request.Context()
	product, err := h.catalogService.FindByID(ctx, req.ProductID)
	if err != nil {
		respondServiceError(c, err, "product")
		return
	}

	cart, err := h.cartService.AddOrMerge(ctx, models.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.Image,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondServiceError(c, err, "cart")
		return
	}

	utils.SuccessResponse(c, gin.H{"items": cart})
}

// PUT /cart/items/:index
func (h *CartHandler) UpdateItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid cart line index", nil)
		return
	}

	var req struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	cart, err := h.cartService.SetQuantity(c.Request.Context(), index, req.Quantity)
	if err != nil {
		respondServiceError(c, err, "cart line")
		return
	}
	utils.SuccessResponse(c, gin.H{"items": cart})
}

// DELETE /cart/items/:index
func (h *CartHandler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid cart line index", nil)
		return
	}

	cart, err := h.cartService.Remove(c.Request.Context(), index)
	if err != nil {
		respondServiceError(c, err, "cart line")
		return
	}
	utils.SuccessResponse(c, gin.H{"items": cart})
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.cartService.Clear(c.Request.Context()); err != nil {
		respondServiceError(c, err, "cart")
		return
	}
	utils.SuccessResponse(c, gin.H{"items": []models.CartLine{}})
}

// GET /cart/summary
func (h *CartHandler) GetSummary(c *gin.Context) {
	ctx := c.Request.Context()

	totals, err := h.cartService.Totals(ctx)
	if err != nil {
		respondServiceError(c, err, "cart")
		return
	}
	count, err := h.cartService.Count(ctx)
	if err != nil {
		respondServiceError(c, err, "cart")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"totals": totals,
		"count":  count,
	})
}

// POST /cart/checkout
func (h *CartHandler) Checkout(c *gin.Context) {
	totals, err := h.cartService.Checkout(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "cart")
		return
	}
	utils.SuccessResponse(c, gin.H{"totals": totals})
}
