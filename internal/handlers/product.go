// internal/handlers/product.go
package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/artisanmarket/backend/internal/models"
	"github.com/artisanmarket/backend/internal/services"
	"github.com/artisanmarket/backend/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
}

func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// GET /products
//
// Query params mirror the shop page's filter controls:
// category=bags,decor  price=1000-2000 (or 3000-+ for an open band)
// sort=newest|price-low|price-high|popular
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.catalogService.LoadAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "catalog")
		return
	}

	filter := parseCatalogFilter(c)
	filtered := services.ApplyFilter(products, filter)

	utils.SuccessResponseWithMeta(c, filtered, gin.H{
		"count": len(filtered),
		"total": len(products),
	})
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "product")
		return
	}
	utils.SuccessResponse(c, product)
}

// GET /products/:id/related
func (h *ProductHandler) GetRelatedProducts(c *gin.Context) {
	ctx := c.Request.Context()
	product, err := h.catalogService.FindByID(ctx, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "product")
		return
	}

	related, err := h.catalogService.FindRelated(ctx, product)
	if err != nil {
		respondServiceError(c, err, "product")
		return
	}
	utils.SuccessResponse(c, related)
}

// POST /products/:id/select
//
// Records the shop page's selection for the detail page to pick up.
func (h *ProductHandler) SelectProduct(c *gin.Context) {
	if err := h.catalogService.SelectProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "product")
		return
	}
	utils.SuccessResponse(c, gin.H{"selected": c.Param("id")})
}

// GET /products/selected
func (h *ProductHandler) GetSelectedProduct(c *gin.Context) {
	product, err := h.catalogService.SelectedProduct(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "product")
		return
	}
	utils.SuccessResponse(c, product)
}

// POST /products/:id/view
func (h *ProductHandler) RecordView(c *gin.Context) {
	product, err := h.catalogService.RecordView(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "product")
		return
	}
	utils.SuccessResponse(c, product)
}

func parseCatalogFilter(c *gin.Context) models.CatalogFilter {
	filter := models.CatalogFilter{
		Sort: models.SortKey(c.DefaultQuery("sort", string(models.SortNewest))),
	}

	if category := c.Query("category"); category != "" {
		filter.Categories = strings.Split(category, ",")
	}

	// Price bands come in as "min-max"; "+" on the upper side means
	// unbounded, matching the shop page's radio values.
	if band := c.Query("price"); band != "" {
		parts := strings.SplitN(band, "-", 2)
		if min, err := strconv.ParseFloat(parts[0], 64); err == nil {
			filter.PriceMin = &min
		}
		if len(parts) == 2 && parts[1] != "+" {
			if max, err := strconv.ParseFloat(parts[1], 64); err == nil {
				filter.PriceMax = &max
			}
		}
	}

	return filter
}
