// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artisanmarket/backend/internal/config"
	"github.com/artisanmarket/backend/internal/handlers"
	"github.com/artisanmarket/backend/internal/middleware"
	"github.com/artisanmarket/backend/internal/services"
	"github.com/artisanmarket/backend/internal/store"
)

func Initialize(kv store.KVStore, cfg *config.Config) *gin.Engine {
	// Initialize services
	catalogService := services.NewCatalogService(kv, cfg.Commerce.RelatedLimit)
	cartService := services.NewCartService(kv, catalogService, cfg.Commerce)
	inventoryService := services.NewInventoryService(kv, catalogService)
	accountService := services.NewAccountService(kv)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(accountService)
	productHandler := handlers.NewProductHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService, catalogService)
	sellerHandler := handlers.NewSellerHandler(inventoryService, accountService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authHandler.Me)
		}

		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/selected", productHandler.GetSelectedProduct)
			products.GET("/:id", productHandler.GetProduct)
			products.GET("/:id/related", productHandler.GetRelatedProducts)
			products.POST("/:id/select", productHandler.SelectProduct)
			products.POST("/:id/view", productHandler.RecordView)
		}

		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.DELETE("", cartHandler.ClearCart)
			cart.GET("/summary", cartHandler.GetSummary)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:index", cartHandler.UpdateItem)
			cart.DELETE("/items/:index", cartHandler.RemoveItem)
			cart.POST("/checkout", middleware.CheckoutRateLimit(), cartHandler.Checkout)
		}

		seller := v1.Group("/seller")
		{
			seller.GET("/products", sellerHandler.GetProducts)
			seller.POST("/products", sellerHandler.CreateProduct)
			seller.DELETE("/products/:id", sellerHandler.DeleteProduct)
			seller.GET("/stats", sellerHandler.GetStats)
		}
	}

	return r
}
