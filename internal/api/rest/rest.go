package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Collection endpoints
		v1.POST("/collection", handler.AddToCollection)
		v1.GET("/collection", handler.ListCollection)
		v1.PUT("/collection/:id/condition", handler.UpdateOwnershipCondition)
		v1.DELETE("/collection/:id", handler.RemoveOwnership)
		v1.POST("/collection/:id/lend", handler.MarkLent)
		v1.DELETE("/collection/:id/lend", handler.MarkReturned)
		v1.POST("/collection/:id/sale", handler.MarkForSale)
		v1.DELETE("/collection/:id/sale", handler.UnmarkForSale)

		// Wishlist endpoints
		v1.POST("/wishlist", handler.AddToWishlist)
		v1.GET("/wishlist", handler.ListWishlist)
		v1.POST("/wishlist/:id/purchase", handler.PurchaseWant)
		v1.PUT("/wishlist/:id/condition", handler.UpdateWantCondition)
		v1.DELETE("/wishlist/:id", handler.RemoveWant)

		// Catalog lookup
		v1.GET("/catalog/search", handler.SearchCatalog)

		// Pricing endpoints
		v1.POST("/games/:id/refresh", handler.RefreshPrice)
		v1.GET("/games/:id/last_price_update", handler.GetLastPriceUpdate)
		v1.GET("/games/:id/price_history", handler.GetGamePriceHistory)
		v1.POST("/prices/refresh", handler.TriggerBatchRefresh)
		v1.GET("/prices/:catalog_id/:condition", handler.GetPriceHistory)
	}
}
