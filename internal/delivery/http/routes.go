package http

import (
	"github.com/gin-gonic/gin"

	"github.com/pricecheck/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(cfg.RateLimit.PerIP, cfg.RateLimit.Burst))
	{
		listings := v1.Group("/listings")
		{
			listings.GET("", handler.BrowseListings)
			listings.GET("/search", handler.SearchListings)
		}

		v1.GET("/categories", handler.ListCategories)
		v1.GET("/suggestions", handler.ListSuggestions)
		v1.GET("/compare/*productName", handler.CompareProduct)
		v1.POST("/matches", handler.FindMatches)
		v1.GET("/groups", handler.ListGroups)

		price := v1.Group("/price")
		{
			price.GET("/parse", handler.ParsePrice)
			price.GET("/format", handler.FormatPrice)
		}
	}

	return router
}
