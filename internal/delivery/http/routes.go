package http

import (
	"github.com/gin-gonic/gin"
	"github.com/pantrylens/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(float64(cfg.RateLimit.PerIP)/60.0, cfg.RateLimit.Burst))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/tags/suggest", handler.SuggestTag)
		v1.POST("/match", handler.ComputeMatch)
		v1.POST("/variants/check", handler.CheckVariant)

		v1.POST("/items", handler.AddItem)
		v1.GET("/items", handler.ListItems)
		v1.POST("/staples/toggle", handler.ToggleStaple)

		v1.POST("/recipes", handler.AddRecipe)
		v1.GET("/recipes/:id/match", handler.MatchRecipe)
	}

	return router
}
