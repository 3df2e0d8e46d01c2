package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wistara_backend/internal/handlers"
)

// RegisterRoutes registers all HTTP routes under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.DestinationHandler.RegisterRoutes(api)
		appHandlers.ReviewHandler.RegisterRoutes(api)
	}
}
