package routes

import (
	"net/http"
	"time"

	"realtor/handlers"
	"realtor/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAssistantRoutes registers the conversational endpoint.
func RegisterAssistantRoutes(r *gin.Engine, h *handlers.AssistantHandler) {
	api := r.Group("/api/assistant")
	{
		api.POST("/chat", h.Chat)
	}
}

// RegisterPropertyRoutes registers listing search endpoints.
func RegisterPropertyRoutes(r *gin.Engine, h *handlers.PropertyHandler) {
	api := r.Group("/api/properties")
	{
		api.POST("/search", h.Search)
		api.GET("/id/:id", h.GetByID)
	}
}

// RegisterViewingRoutes registers slot discovery and booking endpoints.
func RegisterViewingRoutes(r *gin.Engine, h *handlers.ViewingHandler) {
	api := r.Group("/api/viewings")
	{
		api.GET("/slots", h.GetSlots)
		api.POST("", h.Schedule)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// CORSMiddleware returns the CORS policy for browser clients.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}
