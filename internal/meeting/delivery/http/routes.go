package http

import (
	"github.com/gin-gonic/gin"

	"smartmeet/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require authentication.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	meetings := rg.Group("/meetings", mw.Auth())
	{
		meetings.GET("", h.List)
		meetings.POST("", h.Create)
		meetings.PUT("/:id", h.Update)
		meetings.DELETE("/:id", h.Delete)
	}

	calendar := rg.Group("/calendar", mw.Auth())
	{
		calendar.GET("/events", h.Events)
		calendar.POST("/sync", h.Sync)
	}
}
