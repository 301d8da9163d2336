package http

import (
	"github.com/gin-gonic/gin"

	"smartmeet/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/google", h.GoogleLogin)
		authGroup.GET("/me", mw.Auth(), h.Me)
		authGroup.PATCH("/me", mw.Auth(), h.UpdateMe)
	}
}
