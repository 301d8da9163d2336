package http

import (
	"github.com/gin-gonic/gin"

	"smartmeet/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The voice endpoint is rate limited on top of authentication.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	voice := rg.Group("/voice", mw.Auth(), mw.RateLimit())
	{
		voice.POST("/process", h.Process)
		voice.GET("/history", h.History)
	}
}
