package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"smartmeet/internal/model"
	"smartmeet/pkg/response"
)

// scopeKey is the gin context key carrying the authenticated model.Scope.
const scopeKey = "auth_scope"

// Auth validates the Bearer token and stores the resulting Scope in the
// request context. Requests without a valid token are rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth verify: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{UserID: payload.UserID, Email: payload.Email})
		c.Next()
	}
}

// GetScope returns the Scope set by Auth. Zero value when unauthenticated.
func GetScope(c *gin.Context) model.Scope {
	sc, _ := c.Get(scopeKey)
	if scope, ok := sc.(model.Scope); ok {
		return scope
	}
	return model.Scope{}
}
