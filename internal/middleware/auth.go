package middleware

import (
	"github.com/gin-gonic/gin"

	"team-calendar/internal/model"
	"team-calendar/pkg/response"
)

const scopeKey = "scope"

// Auth rejects requests without an authenticated backend session and stores
// the request scope for downstream handlers.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.sessionUC.Authenticated() {
			m.l.Warnf(c.Request.Context(), "middleware: unauthenticated request to %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Set(scopeKey, m.sessionUC.Scope())
		c.Next()
	}
}

// GetScope returns the request scope stored by Auth. Zero when the route is
// unprotected.
func GetScope(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, ok := v.(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}
