package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Session
// routes are open: the UI needs them before any login exists.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/me", h.Me)
	rg.GET("/login", h.Login)
	rg.POST("/logout", h.Logout)
}
