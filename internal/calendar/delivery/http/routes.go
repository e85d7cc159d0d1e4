package http

import (
	"team-calendar/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every route
// requires an authenticated backend session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/members", mw.Auth(), h.Members)

	week := rg.Group("/week")
	{
		week.GET("", mw.Auth(), h.Week)
		week.POST("/advance", mw.Auth(), h.Advance)
	}

	day := rg.Group("/day")
	{
		day.POST("", mw.Auth(), h.OpenDay)
		day.GET("", mw.Auth(), h.CurrentDay)
		day.DELETE("", mw.Auth(), h.CloseDay)
	}
}
