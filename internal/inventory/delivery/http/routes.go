package http

import (
	"play-economy/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items")
	{
		items.GET("", mw.RateLimit(), h.List)
		items.POST("", mw.RateLimit(), h.Grant)
	}
}
