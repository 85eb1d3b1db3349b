package http

import (
	"play-economy/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items")
	{
		items.POST("", mw.RateLimit(), h.Create)
		items.GET("", mw.RateLimit(), h.List)
		items.GET("/:id", mw.RateLimit(), h.Detail)
		items.PUT("/:id", mw.RateLimit(), h.Update)
		items.DELETE("/:id", mw.RateLimit(), h.Delete)
	}
}
