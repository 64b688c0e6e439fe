package http

import (
	"github.com/gin-gonic/gin"

	"tasktracker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The heavy AI routes carry a rate limit; plain CRUD does not.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)

		tasks.POST("/extract", mw.RateLimit(), h.Extract)
		tasks.POST("/transcribe", mw.RateLimit(), h.Transcribe)
		tasks.POST("/rank", mw.RateLimit(), h.Rank)
	}
}
