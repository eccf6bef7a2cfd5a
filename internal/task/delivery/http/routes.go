package http

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route is owner-scoped via the Owner middleware.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Owner())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/stats", h.Stats)
		tasks.GET("/suggest", h.Suggest)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)

		// Older surface: id carried in the body or query string.
		tasks.PUT("", h.Update)
		tasks.DELETE("", h.Delete)
	}

	rg.POST("/parse", mw.Owner(), h.Parse)

	board := rg.Group("/board", mw.Owner())
	{
		board.GET("", h.Board)
		board.POST("/move", h.Move)
	}
}
