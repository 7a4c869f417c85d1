package http

import (
	"listener-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the internal ingest and queue inspection routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.Use(mw.InternalAuth())

	r.POST("/messages", h.Ingest)
	r.GET("/queues/:recipient_id", h.ListQueue)
}
