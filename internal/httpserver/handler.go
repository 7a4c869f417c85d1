package httpserver

import (
	listenerHTTP "listener-srv/internal/listener/delivery/http"
	"listener-srv/internal/middleware"
)

const InternalApi = "/internal/api/v1"

func (srv *HTTPServer) mapHandlers() {
	mw := middleware.New(srv.logger, srv.internalKey, srv.discord)
	srv.gin.Use(mw.Recovery())

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	listenerHTTP.New(srv.listenerUC, srv.queue, srv.logger).
		RegisterRoutes(srv.gin.Group(InternalApi), mw)
}
