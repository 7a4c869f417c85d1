package httpserver

import (
	"net/http"

	"listener-srv/pkg/errors"
	"listener-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "listener-srv"
	serviceVersion = "1.0.0"
)

// healthCheck reports overall health including the Redis round trip.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	if err := srv.redis.Ping(c.Request.Context()); err != nil {
		response.HttpError(c, errors.NewHTTPError(50300, "Redis connection failed", http.StatusServiceUnavailable))
		return
	}

	response.OK(c, gin.H{
		"status":  "healthy",
		"version": serviceVersion,
		"service": serviceName,
		"redis":   "connected",
	})
}

func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if err := srv.redis.Ping(c.Request.Context()); err != nil {
		response.HttpError(c, errors.NewHTTPError(50300, "Redis connection not available", http.StatusServiceUnavailable))
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": serviceName,
	})
}

func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": serviceName,
	})
}
