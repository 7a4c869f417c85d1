package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"listener-srv/internal/listener"
	notificationRepo "listener-srv/internal/notification/repository"
	"listener-srv/pkg/discord"
	"listener-srv/pkg/log"
	pkgRedis "listener-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

// HTTPServer serves health checks and the internal ingest API.
// New() only wires dependencies and validates them; Run() starts serving.
type HTTPServer struct {
	gin    *gin.Engine
	srv    *http.Server
	logger log.Logger
	host   string
	port   int

	listenerUC  listener.UseCase
	queue       notificationRepo.Queue
	internalKey string

	redis   pkgRedis.IRedis
	discord discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Host string
	Port int
	Mode string

	ListenerUC  listener.UseCase
	Queue       notificationRepo.Queue
	InternalKey string

	Redis   pkgRedis.IRedis
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:         gin.New(),
		logger:      logger,
		host:        cfg.Host,
		port:        cfg.Port,
		listenerUC:  cfg.ListenerUC,
		queue:       cfg.Queue,
		internalKey: cfg.InternalKey,
		redis:       cfg.Redis,
		discord:     cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	srv.srv = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", srv.host, srv.port),
		Handler: srv.gin,
	}
	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port <= 0 {
		return errors.New("port is required")
	}
	if srv.listenerUC == nil {
		return errors.New("listener usecase is required")
	}
	if srv.queue == nil {
		return errors.New("notification queue is required")
	}
	if srv.redis == nil {
		return errors.New("redis is required")
	}
	return nil
}
