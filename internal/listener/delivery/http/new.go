package http

import (
	"listener-srv/internal/listener"
	notificationRepo "listener-srv/internal/notification/repository"
	"listener-srv/pkg/log"
)

type Handler struct {
	uc     listener.UseCase
	queue  notificationRepo.Queue
	logger log.Logger
}

func New(uc listener.UseCase, queue notificationRepo.Queue, logger log.Logger) *Handler {
	return &Handler{
		uc:     uc,
		queue:  queue,
		logger: logger,
	}
}
