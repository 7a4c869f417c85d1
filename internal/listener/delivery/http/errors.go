package http

import (
	"net/http"

	"listener-srv/internal/listener"
	notificationRepo "listener-srv/internal/notification/repository"
	"listener-srv/pkg/errors"
	"listener-srv/pkg/response"
)

var (
	errWrongBody = errors.NewHTTPError(40001, "Wrong body", http.StatusBadRequest)
)

var errMap = response.ErrorMapping{
	listener.ErrInvalidMessage:            errors.NewHTTPError(40002, "Message id and chat id are required", http.StatusBadRequest),
	listener.ErrUnknownChatType:           errors.NewHTTPError(40003, "Unknown chat type", http.StatusBadRequest),
	notificationRepo.ErrRecipientRequired: errors.NewHTTPError(40004, "Recipient id is required", http.StatusBadRequest),
	notificationRepo.ErrQueueUnavailable:  errors.NewHTTPError(50301, "Notification queue unavailable", http.StatusServiceUnavailable),
}
