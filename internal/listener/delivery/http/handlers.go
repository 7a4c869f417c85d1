package http

import (
	"errors"

	"listener-srv/internal/listener"
	notificationRepo "listener-srv/internal/notification/repository"
	"listener-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Ingest accepts one chat message from an external chat client. Matching
// outcome is never reported back; a well-formed message always gets 202.
func (h *Handler) Ingest(c *gin.Context) {
	ctx := c.Request.Context()

	var req ingestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnf(ctx, "listener.delivery.http.Ingest: bind: %v", err)
		response.HttpError(c, errWrongBody)
		return
	}

	if err := req.validate(); err != nil {
		h.logger.Warnf(ctx, "listener.delivery.http.Ingest: validate: %v", err)
		response.ErrorWithMap(c, err, errMap)
		return
	}

	h.uc.Ingest(ctx, req.toInput())

	response.Accepted(c, ingestResp{MessageID: req.ID})
}

// ListQueue returns the pending notifications of one recipient without
// consuming them.
func (h *Handler) ListQueue(c *gin.Context) {
	ctx := c.Request.Context()

	var req listQueueReq
	if err := c.ShouldBindUri(&req); err != nil {
		response.HttpError(c, errWrongBody)
		return
	}

	items, err := h.queue.List(ctx, req.RecipientID)
	if err != nil {
		h.logger.Errorf(ctx, "listener.delivery.http.ListQueue: %v", err)
		response.ErrorWithMap(c, unwrapKnown(err), errMap)
		return
	}

	response.OK(c, newListQueueResp(req.RecipientID, items))
}

func unwrapKnown(err error) error {
	for _, known := range []error{
		listener.ErrInvalidMessage,
		listener.ErrUnknownChatType,
		notificationRepo.ErrRecipientRequired,
		notificationRepo.ErrQueueUnavailable,
	} {
		if errors.Is(err, known) {
			return known
		}
	}
	return err
}
