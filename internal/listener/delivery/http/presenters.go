package http

import (
	"listener-srv/internal/listener"
	"listener-srv/internal/model"
)

// --- Request DTOs ---

type ingestReq struct {
	listener.InboundMessage
}

func (r ingestReq) validate() error {
	return r.InboundMessage.Validate()
}

func (r ingestReq) toInput() model.ChatMessage {
	return r.InboundMessage.ToChatMessage()
}

type listQueueReq struct {
	RecipientID string `uri:"recipient_id"`
}

// --- Response DTOs ---

type ingestResp struct {
	MessageID int64 `json:"message_id"`
}

type listQueueResp struct {
	RecipientID   string               `json:"recipient_id"`
	Count         int                  `json:"count"`
	Notifications []model.Notification `json:"notifications"`
}

func newListQueueResp(recipientID string, items []model.Notification) listQueueResp {
	if items == nil {
		items = []model.Notification{}
	}
	return listQueueResp{
		RecipientID:   recipientID,
		Count:         len(items),
		Notifications: items,
	}
}
