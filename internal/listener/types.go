package listener

import (
	"math"
	"time"

	"github.com/aarondl/null/v8"

	"listener-srv/internal/model"
)

// DropReason explains why a message was filtered before rule evaluation.
type DropReason string

const (
	DropNoSender  DropReason = "no_sender"
	DropSelf      DropReason = "self"
	DropEmptyText DropReason = "empty_text"
	DropPrivate   DropReason = "private_chat"
	DropBot       DropReason = "bot"
)

// InboundMessage is the JSON shape external chat clients publish or POST.
// Date is epoch seconds, fractional part allowed.
type InboundMessage struct {
	ID             int64   `json:"id"`
	ChatID         int64   `json:"chat_id"`
	ChatTitle      *string `json:"chat_title"`
	ChatUsername   *string `json:"chat_username"`
	ChatType       string  `json:"chat_type"`
	SenderID       int64   `json:"sender_id"`
	SenderUsername *string `json:"sender_username"`
	SenderFullName string  `json:"sender_full_name"`
	SenderIsBot    bool    `json:"sender_is_bot"`
	SenderIsSelf   bool    `json:"sender_is_self"`
	Text           *string `json:"text"`
	Caption        *string `json:"caption"`
	Date           float64 `json:"date"`
	Permalink      *string `json:"permalink"`
}

// Validate checks the fields every chat client must supply.
func (m InboundMessage) Validate() error {
	if m.ID == 0 || m.ChatID == 0 {
		return ErrInvalidMessage
	}
	switch model.ChatType(m.ChatType) {
	case model.ChatTypePrivate, model.ChatTypeGroup, model.ChatTypeSupergroup, model.ChatTypeChannel:
		return nil
	default:
		return ErrUnknownChatType
	}
}

// ToChatMessage converts the wire shape into the domain message.
func (m InboundMessage) ToChatMessage() model.ChatMessage {
	sec, frac := math.Modf(m.Date)
	return model.ChatMessage{
		ID:             m.ID,
		ChatID:         m.ChatID,
		ChatTitle:      null.StringFromPtr(m.ChatTitle),
		ChatUsername:   null.StringFromPtr(m.ChatUsername),
		ChatType:       model.ChatType(m.ChatType),
		SenderID:       m.SenderID,
		SenderUsername: null.StringFromPtr(m.SenderUsername),
		SenderFullName: m.SenderFullName,
		SenderIsBot:    m.SenderIsBot,
		SenderIsSelf:   m.SenderIsSelf,
		Text:           null.StringFromPtr(m.Text),
		Caption:        null.StringFromPtr(m.Caption),
		Timestamp:      time.Unix(int64(sec), int64(math.Round(frac*1e6))*int64(time.Microsecond)),
		Permalink:      null.StringFromPtr(m.Permalink),
	}
}
