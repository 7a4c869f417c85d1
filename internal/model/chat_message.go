package model

import (
	"time"

	"github.com/aarondl/null/v8"
)

// ChatType is the kind of chat a message was posted in.
type ChatType string

const (
	ChatTypePrivate    ChatType = "private"
	ChatTypeGroup      ChatType = "group"
	ChatTypeSupergroup ChatType = "supergroup"
	ChatTypeChannel    ChatType = "channel"
)

// ChatMessage is one inbound message as handed over by a chat client.
// A zero SenderID means the sender could not be resolved.
type ChatMessage struct {
	ID             int64       `json:"id"`
	ChatID         int64       `json:"chat_id"`
	ChatTitle      null.String `json:"chat_title"`
	ChatUsername   null.String `json:"chat_username"`
	ChatType       ChatType    `json:"chat_type"`
	SenderID       int64       `json:"sender_id"`
	SenderUsername null.String `json:"sender_username"`
	SenderFullName string      `json:"sender_full_name"`
	SenderIsBot    bool        `json:"sender_is_bot"`
	SenderIsSelf   bool        `json:"sender_is_self"`
	Text           null.String `json:"text"`
	Caption        null.String `json:"caption"`
	Timestamp      time.Time   `json:"timestamp"`
	Permalink      null.String `json:"permalink"`
}

// HasSender reports whether the sender of the message is known.
func (m ChatMessage) HasSender() bool {
	return m.SenderID != 0
}

// HasUsername reports whether the sender has a public username.
func (m ChatMessage) HasUsername() bool {
	return m.SenderUsername.Valid && m.SenderUsername.String != ""
}

// Content returns the message text, falling back to the media caption.
func (m ChatMessage) Content() string {
	if m.Text.Valid && m.Text.String != "" {
		return m.Text.String
	}
	if m.Caption.Valid {
		return m.Caption.String
	}
	return ""
}
