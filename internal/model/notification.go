package model

import "github.com/aarondl/null/v8"

// Notification is the queued record a delivery consumer later sends to a
// rule owner. Field names match what the consumer reads from the queue.
type Notification struct {
	MessageID      int64       `json:"message_id"`
	MessageLink    null.String `json:"message_link"`
	ChatTitle      null.String `json:"chat_title"`
	ChatUsername   null.String `json:"chat_username"`
	ChatType       ChatType    `json:"chat_type"`
	ChatID         int64       `json:"chat_id"`
	SenderUsername null.String `json:"user_name"`
	SenderFullName string      `json:"user_full_name"`
	SenderID       int64       `json:"user_id"`
	Text           string      `json:"text"`
	Timestamp      float64     `json:"date"`
	MatchedKeyword string      `json:"matched_keyword"`
}

// NewNotification builds the queue record for msg matched by rule.
func NewNotification(msg ChatMessage, rule KeywordRule) Notification {
	return Notification{
		MessageID:      msg.ID,
		MessageLink:    msg.Permalink,
		ChatTitle:      msg.ChatTitle,
		ChatUsername:   msg.ChatUsername,
		ChatType:       msg.ChatType,
		ChatID:         msg.ChatID,
		SenderUsername: msg.SenderUsername,
		SenderFullName: msg.SenderFullName,
		SenderID:       msg.SenderID,
		Text:           msg.Content(),
		Timestamp:      float64(msg.Timestamp.UnixMicro()) / 1e6,
		MatchedKeyword: rule.Keyword,
	}
}
