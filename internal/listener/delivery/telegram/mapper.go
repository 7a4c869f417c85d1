package telegram

import (
	"fmt"
	"strings"

	"github.com/aarondl/null/v8"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"listener-srv/internal/model"
)

// Supergroup and channel ids are -100 followed by the internal channel id.
const channelIDOffset = 1000000000000

func toChatMessage(m *tgbotapi.Message, selfID int64) model.ChatMessage {
	msg := model.ChatMessage{
		ID:        int64(m.MessageID),
		Text:      optional(m.Text),
		Caption:   optional(m.Caption),
		Timestamp: m.Time(),
	}

	if m.Chat != nil {
		msg.ChatID = m.Chat.ID
		msg.ChatTitle = optional(m.Chat.Title)
		msg.ChatUsername = optional(m.Chat.UserName)
		msg.ChatType = model.ChatType(m.Chat.Type)
		msg.Permalink = permalink(m.Chat, m.MessageID)
	}

	if m.From != nil {
		msg.SenderID = m.From.ID
		msg.SenderUsername = optional(m.From.UserName)
		msg.SenderFullName = strings.TrimSpace(m.From.FirstName + " " + m.From.LastName)
		msg.SenderIsBot = m.From.IsBot
		msg.SenderIsSelf = selfID != 0 && m.From.ID == selfID
	}

	return msg
}

func permalink(chat *tgbotapi.Chat, messageID int) null.String {
	if chat.UserName != "" {
		return null.StringFrom(fmt.Sprintf("https://t.me/%s/%d", chat.UserName, messageID))
	}
	if chat.ID <= -channelIDOffset {
		return null.StringFrom(fmt.Sprintf("https://t.me/c/%d/%d", -chat.ID-channelIDOffset, messageID))
	}
	return null.String{}
}

func optional(s string) null.String {
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}
