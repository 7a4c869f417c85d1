package listener

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"

	"listener-srv/internal/model"
)

func strPtr(s string) *string { return &s }

func TestInboundMessageValidate(t *testing.T) {
	valid := InboundMessage{ID: 1, ChatID: -5, ChatType: "supergroup"}
	assert.NoError(t, valid.Validate())

	assert.ErrorIs(t, InboundMessage{ChatID: -5, ChatType: "group"}.Validate(), ErrInvalidMessage)
	assert.ErrorIs(t, InboundMessage{ID: 1, ChatType: "group"}.Validate(), ErrInvalidMessage)
	assert.ErrorIs(t, InboundMessage{ID: 1, ChatID: -5, ChatType: "bot"}.Validate(), ErrUnknownChatType)
}

func TestInboundMessageToChatMessage(t *testing.T) {
	in := InboundMessage{
		ID:             3,
		ChatID:         -100200,
		ChatTitle:      strPtr("Team"),
		ChatType:       "group",
		SenderID:       8,
		SenderUsername: strPtr("bob"),
		SenderFullName: "Bob B",
		Caption:        strPtr("see attached"),
		Date:           1700000000.5,
	}

	got := in.ToChatMessage()

	assert.Equal(t, model.ChatMessage{
		ID:             3,
		ChatID:         -100200,
		ChatTitle:      null.StringFrom("Team"),
		ChatType:       model.ChatTypeGroup,
		SenderID:       8,
		SenderUsername: null.StringFrom("bob"),
		SenderFullName: "Bob B",
		Caption:        null.StringFrom("see attached"),
		Timestamp:      time.Unix(1700000000, 500*int64(time.Millisecond)),
	}, got)
	assert.Equal(t, "see attached", got.Content())
}
