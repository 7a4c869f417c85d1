package listener

import "errors"

var (
	// ErrInvalidMessage is returned when an inbound message lacks its ids.
	ErrInvalidMessage = errors.New("invalid inbound message")
	// ErrUnknownChatType is returned for a chat_type outside the known set.
	ErrUnknownChatType = errors.New("unknown chat type")
)
