package listener

import (
	"context"

	"listener-srv/internal/model"
)

// UseCase is the keyword notification pipeline fed by chat clients.
type UseCase interface {
	// Ingest filters msg, evaluates it against the current rule set and
	// queues a notification for the owner of the first matching rule.
	// It never returns an error: failures are logged and the message is
	// dropped. Safe for concurrent use.
	Ingest(ctx context.Context, msg model.ChatMessage)
}
