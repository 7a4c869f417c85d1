package discord

import "context"

type IDiscord interface {
	// ReportBug posts message to the ops channel, split into chunks that
	// fit Discord's message limit.
	ReportBug(ctx context.Context, message string) error
	Close() error
}
