package discord

import "time"

const (
	webhookURLTemplate = "https://discord.com/api/webhooks/%s/%s"

	// MaxMessageLength is Discord's limit for a plain message body.
	MaxMessageLength = 2000

	DefaultTimeout    = 10 * time.Second
	DefaultRetryCount = 2
	DefaultRetryDelay = 500 * time.Millisecond
	DefaultUsername   = "Listener Bot"
)
