package discord

import (
	"net/http"
	"time"

	"listener-srv/pkg/log"
)

// Config holds delivery settings for the webhook client.
type Config struct {
	Timeout    time.Duration
	RetryCount int
	RetryDelay time.Duration
	Username   string
}

type webhookPayload struct {
	Content  string `json:"content"`
	Username string `json:"username,omitempty"`
}

type discordImpl struct {
	l      log.Logger
	url    string
	config Config
	client *http.Client
}
