package discord

import (
	"fmt"
	"net/http"
	"time"

	"listener-srv/pkg/log"
)

// DefaultConfig returns the default Discord config.
func DefaultConfig() Config {
	return Config{
		Timeout:    DefaultTimeout,
		RetryCount: DefaultRetryCount,
		RetryDelay: DefaultRetryDelay,
		Username:   DefaultUsername,
	}
}

// New returns a webhook client for the given webhook id and token.
func New(l log.Logger, id, token string) (IDiscord, error) {
	if id == "" || token == "" {
		return nil, errWebhookRequired
	}
	return newWithURL(l, fmt.Sprintf(webhookURLTemplate, id, token), DefaultConfig()), nil
}

func newWithURL(l log.Logger, url string, cfg Config) *discordImpl {
	return &discordImpl{
		l:      l,
		url:    url,
		config: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		},
	}
}
