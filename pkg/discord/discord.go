package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	for _, chunk := range splitMessage(message, MaxMessageLength) {
		if err := d.sendWithRetry(ctx, &webhookPayload{Content: chunk, Username: d.config.Username}); err != nil {
			return err
		}
	}
	return nil
}

func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

func (d *discordImpl) sendWithRetry(ctx context.Context, payload *webhookPayload) error {
	var lastErr error
	for attempt := 0; attempt <= d.config.RetryCount; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d.config.RetryDelay):
			}
		}
		err := d.send(ctx, payload)
		if err == nil {
			return nil
		}
		lastErr = err
		if d.l != nil {
			d.l.Warnf(ctx, "pkg.discord.sendWithRetry: attempt %d failed: %v", attempt+1, err)
		}
	}
	return fmt.Errorf("pkg.discord.sendWithRetry: giving up: %w", lastErr)
}

func (d *discordImpl) send(ctx context.Context, payload *webhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return nil
}

// splitMessage breaks message on line boundaries into chunks of at most max
// bytes, hard-splitting lines that are longer than max.
func splitMessage(message string, max int) []string {
	var chunks []string
	var current strings.Builder
	for _, line := range strings.SplitAfter(message, "\n") {
		if current.Len()+len(line) > max {
			if current.Len() > 0 {
				chunks = append(chunks, strings.TrimSuffix(current.String(), "\n"))
				current.Reset()
			}
			for len(line) > max {
				chunks = append(chunks, line[:max])
				line = line[max:]
			}
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		chunks = append(chunks, strings.TrimSuffix(current.String(), "\n"))
	}
	return chunks
}
