package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"listener-srv/internal/model"
	"listener-srv/internal/notification/repository"
)

func (r *implRepository) Push(ctx context.Context, recipientID string, n model.Notification) error {
	if recipientID == "" {
		return repository.ErrRecipientRequired
	}

	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("notification.repository.redis.Push: marshal: %w", err)
	}

	if err := r.redis.RPushExpire(ctx, r.key(recipientID), r.ttl, payload); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrQueueUnavailable, err)
	}

	return nil
}

func (r *implRepository) List(ctx context.Context, recipientID string) ([]model.Notification, error) {
	if recipientID == "" {
		return nil, repository.ErrRecipientRequired
	}

	items, err := r.redis.LRange(ctx, r.key(recipientID), 0, -1)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrQueueUnavailable, err)
	}

	out := make([]model.Notification, 0, len(items))
	for _, item := range items {
		var n model.Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			r.l.Warnf(ctx, "notification.repository.redis.List: skipping malformed entry for %s: %v", recipientID, err)
			continue
		}
		out = append(out, n)
	}

	return out, nil
}
