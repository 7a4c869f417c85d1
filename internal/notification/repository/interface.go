package repository

import (
	"context"

	"listener-srv/internal/model"
)

//go:generate mockery --name Queue
type Queue interface {
	// Push appends n to the tail of the recipient's queue and resets the
	// queue's TTL. One call is one atomic append.
	Push(ctx context.Context, recipientID string, n model.Notification) error
	// List returns the recipient's pending notifications, oldest first,
	// without removing them.
	List(ctx context.Context, recipientID string) ([]model.Notification, error)
}
