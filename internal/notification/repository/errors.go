package repository

import "errors"

var (
	ErrRecipientRequired = errors.New("recipient id is required")
	ErrQueueUnavailable  = errors.New("notification queue unavailable")
)
