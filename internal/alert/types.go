package alert

import "time"

// StoreFailureInput describes one failed rule-store or queue call.
type StoreFailureInput struct {
	Operation  string // e.g. "load_rules", "push"
	MessageID  int64
	ChatID     int64
	Recipient  string // empty for load_rules
	Err        error
	OccurredAt time.Time
}
