package keyword

import "listener-srv/internal/model"

// UseCase evaluates chat messages against keyword rules.
type UseCase interface {
	// Evaluate scans rules in order and returns the first active rule whose
	// keyword occurs in the message and whose gates pass. It is pure and
	// safe for concurrent use.
	Evaluate(msg model.ChatMessage, rules []model.KeywordRule) (MatchResult, bool)
}
