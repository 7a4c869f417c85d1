package keyword

import "listener-srv/internal/model"

// MatchResult is the rule selected by Evaluate.
type MatchResult struct {
	Rule    model.KeywordRule
	Keyword string
}
