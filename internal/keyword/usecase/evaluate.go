package usecase

import (
	"strings"

	"listener-srv/internal/keyword"
	"listener-srv/internal/model"
)

// Evaluate walks rules once. Gates are checked per rule regardless of the
// candidate flag, and a gate failure only skips that rule.
func (uc implUseCase) Evaluate(msg model.ChatMessage, rules []model.KeywordRule) (keyword.MatchResult, bool) {
	text := msg.Content()

	for _, rule := range rules {
		if !rule.IsActive {
			continue
		}

		candidate := candidateMatch(rule, text)

		if rule.RequiresUsername && !msg.HasUsername() {
			continue
		}

		if rule.WordLimit > 0 && wordCount(text) < rule.WordLimit {
			continue
		}

		if candidate {
			return keyword.MatchResult{Rule: rule, Keyword: rule.Keyword}, true
		}
	}

	return keyword.MatchResult{}, false
}

func candidateMatch(rule model.KeywordRule, text string) bool {
	switch rule.MatchPattern {
	case model.MatchPatternExact:
		return strings.Contains(text, rule.Keyword)
	case model.MatchPatternFuzzy:
		return strings.Contains(strings.ToLower(text), strings.ToLower(rule.Keyword))
	default:
		return false
	}
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}
