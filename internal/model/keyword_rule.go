package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// MatchPattern selects how a rule's keyword is compared with message text.
type MatchPattern string

const (
	MatchPatternExact MatchPattern = "exact"
	MatchPatternFuzzy MatchPattern = "fuzzy"
)

// KeywordRule is a user-defined trigger. Rules are stored as one JSON array
// written by an external admin tool, so decoding is lenient about number vs
// string ids and 0/1 flags.
type KeywordRule struct {
	OwnerUserID      string       `json:"user_id"`
	Keyword          string       `json:"keyword"`
	MatchPattern     MatchPattern `json:"match_pattern"`
	WordLimit        int          `json:"word_limit"`
	RequiresUsername bool         `json:"has_username"`
	IsActive         bool         `json:"is_active"`
}

type keywordRuleWire struct {
	OwnerUserID      json.RawMessage `json:"user_id"`
	Keyword          *string         `json:"keyword"`
	MatchPattern     *string         `json:"match_pattern"`
	WordLimit        *float64        `json:"word_limit"`
	RequiresUsername json.RawMessage `json:"has_username"`
	IsActive         json.RawMessage `json:"is_active"`
}

// UnmarshalJSON decodes a rule, applying the store writer's defaults:
// match_pattern "exact", word_limit 0, has_username false, is_active false.
func (r *KeywordRule) UnmarshalJSON(data []byte) error {
	var w keywordRuleWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	owner, err := decodeLooseString(w.OwnerUserID)
	if err != nil {
		return fmt.Errorf("user_id: %w", err)
	}
	requiresUsername, err := decodeLooseBool(w.RequiresUsername)
	if err != nil {
		return fmt.Errorf("has_username: %w", err)
	}
	isActive, err := decodeLooseBool(w.IsActive)
	if err != nil {
		return fmt.Errorf("is_active: %w", err)
	}

	rule := KeywordRule{
		OwnerUserID:      owner,
		MatchPattern:     MatchPatternExact,
		RequiresUsername: requiresUsername,
		IsActive:         isActive,
	}
	if w.Keyword != nil {
		rule.Keyword = *w.Keyword
	}
	if w.MatchPattern != nil {
		rule.MatchPattern = MatchPattern(*w.MatchPattern)
	}
	if w.WordLimit != nil {
		rule.WordLimit = wordLimit(*w.WordLimit)
	}

	*r = rule
	return nil
}

// wordLimit rounds a fractional limit up, so "fewer words than 2.5"
// still rejects two words, and clamps values an int cannot hold.
func wordLimit(f float64) int {
	switch c := math.Ceil(f); {
	case c >= math.MaxInt:
		return math.MaxInt
	case c <= 0:
		return 0
	default:
		return int(c)
	}
}

func isJSONNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// decodeLooseString accepts a JSON string or number.
func decodeLooseString(raw json.RawMessage) (string, error) {
	if isJSONNull(raw) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("want string or number, got %s", raw)
	}
	return n.String(), nil
}

// decodeLooseBool accepts a JSON bool, number (non-zero is true) or string
// (non-empty is true).
func decodeLooseBool(raw json.RawMessage) (bool, error) {
	if isJSONNull(raw) {
		return false, nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s != "", nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return false, err
		}
		return f != 0, nil
	}
	return false, fmt.Errorf("want bool, number or string, got %s", raw)
}
