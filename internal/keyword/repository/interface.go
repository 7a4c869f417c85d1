package repository

import (
	"context"

	"listener-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// Load returns the current rule set in stored order. A missing or
	// unparsable entry yields an empty set and no error; only store
	// failures are returned.
	Load(ctx context.Context) ([]model.KeywordRule, error)
}
