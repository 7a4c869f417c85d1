package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"listener-srv/internal/keyword/repository"
	"listener-srv/internal/model"
	pkgRedis "listener-srv/pkg/redis"
)

func (r *implRepository) Load(ctx context.Context) ([]model.KeywordRule, error) {
	raw, err := r.redis.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, pkgRedis.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", repository.ErrStoreUnavailable, err)
	}

	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var rules []model.KeywordRule
	if err := json.Unmarshal([]byte(raw), &rules); err != nil {
		r.l.Warnf(ctx, "keyword.repository.redis.Load: unparsable rule set at %s: %v", r.key, err)
		return nil, nil
	}

	return rules, nil
}
