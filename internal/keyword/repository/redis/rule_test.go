package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listener-srv/internal/keyword/repository"
	"listener-srv/internal/model"
	pkgLog "listener-srv/pkg/log"
	pkgRedis "listener-srv/pkg/redis"
)

func setup(t *testing.T) (*miniredis.Miniredis, repository.Repository) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, New(pkgLog.NewNop(), pkgRedis.NewFromClient(client), "")
}

func TestLoad(t *testing.T) {
	mr, repo := setup(t)
	ctx := context.Background()

	rules, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, rules, "missing key")

	require.NoError(t, mr.Set(DefaultKey, `[
		{"user_id": 1, "keyword": "foo", "match_pattern": "exact", "is_active": true},
		{"user_id": "2", "keyword": "bar", "match_pattern": "fuzzy", "word_limit": 3, "has_username": 1, "is_active": 0}
	]`))

	rules, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.KeywordRule{
		{OwnerUserID: "1", Keyword: "foo", MatchPattern: model.MatchPatternExact, IsActive: true},
		{OwnerUserID: "2", Keyword: "bar", MatchPattern: model.MatchPatternFuzzy, WordLimit: 3, RequiresUsername: true},
	}, rules)
}

func TestLoadMalformedIsEmpty(t *testing.T) {
	mr, repo := setup(t)

	for _, raw := range []string{"not json", `{"keyword":"foo"}`, `[{"keyword":"foo","word_limit":"x"}]`, "  "} {
		require.NoError(t, mr.Set(DefaultKey, raw))

		rules, err := repo.Load(context.Background())
		assert.NoError(t, err, raw)
		assert.Empty(t, rules, raw)
	}
}

func TestLoadStoreFailure(t *testing.T) {
	mr, repo := setup(t)
	mr.Close()

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
}

func TestLoadWrongType(t *testing.T) {
	mr, repo := setup(t)
	_, err := mr.Push(DefaultKey, "x")
	require.NoError(t, err)

	_, err = repo.Load(context.Background())
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
}
