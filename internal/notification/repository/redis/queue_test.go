package redis

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listener-srv/internal/model"
	"listener-srv/internal/notification/repository"
	pkgLog "listener-srv/pkg/log"
	pkgRedis "listener-srv/pkg/redis"
)

func setup(t *testing.T) (*miniredis.Miniredis, repository.Queue) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, New(pkgLog.NewNop(), pkgRedis.NewFromClient(client), Options{})
}

func notification(id int64, keyword string) model.Notification {
	return model.Notification{
		MessageID:      id,
		ChatTitle:      null.StringFrom("chat"),
		ChatType:       model.ChatTypeGroup,
		ChatID:         -42,
		SenderFullName: "Someone",
		SenderID:       5,
		Text:           "text with " + keyword,
		Timestamp:      1700000000,
		MatchedKeyword: keyword,
	}
}

func TestPushAppendsInOrderAndRefreshesTTL(t *testing.T) {
	mr, q := setup(t)
	ctx := context.Background()

	require.NoError(t, q.Push(ctx, "100", notification(1, "foo")))
	mr.FastForward(10 * time.Hour)
	assert.Equal(t, 14*time.Hour, mr.TTL(DefaultKeyPrefix+"100"))

	require.NoError(t, q.Push(ctx, "100", notification(2, "bar")))
	assert.Equal(t, DefaultTTL, mr.TTL(DefaultKeyPrefix+"100"))

	got, err := q.List(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, []model.Notification{notification(1, "foo"), notification(2, "bar")}, got)

	raw, err := mr.List(DefaultKeyPrefix + "100")
	require.NoError(t, err)
	assert.Len(t, raw, 2)
	assert.JSONEq(t, `{
		"message_id": 1, "message_link": null, "chat_title": "chat", "chat_username": null,
		"chat_type": "group", "chat_id": -42, "user_name": null, "user_full_name": "Someone",
		"user_id": 5, "text": "text with foo", "date": 1700000000, "matched_keyword": "foo"
	}`, raw[0])
}

func TestQueueExpires(t *testing.T) {
	mr, q := setup(t)
	ctx := context.Background()

	require.NoError(t, q.Push(ctx, "7", notification(1, "foo")))
	mr.FastForward(DefaultTTL + time.Second)

	got, err := q.List(ctx, "7")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPushKeepsRecipientsApart(t *testing.T) {
	_, q := setup(t)
	ctx := context.Background()

	require.NoError(t, q.Push(ctx, "a", notification(1, "foo")))
	require.NoError(t, q.Push(ctx, "b", notification(2, "bar")))

	a, err := q.List(ctx, "a")
	require.NoError(t, err)
	b, err := q.List(ctx, "b")
	require.NoError(t, err)

	assert.Equal(t, []model.Notification{notification(1, "foo")}, a)
	assert.Equal(t, []model.Notification{notification(2, "bar")}, b)
}

func TestPushConcurrent(t *testing.T) {
	_, q := setup(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, q.Push(ctx, fmt.Sprintf("r%d", i%3), notification(int64(i), "kw")))
		}(i)
	}
	wg.Wait()

	total := 0
	for r := 0; r < 3; r++ {
		got, err := q.List(ctx, fmt.Sprintf("r%d", r))
		require.NoError(t, err)
		total += len(got)
	}
	assert.Equal(t, 50, total)
}

func TestPushValidation(t *testing.T) {
	_, q := setup(t)

	assert.ErrorIs(t, q.Push(context.Background(), "", notification(1, "x")), repository.ErrRecipientRequired)
	_, err := q.List(context.Background(), "")
	assert.ErrorIs(t, err, repository.ErrRecipientRequired)
}

func TestPushStoreFailure(t *testing.T) {
	mr, q := setup(t)
	mr.Close()

	err := q.Push(context.Background(), "1", notification(1, "x"))
	assert.ErrorIs(t, err, repository.ErrQueueUnavailable)
}
