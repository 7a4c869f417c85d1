package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

type IRedis interface {
	Get(ctx context.Context, key string) (string, error)
	// RPushExpire appends values to the tail of the list at key and resets
	// the key's TTL, in one MULTI/EXEC transaction.
	RPushExpire(ctx context.Context, key string, ttl time.Duration, values ...interface{}) error
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	Subscribe(ctx context.Context, channels ...string) *goredis.PubSub
	Ping(ctx context.Context) error
	Close() error
}
