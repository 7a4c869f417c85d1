package redis

import (
	"time"

	"listener-srv/internal/notification/repository"
	pkgLog "listener-srv/pkg/log"
	pkgRedis "listener-srv/pkg/redis"
)

const (
	// DefaultKeyPrefix is prepended to the recipient id to form the list key.
	DefaultKeyPrefix = "listener:push:messages:"
	// DefaultTTL bounds how long an idle queue survives.
	DefaultTTL = 24 * time.Hour
)

// Options configures the queue key layout.
type Options struct {
	KeyPrefix string
	TTL       time.Duration
}

type implRepository struct {
	l         pkgLog.Logger
	redis     pkgRedis.IRedis
	keyPrefix string
	ttl       time.Duration
}

var _ repository.Queue = &implRepository{}

func New(l pkgLog.Logger, redis pkgRedis.IRedis, opts Options) repository.Queue {
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = DefaultKeyPrefix
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	return &implRepository{
		l:         l,
		redis:     redis,
		keyPrefix: opts.KeyPrefix,
		ttl:       opts.TTL,
	}
}

func (r *implRepository) key(recipientID string) string {
	return r.keyPrefix + recipientID
}
