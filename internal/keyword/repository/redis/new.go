package redis

import (
	"listener-srv/internal/keyword/repository"
	pkgLog "listener-srv/pkg/log"
	pkgRedis "listener-srv/pkg/redis"
)

// DefaultKey is the Redis key the admin tool writes the rule array to.
const DefaultKey = "listener:keywords"

type implRepository struct {
	l     pkgLog.Logger
	redis pkgRedis.IRedis
	key   string
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, redis pkgRedis.IRedis, key string) repository.Repository {
	if key == "" {
		key = DefaultKey
	}
	return &implRepository{
		l:     l,
		redis: redis,
		key:   key,
	}
}
