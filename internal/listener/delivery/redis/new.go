package redis

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/semaphore"

	"listener-srv/internal/listener"
	"listener-srv/pkg/log"
	pkgRedis "listener-srv/pkg/redis"
)

// DefaultChannel is where external chat clients publish inbound messages.
const DefaultChannel = "listener:inbound"

type Subscriber interface {
	Start() error
	Shutdown(ctx context.Context) error
}

// Options configures the subscriber.
type Options struct {
	Channel     string
	MaxInFlight int64
}

type subscriber struct {
	redis   pkgRedis.IRedis
	uc      listener.UseCase
	logger  log.Logger
	channel string

	// Lifecycle fields
	pubsub   *redis.PubSub
	sem      *semaphore.Weighted
	wg       sync.WaitGroup
	inflight sync.WaitGroup
	quit     chan struct{}
	ctx      context.Context
	cancel   context.CancelFunc
}

func New(redis pkgRedis.IRedis, uc listener.UseCase, logger log.Logger, opts Options) Subscriber {
	if opts.Channel == "" {
		opts.Channel = DefaultChannel
	}
	if opts.MaxInFlight <= 0 {
		opts.MaxInFlight = 64
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &subscriber{
		redis:   redis,
		uc:      uc,
		logger:  logger,
		channel: opts.Channel,
		sem:     semaphore.NewWeighted(opts.MaxInFlight),
		quit:    make(chan struct{}),
		ctx:     ctx,
		cancel:  cancel,
	}
}
