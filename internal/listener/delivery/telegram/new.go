package telegram

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/sync/semaphore"

	"listener-srv/internal/listener"
	"listener-srv/pkg/log"
)

// UpdateSource is the part of *tgbotapi.BotAPI the consumer needs.
type UpdateSource interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type Consumer interface {
	Start() error
	Shutdown(ctx context.Context) error
}

// Options configures the long-poll consumer.
type Options struct {
	// SelfID is the bot's own user id, used to flag its own messages.
	SelfID int64
	// PollTimeout is the long-poll timeout in seconds.
	PollTimeout int
	MaxInFlight int64
}

type consumer struct {
	source UpdateSource
	uc     listener.UseCase
	logger log.Logger
	opts   Options

	sem      *semaphore.Weighted
	wg       sync.WaitGroup
	inflight sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
}

func New(source UpdateSource, uc listener.UseCase, logger log.Logger, opts Options) Consumer {
	if opts.PollTimeout <= 0 {
		opts.PollTimeout = 60
	}
	if opts.MaxInFlight <= 0 {
		opts.MaxInFlight = 64
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &consumer{
		source: source,
		uc:     uc,
		logger: logger,
		opts:   opts,
		sem:    semaphore.NewWeighted(opts.MaxInFlight),
		ctx:    ctx,
		cancel: cancel,
	}
}
