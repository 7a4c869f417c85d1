package usecase

import (
	"time"

	"github.com/google/uuid"

	"listener-srv/internal/alert"
	"listener-srv/internal/keyword"
	keywordRepo "listener-srv/internal/keyword/repository"
	"listener-srv/internal/listener"
	notificationRepo "listener-srv/internal/notification/repository"
	pkgLog "listener-srv/pkg/log"
)

// Options tunes the pipeline.
type Options struct {
	// SelfID is the chat account the pipeline runs as; its own messages
	// are ignored even when the client does not flag them.
	SelfID int64
	// StoreTimeout bounds each rule-store and queue call. Zero disables it.
	StoreTimeout time.Duration
	// Alerts, when set, is told about store failures. Nil disables it.
	Alerts alert.UseCase
}

type implUseCase struct {
	l       pkgLog.Logger
	rules   keywordRepo.Repository
	matcher keyword.UseCase
	queue   notificationRepo.Queue
	opts    Options
	traceID func() string
}

var _ listener.UseCase = &implUseCase{}

func New(
	l pkgLog.Logger,
	rules keywordRepo.Repository,
	matcher keyword.UseCase,
	queue notificationRepo.Queue,
	opts Options,
) listener.UseCase {
	return &implUseCase{
		l:       l,
		rules:   rules,
		matcher: matcher,
		queue:   queue,
		opts:    opts,
		traceID: uuid.NewString,
	}
}
