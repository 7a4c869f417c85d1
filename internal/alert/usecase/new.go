package usecase

import (
	"sync"
	"time"

	"listener-srv/internal/alert"
	"listener-srv/pkg/discord"
	"listener-srv/pkg/log"
)

// DefaultCooldown is the minimum gap between two alerts for the same operation.
const DefaultCooldown = time.Minute

type implUseCase struct {
	logger   log.Logger
	discord  discord.IDiscord
	cooldown time.Duration
	now      func() time.Time

	mu       sync.Mutex
	lastSent map[string]time.Time
}

func New(logger log.Logger, discord discord.IDiscord, cooldown time.Duration) alert.UseCase {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &implUseCase{
		logger:   logger,
		discord:  discord,
		cooldown: cooldown,
		now:      time.Now,
		lastSent: make(map[string]time.Time),
	}
}
