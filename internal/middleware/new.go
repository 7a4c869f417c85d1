package middleware

import (
	"listener-srv/pkg/discord"
	"listener-srv/pkg/log"
)

type Middleware struct {
	l           log.Logger
	internalKey string
	discord     discord.IDiscord
}

func New(l log.Logger, internalKey string, discord discord.IDiscord) Middleware {
	return Middleware{
		l:           l,
		internalKey: internalKey,
		discord:     discord,
	}
}
