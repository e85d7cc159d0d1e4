package middleware

import (
	"team-calendar/internal/session"
	"team-calendar/pkg/log"
)

type Middleware struct {
	l         log.Logger
	sessionUC session.UseCase
}

func New(l log.Logger, sessionUC session.UseCase) Middleware {
	return Middleware{
		l:         l,
		sessionUC: sessionUC,
	}
}
