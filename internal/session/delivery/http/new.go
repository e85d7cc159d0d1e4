package http

import (
	"team-calendar/internal/session"
	pkgLog "team-calendar/pkg/log"
)

// Handler is the public interface for the session HTTP delivery layer.
type Handler interface {
	Me(c interface{})
	Login(c interface{})
	Logout(c interface{})
}

type handler struct {
	l  pkgLog.Logger
	uc session.UseCase
}

// New creates a new HTTP handler for the session domain.
func New(l pkgLog.Logger, uc session.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
