package http

import (
	"team-calendar/internal/calendar"
	pkgLog "team-calendar/pkg/log"
)

// Handler is the public interface for the calendar HTTP delivery layer.
type Handler interface {
	Members(c interface{})
	Week(c interface{})
	Advance(c interface{})
	OpenDay(c interface{})
	CurrentDay(c interface{})
	CloseDay(c interface{})
}

type handler struct {
	l  pkgLog.Logger
	uc calendar.UseCase
}

// New creates a new HTTP handler for the calendar domain.
func New(l pkgLog.Logger, uc calendar.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
