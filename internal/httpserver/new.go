package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"team-calendar/internal/calendar"
	"team-calendar/internal/session"
	"team-calendar/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	calendarUC calendar.UseCase
	sessionUC  session.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	CalendarUC calendar.UseCase
	SessionUC  session.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		calendarUC:  cfg.CalendarUC,
		sessionUC:   cfg.SessionUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.calendarUC == nil {
		return errors.New("calendar use case is required")
	}
	if srv.sessionUC == nil {
		return errors.New("session use case is required")
	}
	return nil
}
