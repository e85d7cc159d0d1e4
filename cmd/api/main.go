package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"team-calendar/config"
	calendarBackend "team-calendar/internal/calendar/repository/backend"
	calendarUC "team-calendar/internal/calendar/usecase"
	"team-calendar/internal/cron"
	"team-calendar/internal/httpserver"
	sessionBackend "team-calendar/internal/session/repository/backend"
	sessionUC "team-calendar/internal/session/usecase"
	"team-calendar/pkg/log"
	"team-calendar/pkg/teamapi"
	"team-calendar/pkg/timeutil"

	_ "team-calendar/docs" // Swagger docs
)

// @title       Team Calendar API
// @description Team availability viewer over the team backend: roster, weekly availability, and the hour-by-hour day layout.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Team Calendar...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend URL: %s", cfg.Backend.URL)

	// 3. Backend API client
	client, err := teamapi.NewClient(cfg.Backend.URL, cfg.Backend.RateLimit)
	if err != nil {
		logger.Errorf(ctx, "Failed to create backend client: %v", err)
		return
	}

	locations, err := timeutil.NewLocations(cfg.Calendar.TimezoneCacheSize)
	if err != nil {
		logger.Errorf(ctx, "Failed to create timezone cache: %v", err)
		return
	}

	// 4. Session domain
	sessRepo := sessionBackend.New(client, logger)
	sessUC := sessionUC.New(logger, sessRepo, locations, cfg.Calendar.DefaultTimezone)

	// Initial session check; a dead backend degrades to logged-out.
	if me, err := sessUC.Me(ctx); err == nil && me.User != nil {
		logger.Infof(ctx, "Session active for %s", me.User.Email)
	} else {
		logger.Info(ctx, "No active session, login required")
	}

	// 5. Calendar domain
	calRepo := calendarBackend.New(client, logger)
	calUC := calendarUC.New(logger, calRepo, locations, cfg.Calendar.DefaultTimezone)

	// 6. Roster refresh scheduler
	scheduler := cron.NewScheduler(logger, calUC, cfg.Calendar.RosterRefresh)
	if err := scheduler.Start(); err != nil {
		logger.Errorf(ctx, "Failed to start scheduler: %v", err)
		return
	}
	defer scheduler.Stop()

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		CalendarUC:  calUC,
		SessionUC:   sessUC,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
