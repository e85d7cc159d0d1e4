// Package cron schedules background maintenance for the calendar viewer.
package cron

import (
	"context"

	"github.com/robfig/cron/v3"

	"team-calendar/internal/calendar"
	pkgLog "team-calendar/pkg/log"
)

// Scheduler runs the periodic roster refresh so the member dropdown stays
// current without a restart.
type Scheduler struct {
	cron        *cron.Cron
	l           pkgLog.Logger
	calendarUC  calendar.UseCase
	refreshSpec string
}

// NewScheduler creates a scheduler. refreshSpec is a cron expression or an
// "@every 15m" style interval.
func NewScheduler(l pkgLog.Logger, calendarUC calendar.UseCase, refreshSpec string) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		l:           l,
		calendarUC:  calendarUC,
		refreshSpec: refreshSpec,
	}
}

// Start registers the jobs and starts the scheduler.
func (s *Scheduler) Start() error {
	ctx := context.Background()

	_, err := s.cron.AddFunc(s.refreshSpec, func() {
		s.l.Debug(ctx, "cron: running roster refresh")
		if err := s.calendarUC.RefreshMembers(ctx); err != nil {
			s.l.Warnf(ctx, "cron: roster refresh failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.l.Infof(ctx, "cron: scheduler started, roster refresh %q", s.refreshSpec)
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.l.Info(context.Background(), "cron: scheduler stopped")
}
