package usecase

import (
	"time"

	"team-calendar/internal/calendar/repository"
	pkgLog "team-calendar/pkg/log"
	"team-calendar/pkg/timeutil"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
	locs *timeutil.Locations
	now  func() time.Time

	state *viewState
}

// Option customizes the use case at construction time.
type Option func(*implUseCase)

// WithClock replaces the wall clock. Tests pin it to fixed instants.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) {
		uc.now = now
	}
}

// New creates the calendar use case. The view starts on the current week in
// the default timezone with no member selected.
func New(l pkgLog.Logger, repo repository.Repository, locs *timeutil.Locations, defaultTimezone string, opts ...Option) *implUseCase {
	uc := &implUseCase{
		l:    l,
		repo: repo,
		locs: locs,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}

	loc := locs.Resolve(defaultTimezone)
	uc.state = &viewState{
		timezone:  loc.String(),
		loc:       loc,
		weekStart: timeutil.StartOfWeek(uc.now(), loc),
	}
	return uc
}
