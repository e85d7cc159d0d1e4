package usecase

import (
	"sync"
	"time"

	"team-calendar/internal/model"
	"team-calendar/internal/session/repository"
	pkgLog "team-calendar/pkg/log"
	"team-calendar/pkg/timeutil"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
	loc  *time.Location
	now  func() time.Time

	mu   sync.Mutex
	user *model.User // last known session user; nil when unauthenticated
}

// Option customizes the use case at construction time.
type Option func(*implUseCase)

// WithClock replaces the wall clock. Tests pin it to fixed instants.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) {
		uc.now = now
	}
}

// New creates the session use case. The timezone is the display zone the
// whole app runs in; its abbreviation is surfaced alongside the user.
func New(l pkgLog.Logger, repo repository.Repository, locs *timeutil.Locations, timezone string, opts ...Option) *implUseCase {
	uc := &implUseCase{
		l:    l,
		repo: repo,
		loc:  locs.Resolve(timezone),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
