package usecase

import (
	"context"
	"testing"
	"time"

	"team-calendar/internal/calendar/repository"
	"team-calendar/internal/model"
	"team-calendar/pkg/timeutil"
)

type mockRepo struct {
	listMembers      func(ctx context.Context) ([]model.Member, error)
	listAvailability func(ctx context.Context, memberID int, opt repository.AvailabilityOptions) ([]model.Event, error)
}

func (m *mockRepo) ListMembers(ctx context.Context) ([]model.Member, error) {
	return m.listMembers(ctx)
}

func (m *mockRepo) ListAvailability(ctx context.Context, memberID int, opt repository.AvailabilityOptions) ([]model.Event, error) {
	return m.listAvailability(ctx, memberID, opt)
}

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                 {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Info(ctx context.Context, args ...any)                  {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Warn(ctx context.Context, args ...any)                  {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Error(ctx context.Context, args ...any)                 {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any) {}

func newLocations(t *testing.T) *timeutil.Locations {
	t.Helper()
	locs, err := timeutil.NewLocations(8)
	if err != nil {
		t.Fatalf("NewLocations: %v", err)
	}
	return locs
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("LoadLocation(%s): %v", name, err)
	}
	return loc
}

func newEvent(id string, summary string, start, end time.Time) model.Event {
	return model.Event{
		ID:      model.EventID(id),
		Summary: summary,
		Start:   model.EventTime{DateTime: start},
		End:     model.EventTime{DateTime: end},
	}
}
