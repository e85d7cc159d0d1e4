package calendar

import (
	"context"

	"team-calendar/internal/model"
)

// UseCase defines the business logic interface for the calendar domain.
type UseCase interface {
	// Members returns the roster for the dashboard, fetching it on first use.
	Members(ctx context.Context, sc model.Scope) (MembersOutput, error)

	// WeekView fetches availability for the active week and groups it into
	// the 7 day buckets. Input fields, when set, retarget the view first.
	WeekView(ctx context.Context, sc model.Scope, input WeekViewInput) (WeekViewOutput, error)

	// Advance pages the active week by ±7 days and returns the new view.
	Advance(ctx context.Context, sc model.Scope, input AdvanceInput) (WeekViewOutput, error)

	// OpenDay computes the time-block layout for one day of the loaded week
	// and starts the minute-by-minute now-marker refresher.
	OpenDay(ctx context.Context, sc model.Scope, input DayViewInput) (DayViewOutput, error)

	// CurrentDay returns the open day view with its refreshed now marker.
	CurrentDay(ctx context.Context) (DayViewOutput, error)

	// CloseDay stops the now-marker refresher. Safe to call when no day view
	// is open.
	CloseDay(ctx context.Context)

	// RefreshMembers re-fetches the roster. Called on a schedule.
	RefreshMembers(ctx context.Context) error
}
