package repository

import (
	"context"

	"team-calendar/internal/model"
)

// Repository is the interface for backend calendar data access.
type Repository interface {
	// ListMembers returns the schedulable roster in directory order.
	ListMembers(ctx context.Context) ([]model.Member, error)

	// ListAvailability returns one member's events for a date range, in the
	// backend's order.
	ListAvailability(ctx context.Context, memberID int, opt AvailabilityOptions) ([]model.Event, error)
}
