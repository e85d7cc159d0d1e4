package repository

import (
	"context"

	"team-calendar/internal/model"
)

// Repository is the interface for backend session access.
type Repository interface {
	// CurrentUser returns the session's user, or nil when no session is
	// active.
	CurrentUser(ctx context.Context) (*model.User, error)

	// Logout ends the backend session.
	Logout(ctx context.Context) error

	// LoginURL is the backend's OAuth entry point.
	LoginURL() string
}
