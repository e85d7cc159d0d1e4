package session

import (
	"context"

	"team-calendar/internal/model"
)

// UseCase defines the business logic interface for the session domain.
type UseCase interface {
	// Me returns the authenticated user, or a nil user when no session is
	// active or the backend session check fails.
	Me(ctx context.Context) (MeOutput, error)

	// Logout ends the backend session and clears the cached user.
	Logout(ctx context.Context) error

	// LoginURL is the backend's Google OAuth entry point. The client is
	// redirected there; the backend owns the whole token exchange.
	LoginURL() string

	// Authenticated reports whether a user session is currently cached.
	Authenticated() bool

	// Scope is the request scope for the cached user. Empty when
	// unauthenticated.
	Scope() model.Scope
}
