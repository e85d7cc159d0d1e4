package usecase

import (
	"context"

	"team-calendar/internal/model"
	"team-calendar/internal/session"
	"team-calendar/pkg/timeutil"
)

// Me checks the backend session and caches the result. A failed check
// degrades to the last known user rather than erroring, so a backend blip
// never logs the viewer out of the UI.
func (uc *implUseCase) Me(ctx context.Context) (session.MeOutput, error) {
	user, err := uc.repo.CurrentUser(ctx)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err != nil {
		uc.l.Warnf(ctx, "session: check failed, serving cached state: %v", err)
	} else {
		uc.user = user
	}
	return uc.output(), nil
}

// Logout ends the backend session. The cached user is cleared even when the
// backend call fails; the next check re-syncs.
func (uc *implUseCase) Logout(ctx context.Context) error {
	err := uc.repo.Logout(ctx)

	uc.mu.Lock()
	uc.user = nil
	uc.mu.Unlock()

	if err != nil {
		return err
	}
	uc.l.Info(ctx, "session: logged out")
	return nil
}

func (uc *implUseCase) LoginURL() string {
	return uc.repo.LoginURL()
}

// Authenticated reports whether the cached session has a user.
func (uc *implUseCase) Authenticated() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.user != nil
}

// Scope is the request scope for the cached user.
func (uc *implUseCase) Scope() model.Scope {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.user == nil {
		return model.Scope{}
	}
	return model.Scope{UserEmail: uc.user.Email}
}

// output builds the session view. Caller holds mu.
func (uc *implUseCase) output() session.MeOutput {
	return session.MeOutput{
		User:         uc.user,
		Timezone:     uc.loc.String(),
		TimezoneAbbr: timeutil.ZoneAbbr(uc.now(), uc.loc),
	}
}
