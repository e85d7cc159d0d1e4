package usecase

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"team-calendar/internal/calendar/repository"
	"team-calendar/internal/model"
	"team-calendar/pkg/timeutil"
)

// refresh runs a generation-tagged availability fetch for the current view
// and returns the committed snapshot. When a newer trigger supersedes this
// fetch mid-flight, its result is discarded and the newer snapshot wins.
func (uc *implUseCase) refresh(ctx context.Context, sc model.Scope) ([]model.Event, []string) {
	gen, selector, timezone, loc, weekStart := uc.state.beginFetch()

	events, failed := uc.fetchEvents(ctx, selector, timezone, loc, weekStart)

	if !uc.state.commit(gen, events, failed) {
		uc.l.Infof(ctx, "calendar: discarding stale fetch generation %d", gen)
		current, currentFailed, _ := uc.state.snapshot()
		return current, currentFailed
	}
	return events, failed
}

// fetchEvents retrieves the week's events for the selector. Failures degrade
// to an empty slice per member and are reported by name; they never
// propagate as errors.
func (uc *implUseCase) fetchEvents(ctx context.Context, selector, timezone string, loc *time.Location, weekStart time.Time) ([]model.Event, []string) {
	opt := repository.AvailabilityOptions{
		Timezone: timezone,
		Start:    weekStart,
		End:      timeutil.EndOfWeek(weekStart),
	}

	if selector == model.MemberSelectorAll {
		return uc.fetchAllMembers(ctx, opt)
	}

	memberID, err := strconv.Atoi(selector)
	if err != nil {
		// Validated upstream; an empty selector reaches here only on the
		// initial unselected view.
		return nil, nil
	}

	events, err := uc.repo.ListAvailability(ctx, memberID, opt)
	if err != nil {
		uc.l.Errorf(ctx, "calendar: availability fetch failed for member %d: %v", memberID, err)
		return nil, []string{selector}
	}
	return events, nil
}

// fetchAllMembers fans out one availability request per roster member and
// concatenates the results in roster order. Each member's events are stamped
// with the member's display name. A failed slice is skipped, not fatal.
func (uc *implUseCase) fetchAllMembers(ctx context.Context, opt repository.AvailabilityOptions) ([]model.Event, []string) {
	roster, err := uc.ensureRoster(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "calendar: roster unavailable for combined view: %v", err)
		return nil, nil
	}

	results := make([][]model.Event, len(roster))
	var mu sync.Mutex
	var failed []string

	g, gctx := errgroup.WithContext(ctx)
	for i, member := range roster {
		i, member := i, member
		g.Go(func() error {
			events, err := uc.repo.ListAvailability(gctx, member.ID, opt)
			if err != nil {
				uc.l.Warnf(gctx, "calendar: availability fetch failed for %s: %v", member.Name, err)
				mu.Lock()
				failed = append(failed, member.Name)
				mu.Unlock()
				return nil
			}
			for j := range events {
				events[j].MemberName = member.Name
			}
			results[i] = events
			return nil
		})
	}
	g.Wait()

	var flat []model.Event
	for _, slice := range results {
		flat = append(flat, slice...)
	}
	sort.Strings(failed)
	return flat, failed
}

// ensureRoster returns the cached roster, fetching it on first use.
func (uc *implUseCase) ensureRoster(ctx context.Context) ([]model.Member, error) {
	uc.state.mu.Lock()
	roster := uc.state.roster
	uc.state.mu.Unlock()
	if roster != nil {
		return roster, nil
	}

	if err := uc.RefreshMembers(ctx); err != nil {
		return nil, err
	}

	uc.state.mu.Lock()
	defer uc.state.mu.Unlock()
	return uc.state.roster, nil
}

// RefreshMembers re-fetches the roster. The scheduler calls this
// periodically; the cached roster is kept on failure.
func (uc *implUseCase) RefreshMembers(ctx context.Context) error {
	members, err := uc.repo.ListMembers(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "calendar: roster refresh failed: %v", err)
		return err
	}

	uc.state.mu.Lock()
	uc.state.roster = members
	uc.state.mu.Unlock()

	uc.l.Debugf(ctx, "calendar: roster refreshed, %d members", len(members))
	return nil
}
