package usecase

import (
	"context"
	"time"

	"team-calendar/internal/calendar"
	"team-calendar/internal/calendar/layout"
	"team-calendar/internal/model"
	"team-calendar/pkg/timeutil"
)

// nowMarkerInterval is how often the open day's marker is recomputed.
const nowMarkerInterval = time.Minute

// OpenDay computes the hour-block layout for one of the loaded week's dates
// and starts the minute refresher that keeps the now marker current until
// CloseDay.
func (uc *implUseCase) OpenDay(ctx context.Context, sc model.Scope, input calendar.DayViewInput) (calendar.DayViewOutput, error) {
	uc.state.mu.Lock()
	selector := uc.state.selector
	loc := uc.state.loc
	events := uc.state.events
	fetched := uc.state.fetched
	uc.state.mu.Unlock()

	if selector == "" {
		return calendar.DayViewOutput{}, calendar.ErrNoMemberSelected
	}

	date, err := time.ParseInLocation("2006-01-02", input.Date, loc)
	if err != nil {
		return calendar.DayViewOutput{}, calendar.ErrInvalidDate
	}

	if !fetched {
		events, _ = uc.refresh(ctx, sc)
	}

	members, err := uc.relevantMembers(ctx, selector)
	if err != nil {
		return calendar.DayViewOutput{}, err
	}

	grid := layout.BuildDayGrid(layout.Input{
		Date:     date,
		Events:   events,
		Members:  members,
		AllMode:  selector == model.MemberSelectorAll,
		Location: loc,
		Now:      uc.now(),
	})

	uc.state.mu.Lock()
	uc.state.closeDayLocked()
	day := &dayView{
		date:    date,
		members: members,
		grid:    grid,
		ticker:  time.NewTicker(nowMarkerInterval),
		done:    make(chan struct{}),
	}
	uc.state.day = day
	uc.state.mu.Unlock()

	go uc.runNowMarker(day, loc)

	uc.l.Debugf(ctx, "calendar: opened day view %s for selector %s", input.Date, selector)
	return uc.dayOutput(date, loc, members, grid), nil
}

// CurrentDay returns the open day view with its latest now marker.
func (uc *implUseCase) CurrentDay(ctx context.Context) (calendar.DayViewOutput, error) {
	uc.state.mu.Lock()
	defer uc.state.mu.Unlock()

	if uc.state.day == nil {
		return calendar.DayViewOutput{}, calendar.ErrNoDayOpen
	}
	day := uc.state.day
	return uc.dayOutput(day.date, uc.state.loc, day.members, day.grid), nil
}

// CloseDay stops the open day's refresher. A no-op when nothing is open.
func (uc *implUseCase) CloseDay(ctx context.Context) {
	uc.state.mu.Lock()
	defer uc.state.mu.Unlock()
	uc.state.closeDayLocked()
}

// runNowMarker recomputes the marker each tick until the view closes. Only
// the marker moves; the hour rows are stable for the day.
func (uc *implUseCase) runNowMarker(day *dayView, loc *time.Location) {
	for {
		select {
		case <-day.done:
			return
		case <-day.ticker.C:
			uc.tickNowMarker(day, loc)
		}
	}
}

// tickNowMarker is one refresh step, split out so tests can drive it without
// waiting on the ticker.
func (uc *implUseCase) tickNowMarker(day *dayView, loc *time.Location) {
	marker := layout.NowMarkerFor(day.date, uc.now(), loc)
	uc.state.mu.Lock()
	if uc.state.day == day {
		day.grid.Now = marker
	}
	uc.state.mu.Unlock()
}

// relevantMembers resolves the day view's member columns: the whole roster
// in combined mode, the single selected member otherwise.
func (uc *implUseCase) relevantMembers(ctx context.Context, selector string) ([]model.Member, error) {
	roster, err := uc.ensureRoster(ctx)
	if err != nil {
		return nil, err
	}
	if selector == model.MemberSelectorAll {
		return roster, nil
	}
	for _, m := range roster {
		if intToSelector(m.ID) == selector {
			return []model.Member{m}, nil
		}
	}
	return nil, calendar.ErrUnknownMember
}

func (uc *implUseCase) dayOutput(date time.Time, loc *time.Location, members []model.Member, grid layout.DayGrid) calendar.DayViewOutput {
	return calendar.DayViewOutput{
		Date:     date,
		Label:    timeutil.LongDayLabel(date, loc),
		Timezone: loc.String(),
		Members:  members,
		Grid:     grid,
	}
}
