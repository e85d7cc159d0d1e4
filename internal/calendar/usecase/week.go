package usecase

import (
	"context"
	"strconv"
	"time"

	"team-calendar/internal/calendar"
	"team-calendar/internal/model"
	"team-calendar/pkg/timeutil"
)

// WeekView retargets the view per the input, fetches the active week's
// availability and groups it into the 7 day buckets.
func (uc *implUseCase) WeekView(ctx context.Context, sc model.Scope, input calendar.WeekViewInput) (calendar.WeekViewOutput, error) {
	if err := uc.retarget(ctx, input); err != nil {
		return calendar.WeekViewOutput{}, err
	}

	uc.state.mu.Lock()
	selector := uc.state.selector
	uc.state.mu.Unlock()
	if selector == "" {
		return calendar.WeekViewOutput{}, calendar.ErrNoMemberSelected
	}

	events, failed := uc.refresh(ctx, sc)
	return uc.buildWeekOutput(events, failed), nil
}

// Advance pages the active week by ±7 days and refetches.
func (uc *implUseCase) Advance(ctx context.Context, sc model.Scope, input calendar.AdvanceInput) (calendar.WeekViewOutput, error) {
	var weeks int
	switch input.Direction {
	case calendar.DirectionNext:
		weeks = 1
	case calendar.DirectionPrev:
		weeks = -1
	default:
		return calendar.WeekViewOutput{}, calendar.ErrInvalidDirection
	}

	uc.state.mu.Lock()
	uc.state.weekStart = timeutil.AdvanceWeek(uc.state.weekStart, weeks)
	selector := uc.state.selector
	uc.state.mu.Unlock()

	if selector == "" {
		return calendar.WeekViewOutput{}, calendar.ErrNoMemberSelected
	}

	events, failed := uc.refresh(ctx, sc)
	return uc.buildWeekOutput(events, failed), nil
}

// retarget applies selector and timezone changes from the input. A timezone
// change re-normalizes the week start to the new zone's Sunday midnight so
// day boundaries stay aligned.
func (uc *implUseCase) retarget(ctx context.Context, input calendar.WeekViewInput) error {
	if input.Selector != "" && input.Selector != model.MemberSelectorAll {
		id, err := strconv.Atoi(input.Selector)
		if err != nil {
			return calendar.ErrUnknownMember
		}
		roster, err := uc.ensureRoster(ctx)
		if err == nil && !rosterContains(roster, id) {
			return calendar.ErrUnknownMember
		}
	}

	var loc *time.Location
	if input.Timezone != "" {
		var err error
		loc, err = uc.locs.Get(input.Timezone)
		if err != nil {
			return calendar.ErrInvalidTimezone
		}
	}

	uc.state.mu.Lock()
	defer uc.state.mu.Unlock()
	if input.Selector != "" {
		uc.state.selector = input.Selector
	}
	if loc != nil && loc.String() != uc.state.timezone {
		uc.state.timezone = loc.String()
		uc.state.loc = loc
		uc.state.weekStart = timeutil.StartOfWeek(uc.state.weekStart.In(loc), loc)
	}
	return nil
}

func rosterContains(roster []model.Member, id int) bool {
	for _, m := range roster {
		if m.ID == id {
			return true
		}
	}
	return false
}

// buildWeekOutput groups the fetched events into a bucket per weekday. Every
// day appears even when empty; within a day, fetch order is kept.
func (uc *implUseCase) buildWeekOutput(events []model.Event, failed []string) calendar.WeekViewOutput {
	uc.state.mu.Lock()
	selector := uc.state.selector
	timezone := uc.state.timezone
	loc := uc.state.loc
	weekStart := uc.state.weekStart
	uc.state.mu.Unlock()

	dates := timeutil.WeekDates(weekStart)
	days := make([]calendar.DayBucket, len(dates))
	for i, date := range dates {
		days[i] = calendar.DayBucket{
			Label: timeutil.DayLabel(date, loc),
			Date:  date,
		}
	}

	for _, ev := range events {
		local := ev.Start.DateTime.In(loc)
		for i, date := range dates {
			if timeutil.SameLocalDay(local, date, loc) {
				days[i].Events = append(days[i].Events, ev)
				break
			}
		}
	}

	return calendar.WeekViewOutput{
		Selector:      selector,
		Timezone:      timezone,
		WeekStart:     weekStart,
		Dates:         dates,
		RangeLabel:    timeutil.RangeLabel(weekStart, loc),
		Days:          days,
		FailedMembers: failed,
	}
}
