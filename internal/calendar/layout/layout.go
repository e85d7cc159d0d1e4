// Package layout converts one day's availability events into a 24-row hourly
// grid, one column per member, with proportional positioning inside each row.
// Everything here is pure: callers pass the wall clock in.
package layout

import (
	"sort"
	"time"

	"team-calendar/internal/model"
	"team-calendar/pkg/timeutil"
)

// Slot is one event laid out inside its owning hour row. Top and height are
// percentages of the 60-minute row; an event longer than the remainder of its
// first hour visually overflows into the rows below, so height is clamped to
// that remainder.
type Slot struct {
	Event           model.Event
	StartMinutes    int // minutes since local midnight, 0-1439
	EndMinutes      int
	DurationMinutes int
	TopPercent      float64
	HeightPercent   float64
	Category        Category
}

// MemberColumn is one member's cell within an hour row.
type MemberColumn struct {
	Member model.Member
	Busy   bool
	Slots  []Slot
}

// HourRow is one of the 24 hourly rows.
type HourRow struct {
	Hour    int
	Label   string // "9AM" style, in the active timezone's convention
	Columns []MemberColumn
}

// NowMarker positions the current-time indicator within its hour row.
type NowMarker struct {
	Hour       int
	TopPercent float64
}

// DayGrid is the full day detail layout.
type DayGrid struct {
	Rows []HourRow
	Now  *NowMarker // nil unless the grid's date is today
}

// Input is everything BuildDayGrid needs.
type Input struct {
	Date     time.Time      // target day
	Events   []model.Event  // flat event context, possibly spanning the week
	Members  []model.Member // relevant members, in display order
	AllMode  bool           // true when the selector is "all"
	Location *time.Location
	Now      time.Time // wall clock for the current-time marker
}

// BuildDayGrid lays out one day. Each event renders exactly once, in the
// first hour row it overlaps; which row that is does not depend on any other
// event.
func BuildDayGrid(in Input) DayGrid {
	dayEvents := filterDay(in.Events, in.Date, in.Location)

	rows := make([]HourRow, 24)
	for h := range rows {
		rows[h] = HourRow{
			Hour:    h,
			Label:   timeutil.HourLabel(h),
			Columns: make([]MemberColumn, 0, len(in.Members)),
		}
	}

	for _, member := range in.Members {
		byHour := make(map[int][]Slot)
		for _, slot := range memberSlots(dayEvents, member, in.AllMode, in.Location) {
			h := OwningHour(slot.StartMinutes, slot.EndMinutes)
			byHour[h] = append(byHour[h], slot)
		}
		for h := 0; h < 24; h++ {
			rows[h].Columns = append(rows[h].Columns, MemberColumn{
				Member: member,
				Busy:   len(byHour[h]) > 0,
				Slots:  byHour[h],
			})
		}
	}

	return DayGrid{
		Rows: rows,
		Now:  NowMarkerFor(in.Date, in.Now, in.Location),
	}
}

// OwningHour returns the single hour row that renders an event: the first
// hour h where the event overlaps [h*60, h*60+60) or starts inside it.
func OwningHour(startMinutes, endMinutes int) int {
	for h := 0; h < 24; h++ {
		if overlapsHour(startMinutes, endMinutes, h) {
			return h
		}
	}
	// Unreachable for startMinutes in 0-1439; clamp defensively anyway.
	h := startMinutes / 60
	if h < 0 {
		return 0
	}
	if h > 23 {
		return 23
	}
	return h
}

func overlapsHour(startMinutes, endMinutes, hour int) bool {
	hourStart := hour * 60
	hourEnd := hourStart + 60
	if startMinutes < hourEnd && endMinutes > hourStart {
		return true
	}
	return startMinutes >= hourStart && startMinutes < hourEnd
}

// NowMarkerFor computes the current-time indicator, or nil when now is not on
// the grid's date in loc.
func NowMarkerFor(date, now time.Time, loc *time.Location) *NowMarker {
	if !timeutil.SameLocalDay(date, now, loc) {
		return nil
	}
	minutes := timeutil.MinutesSinceMidnight(now, loc)
	return &NowMarker{
		Hour:       minutes / 60,
		TopPercent: float64(minutes%60) / 60 * 100,
	}
}

// filterDay restricts events to those starting on the target local calendar
// date.
func filterDay(events []model.Event, date time.Time, loc *time.Location) []model.Event {
	out := make([]model.Event, 0, len(events))
	for _, ev := range events {
		if timeutil.SameLocalDay(ev.Start.DateTime, date, loc) {
			out = append(out, ev)
		}
	}
	return out
}

// memberSlots selects the member's events and normalizes them to minutes
// since midnight, sorted by start (stable, ties keep fetch order). In all
// mode events belong to the member whose name matches the stamp; for a
// single-member fetch the stream is pre-filtered server-side and everything
// belongs to that member.
func memberSlots(events []model.Event, member model.Member, allMode bool, loc *time.Location) []Slot {
	slots := make([]Slot, 0, len(events))
	for _, ev := range events {
		if allMode && ev.MemberName != member.Name {
			continue
		}
		slots = append(slots, newSlot(ev, loc))
	}
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].StartMinutes < slots[j].StartMinutes
	})
	return slots
}

func newSlot(ev model.Event, loc *time.Location) Slot {
	start := timeutil.MinutesSinceMidnight(ev.Start.DateTime, loc)
	end := timeutil.MinutesSinceMidnight(ev.End.DateTime, loc)

	// Visible height is capped at the remainder of the owning hour; the
	// minutes model is bounded to one calendar day, so an event crossing
	// midnight yields a negative duration and renders invisibly.
	withinHour := start % 60
	visible := end - start
	if remaining := 60 - withinHour; visible > remaining {
		visible = remaining
	}

	return Slot{
		Event:           ev,
		StartMinutes:    start,
		EndMinutes:      end,
		DurationMinutes: end - start,
		TopPercent:      float64(withinHour) / 60 * 100,
		HeightPercent:   float64(visible) / 60 * 100,
		Category:        Classify(ev.Summary),
	}
}
