package timeutil

import "time"

// DayMinutes is the number of minutes in one calendar day.
const DayMinutes = 24 * 60

// StartOfWeek returns the most recent Sunday at local midnight in loc for the
// given instant. A Sunday input maps to that same day's midnight.
func StartOfWeek(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// AdvanceWeek shifts a week start by the given number of weeks. Negative
// values page backwards. No bounds are applied.
func AdvanceWeek(weekStart time.Time, weeks int) time.Time {
	return weekStart.AddDate(0, 0, 7*weeks)
}

// WeekDates returns the 7 concrete dates of the week beginning at weekStart.
func WeekDates(weekStart time.Time) []time.Time {
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = weekStart.AddDate(0, 0, i)
	}
	return dates
}

// EndOfWeek returns day 7 of the week at 23:59:59.999 local time.
func EndOfWeek(weekStart time.Time) time.Time {
	last := weekStart.AddDate(0, 0, 6)
	return time.Date(last.Year(), last.Month(), last.Day(), 23, 59, 59, 999e6, last.Location())
}

// RangeLabel formats a week range like "Jun 1 - Jun 7, 2025" in loc.
func RangeLabel(weekStart time.Time, loc *time.Location) string {
	start := weekStart.In(loc)
	end := weekStart.AddDate(0, 0, 6).In(loc)
	return start.Format("Jan 2") + " - " + end.Format("Jan 2, 2006")
}

// MinutesSinceMidnight returns minutes since local midnight (0-1439) in loc.
func MinutesSinceMidnight(t time.Time, loc *time.Location) int {
	local := t.In(loc)
	return local.Hour()*60 + local.Minute()
}

// SameLocalDay reports whether two instants fall on the same calendar date
// in loc.
func SameLocalDay(a, b time.Time, loc *time.Location) bool {
	al, bl := a.In(loc), b.In(loc)
	ay, am, ad := al.Date()
	by, bm, bd := bl.Date()
	return ay == by && am == bm && ad == bd
}
