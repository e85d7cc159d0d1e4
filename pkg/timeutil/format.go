package timeutil

import (
	"strings"
	"time"
)

// Clock formats an instant as a 12-hour clock time in loc, e.g. "09:00 AM".
func Clock(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("03:04 PM")
}

// ClockCompact is Clock without the space, e.g. "09:00AM". Used in the day
// detail view where slots are narrow.
func ClockCompact(t time.Time, loc *time.Location) string {
	return strings.ReplaceAll(Clock(t, loc), " ", "")
}

// HourLabel formats an hour-of-day (0-23) as "12AM", "9AM", "12PM", "11PM".
func HourLabel(hour int) string {
	t := time.Date(2000, 1, 1, hour, 0, 0, 0, time.UTC)
	return t.Format("3PM")
}

// DayLabel formats a date as "Monday Jun 3" in loc. Used as the bucket key
// for day grouping; not stable across timezone changes.
func DayLabel(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Monday Jan 2")
}

// LongDayLabel formats a date as "Monday, June 3, 2024" in loc. Used as the
// day detail heading.
func LongDayLabel(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Monday, January 2, 2006")
}

// ZoneAbbr returns the timezone abbreviation currently in effect in loc,
// e.g. "EST" or "EDT" depending on the date.
func ZoneAbbr(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("MST")
}
