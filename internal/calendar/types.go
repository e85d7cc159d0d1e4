package calendar

import (
	"time"

	"team-calendar/internal/calendar/layout"
	"team-calendar/internal/model"
)

// Direction pages the week navigator.
type Direction string

const (
	DirectionNext Direction = "next"
	DirectionPrev Direction = "prev"
)

// WeekViewInput optionally retargets the view before fetching. Empty fields
// keep the current view state.
type WeekViewInput struct {
	Selector string // member id or "all"
	Timezone string // IANA name
}

// DayBucket is one calendar day of the week grid. Label is the formatted day
// key; Events keeps fetch order.
type DayBucket struct {
	Label  string
	Date   time.Time
	Events []model.Event
}

// WeekViewOutput is the grouped week grid.
type WeekViewOutput struct {
	Selector   string
	Timezone   string
	WeekStart  time.Time
	Dates      []time.Time
	RangeLabel string
	Days       []DayBucket

	// FailedMembers lists roster members whose availability slice failed and
	// degraded to empty. The rest of the view is still usable.
	FailedMembers []string
}

// AdvanceInput pages the active week.
type AdvanceInput struct {
	Direction Direction
}

// DayViewInput opens the day detail for one of the loaded week's dates.
type DayViewInput struct {
	Date string // "2006-01-02" in the active timezone
}

// DayViewOutput is the hour-by-hour availability view for one day.
type DayViewOutput struct {
	Date     time.Time
	Label    string // e.g. "Monday, June 3, 2024"
	Timezone string
	Members  []model.Member
	Grid     layout.DayGrid
}

// MembersOutput is the dashboard roster.
type MembersOutput struct {
	Members []model.Member
}
