package http

import (
	"time"

	"team-calendar/internal/calendar"
	"team-calendar/internal/calendar/layout"
	"team-calendar/internal/model"
	"team-calendar/pkg/timeutil"
)

// --- Request DTOs ---

type weekReq struct {
	Selector string `form:"selector"`
	Timezone string `form:"timezone"`
}

func (r weekReq) toInput() calendar.WeekViewInput {
	return calendar.WeekViewInput{
		Selector: r.Selector,
		Timezone: r.Timezone,
	}
}

type advanceReq struct {
	Direction string `json:"direction" binding:"required"`
}

func (r advanceReq) toInput() calendar.AdvanceInput {
	return calendar.AdvanceInput{
		Direction: calendar.Direction(r.Direction),
	}
}

type openDayReq struct {
	Date string `json:"date" binding:"required"`
}

func (r openDayReq) toInput() calendar.DayViewInput {
	return calendar.DayViewInput{
		Date: r.Date,
	}
}

// --- Response DTOs ---

type memberResp struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Color   string `json:"color"`
	Initial string `json:"initial"`
}

func newMemberResp(m model.Member) memberResp {
	return memberResp{
		ID:      m.ID,
		Name:    m.Name,
		Email:   m.Email,
		Color:   m.Color(),
		Initial: m.Initial(),
	}
}

type membersResp struct {
	Members []memberResp `json:"members"`
}

func (h *handler) newMembersResp(out calendar.MembersOutput) membersResp {
	members := make([]memberResp, len(out.Members))
	for i, m := range out.Members {
		members[i] = newMemberResp(m)
	}
	return membersResp{Members: members}
}

type eventResp struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Start      string `json:"start"` // "09:00 AM"
	End        string `json:"end"`
	Color      string `json:"color"`
	MemberName string `json:"memberName,omitempty"`
}

func newEventResp(ev model.Event, loc *time.Location) eventResp {
	return eventResp{
		ID:         string(ev.ID),
		Title:      ev.Title(),
		Start:      timeutil.Clock(ev.Start.DateTime, loc),
		End:        timeutil.Clock(ev.End.DateTime, loc),
		Color:      layout.KeywordColor(ev.Summary),
		MemberName: ev.MemberName,
	}
}

type dayBucketResp struct {
	Label  string      `json:"label"`
	Date   string      `json:"date"` // "2006-01-02"
	Events []eventResp `json:"events"`
}

type weekResp struct {
	Selector      string          `json:"selector"`
	Timezone      string          `json:"timezone"`
	WeekStart     string          `json:"weekStart"` // "2006-01-02"
	RangeLabel    string          `json:"rangeLabel"`
	Days          []dayBucketResp `json:"days"`
	FailedMembers []string        `json:"failedMembers"`
}

func (h *handler) newWeekResp(out calendar.WeekViewOutput) weekResp {
	loc := out.WeekStart.Location()

	days := make([]dayBucketResp, len(out.Days))
	for i, day := range out.Days {
		events := make([]eventResp, len(day.Events))
		for j, ev := range day.Events {
			events[j] = newEventResp(ev, loc)
		}
		days[i] = dayBucketResp{
			Label:  day.Label,
			Date:   day.Date.Format("2006-01-02"),
			Events: events,
		}
	}

	failed := out.FailedMembers
	if failed == nil {
		failed = []string{}
	}
	return weekResp{
		Selector:      out.Selector,
		Timezone:      out.Timezone,
		WeekStart:     out.WeekStart.Format("2006-01-02"),
		RangeLabel:    out.RangeLabel,
		Days:          days,
		FailedMembers: failed,
	}
}

type slotResp struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Start         string  `json:"start"` // "9:00AM" style compact clock
	End           string  `json:"end"`
	TopPercent    float64 `json:"topPercent"`
	HeightPercent float64 `json:"heightPercent"`
	Category      string  `json:"category"`
	Color         string  `json:"color"`
}

func newSlotResp(s layout.Slot, loc *time.Location) slotResp {
	return slotResp{
		ID:            string(s.Event.ID),
		Title:         s.Event.Title(),
		Start:         timeutil.ClockCompact(s.Event.Start.DateTime, loc),
		End:           timeutil.ClockCompact(s.Event.End.DateTime, loc),
		TopPercent:    s.TopPercent,
		HeightPercent: s.HeightPercent,
		Category:      string(s.Category),
		Color:         layout.KeywordColor(s.Event.Summary),
	}
}

type columnResp struct {
	Member memberResp `json:"member"`
	Busy   bool       `json:"busy"`
	Slots  []slotResp `json:"slots"`
}

type hourRowResp struct {
	Hour    int          `json:"hour"`
	Label   string       `json:"label"`
	Columns []columnResp `json:"columns"`
}

type nowMarkerResp struct {
	Hour       int     `json:"hour"`
	TopPercent float64 `json:"topPercent"`
}

type dayResp struct {
	Date     string         `json:"date"` // "2006-01-02"
	Label    string         `json:"label"`
	Timezone string         `json:"timezone"`
	Members  []memberResp   `json:"members"`
	Rows     []hourRowResp  `json:"rows"`
	Now      *nowMarkerResp `json:"now,omitempty"`
}

func (h *handler) newDayResp(out calendar.DayViewOutput) dayResp {
	loc := out.Date.Location()

	members := make([]memberResp, len(out.Members))
	for i, m := range out.Members {
		members[i] = newMemberResp(m)
	}

	rows := make([]hourRowResp, len(out.Grid.Rows))
	for i, row := range out.Grid.Rows {
		columns := make([]columnResp, len(row.Columns))
		for j, col := range row.Columns {
			slots := make([]slotResp, len(col.Slots))
			for k, s := range col.Slots {
				slots[k] = newSlotResp(s, loc)
			}
			columns[j] = columnResp{
				Member: newMemberResp(col.Member),
				Busy:   col.Busy,
				Slots:  slots,
			}
		}
		rows[i] = hourRowResp{
			Hour:    row.Hour,
			Label:   row.Label,
			Columns: columns,
		}
	}

	var now *nowMarkerResp
	if out.Grid.Now != nil {
		now = &nowMarkerResp{
			Hour:       out.Grid.Now.Hour,
			TopPercent: out.Grid.Now.TopPercent,
		}
	}
	return dayResp{
		Date:     out.Date.Format("2006-01-02"),
		Label:    out.Label,
		Timezone: out.Timezone,
		Members:  members,
		Rows:     rows,
		Now:      now,
	}
}
