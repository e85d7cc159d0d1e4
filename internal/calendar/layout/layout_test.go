package layout_test

import (
	"math"
	"testing"
	"time"

	"team-calendar/internal/calendar/layout"
	"team-calendar/internal/model"
)

var ny *time.Location

func init() {
	var err error
	ny, err = time.LoadLocation("America/New_York")
	if err != nil {
		panic(err)
	}
}

func utcEvent(id, summary, start, end string) model.Event {
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		panic(err)
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		panic(err)
	}
	return model.Event{
		ID:      model.EventID(id),
		Summary: summary,
		Start:   model.EventTime{DateTime: s},
		End:     model.EventTime{DateTime: e},
	}
}

func approx(got, want float64) bool {
	return math.Abs(got-want) < 0.01
}

func TestBuildDayGridSingleEvent(t *testing.T) {
	// 13:00-13:30 UTC on 2024-06-03 is 09:00-09:30 in New York.
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, ny)
	member := model.Member{ID: 1, Name: "Alice"}

	grid := layout.BuildDayGrid(layout.Input{
		Date:     date,
		Events:   []model.Event{utcEvent("e1", "Morning Sync", "2024-06-03T13:00:00Z", "2024-06-03T13:30:00Z")},
		Members:  []model.Member{member},
		AllMode:  false,
		Location: ny,
		Now:      time.Date(2024, 6, 10, 12, 0, 0, 0, ny), // a different day
	})

	if len(grid.Rows) != 24 {
		t.Fatalf("expected 24 rows, got %d", len(grid.Rows))
	}
	if grid.Now != nil {
		t.Error("now marker should be nil on a non-today date")
	}

	for h, row := range grid.Rows {
		col := row.Columns[0]
		if h == 9 {
			if !col.Busy || len(col.Slots) != 1 {
				t.Fatalf("hour 9 should hold the event, got busy=%v slots=%d", col.Busy, len(col.Slots))
			}
			slot := col.Slots[0]
			if slot.StartMinutes != 540 {
				t.Errorf("startMinutes = %d, want 540", slot.StartMinutes)
			}
			if slot.DurationMinutes != 30 {
				t.Errorf("durationMinutes = %d, want 30", slot.DurationMinutes)
			}
			if !approx(slot.TopPercent, 0) {
				t.Errorf("topPercent = %v, want 0", slot.TopPercent)
			}
			if !approx(slot.HeightPercent, 50) {
				t.Errorf("heightPercent = %v, want 50", slot.HeightPercent)
			}
		} else if col.Busy || len(col.Slots) != 0 {
			t.Errorf("hour %d should be empty", h)
		}
	}
}

func TestEventRendersExactlyOnce(t *testing.T) {
	// A 3-hour event overlaps rows 9, 10, 11 but must render only in row 9.
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, ny)
	member := model.Member{ID: 1, Name: "Alice"}

	grid := layout.BuildDayGrid(layout.Input{
		Date:     date,
		Events:   []model.Event{utcEvent("e1", "Training Block", "2024-06-03T13:15:00Z", "2024-06-03T16:15:00Z")},
		Members:  []model.Member{member},
		Location: ny,
		Now:      time.Date(2024, 6, 10, 12, 0, 0, 0, ny),
	})

	total := 0
	for _, row := range grid.Rows {
		total += len(row.Columns[0].Slots)
	}
	if total != 1 {
		t.Fatalf("event rendered %d times, want exactly 1", total)
	}

	slot := grid.Rows[9].Columns[0].Slots[0]
	if slot.DurationMinutes != 180 {
		t.Errorf("durationMinutes = %d, want 180", slot.DurationMinutes)
	}
	// Height clamps to the remainder of the first hour: 45 of 60 minutes.
	if !approx(slot.HeightPercent, 75) {
		t.Errorf("heightPercent = %v, want 75", slot.HeightPercent)
	}
	if !approx(slot.TopPercent, 25) {
		t.Errorf("topPercent = %v, want 25", slot.TopPercent)
	}
}

func TestHourBoundaryBelongsToThatHour(t *testing.T) {
	if got := layout.OwningHour(600, 660); got != 10 {
		t.Errorf("event starting exactly at 10:00 owns hour %d, want 10", got)
	}
	if got := layout.OwningHour(599, 660); got != 9 {
		t.Errorf("event starting 09:59 owns hour %d, want 9", got)
	}
	if got := layout.OwningHour(0, 30); got != 0 {
		t.Errorf("midnight event owns hour %d, want 0", got)
	}
	if got := layout.OwningHour(1439, 1439); got != 23 {
		t.Errorf("last-minute zero-length event owns hour %d, want 23", got)
	}
}

func TestAllModePartitionsByMemberName(t *testing.T) {
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, ny)
	alice := model.Member{ID: 1, Name: "Alice"}
	bob := model.Member{ID: 2, Name: "Bob"}

	meeting := utcEvent("e1", "Team Meeting", "2024-06-03T14:00:00Z", "2024-06-03T14:30:00Z") // 10:00-10:30 NY
	meeting.MemberName = "Alice"

	grid := layout.BuildDayGrid(layout.Input{
		Date:     date,
		Events:   []model.Event{meeting},
		Members:  []model.Member{alice, bob},
		AllMode:  true,
		Location: ny,
		Now:      time.Date(2024, 6, 10, 12, 0, 0, 0, ny),
	})

	row := grid.Rows[10]
	if len(row.Columns) != 2 {
		t.Fatalf("expected 2 member columns, got %d", len(row.Columns))
	}

	aliceCol, bobCol := row.Columns[0], row.Columns[1]
	if !aliceCol.Busy {
		t.Error("Alice should be busy at hour 10")
	}
	if aliceCol.Slots[0].Category != layout.CategoryMeeting {
		t.Errorf("category = %q, want meeting", aliceCol.Slots[0].Category)
	}
	if bobCol.Busy || len(bobCol.Slots) != 0 {
		t.Error("Bob should be available at hour 10")
	}
}

func TestSingleModeKeepsAllDayEvents(t *testing.T) {
	// Single-member streams are pre-filtered server-side: no name stamp, and
	// everything belongs to the one member.
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, ny)
	member := model.Member{ID: 1, Name: "Alice"}

	grid := layout.BuildDayGrid(layout.Input{
		Date: date,
		Events: []model.Event{
			utcEvent("e1", "One", "2024-06-03T13:00:00Z", "2024-06-03T13:30:00Z"),
			utcEvent("e2", "Two", "2024-06-03T18:00:00Z", "2024-06-03T19:00:00Z"),
		},
		Members:  []model.Member{member},
		AllMode:  false,
		Location: ny,
		Now:      time.Date(2024, 6, 10, 12, 0, 0, 0, ny),
	})

	busy := 0
	for _, row := range grid.Rows {
		if row.Columns[0].Busy {
			busy++
		}
	}
	if busy != 2 {
		t.Errorf("expected 2 busy hours, got %d", busy)
	}
}

func TestFilterToTargetDay(t *testing.T) {
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, ny)
	member := model.Member{ID: 1, Name: "Alice"}

	grid := layout.BuildDayGrid(layout.Input{
		Date: date,
		Events: []model.Event{
			utcEvent("e1", "Today", "2024-06-03T13:00:00Z", "2024-06-03T13:30:00Z"),
			utcEvent("e2", "Tomorrow", "2024-06-04T13:00:00Z", "2024-06-04T13:30:00Z"),
			// 2024-06-03T02:00Z is still June 2nd in New York.
			utcEvent("e3", "Yesterday NY", "2024-06-03T02:00:00Z", "2024-06-03T03:00:00Z"),
		},
		Members:  []model.Member{member},
		Location: ny,
		Now:      time.Date(2024, 6, 10, 12, 0, 0, 0, ny),
	})

	total := 0
	for _, row := range grid.Rows {
		total += len(row.Columns[0].Slots)
	}
	if total != 1 {
		t.Errorf("expected only the June 3rd event, got %d slots", total)
	}
}

func TestNowMarker(t *testing.T) {
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, ny)

	t.Run("present at 14:23", func(t *testing.T) {
		now := time.Date(2024, 6, 3, 14, 23, 0, 0, ny)
		marker := layout.NowMarkerFor(date, now, ny)
		if marker == nil {
			t.Fatal("expected a marker on today's grid")
		}
		if marker.Hour != 14 {
			t.Errorf("marker hour = %d, want 14", marker.Hour)
		}
		if !approx(marker.TopPercent, 38.33) {
			t.Errorf("marker top = %v, want 38.33", marker.TopPercent)
		}
	})

	t.Run("absent on another day", func(t *testing.T) {
		now := time.Date(2024, 6, 4, 14, 23, 0, 0, ny)
		if layout.NowMarkerFor(date, now, ny) != nil {
			t.Error("marker should be nil when now is not on the grid date")
		}
	})

	t.Run("timezone decides the date", func(t *testing.T) {
		// 2024-06-04T02:00Z is June 3rd 22:00 in New York.
		now := time.Date(2024, 6, 4, 2, 0, 0, 0, time.UTC)
		marker := layout.NowMarkerFor(date, now, ny)
		if marker == nil {
			t.Fatal("expected marker: still June 3rd in New York")
		}
		if marker.Hour != 22 {
			t.Errorf("marker hour = %d, want 22", marker.Hour)
		}
	})
}

func TestWithinHourOrderIsStableByStart(t *testing.T) {
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, ny)
	member := model.Member{ID: 1, Name: "Alice"}

	grid := layout.BuildDayGrid(layout.Input{
		Date: date,
		Events: []model.Event{
			utcEvent("late", "Second", "2024-06-03T13:40:00Z", "2024-06-03T13:50:00Z"),
			utcEvent("early", "First", "2024-06-03T13:05:00Z", "2024-06-03T13:15:00Z"),
		},
		Members:  []model.Member{member},
		Location: ny,
		Now:      time.Date(2024, 6, 10, 12, 0, 0, 0, ny),
	})

	slots := grid.Rows[9].Columns[0].Slots
	if len(slots) != 2 {
		t.Fatalf("expected both events in hour 9, got %d", len(slots))
	}
	if slots[0].Event.ID != "early" || slots[1].Event.ID != "late" {
		t.Errorf("slots not sorted by start: %q, %q", slots[0].Event.ID, slots[1].Event.ID)
	}
}

func TestNegativeDurationRendersInvisibly(t *testing.T) {
	// End before start (e.g. a midnight-crossing event normalized against the
	// wrong day) is clamped by the display math, not rejected.
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, ny)
	member := model.Member{ID: 1, Name: "Alice"}

	grid := layout.BuildDayGrid(layout.Input{
		Date:     date,
		Events:   []model.Event{utcEvent("e1", "Crossover", "2024-06-03T23:00:00Z", "2024-06-03T13:00:00Z")},
		Members:  []model.Member{member},
		Location: ny,
		Now:      time.Date(2024, 6, 10, 12, 0, 0, 0, ny),
	})

	var slot *layout.Slot
	for _, row := range grid.Rows {
		if len(row.Columns[0].Slots) > 0 {
			s := row.Columns[0].Slots[0]
			slot = &s
		}
	}
	if slot == nil {
		t.Fatal("event should still be placed in its owning hour")
	}
	if slot.DurationMinutes >= 0 {
		t.Errorf("durationMinutes = %d, expected negative", slot.DurationMinutes)
	}
	if slot.HeightPercent >= 0 {
		t.Errorf("heightPercent = %v, expected non-positive (invisible)", slot.HeightPercent)
	}
}
