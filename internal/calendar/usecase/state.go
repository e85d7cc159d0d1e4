package usecase

import (
	"sync"
	"time"

	"team-calendar/internal/calendar/layout"
	"team-calendar/internal/model"
)

// viewState is the single explicit application-state object for the calendar
// view: selector, timezone, week start, roster and the last fetched snapshot.
// All access goes through the mutex; fetches are tagged with a generation so
// a stale completion never overwrites a newer one.
type viewState struct {
	mu sync.Mutex

	selector  string // member id string or "all"; empty until selected
	timezone  string
	loc       *time.Location
	weekStart time.Time // always a Sunday at local midnight in loc

	gen     uint64
	loading bool
	events  []model.Event
	failed  []string
	fetched bool

	roster []model.Member

	day *dayView
}

// dayView is the open day detail: its grid is refreshed in place by the
// minute ticker until the view closes.
type dayView struct {
	date    time.Time
	members []model.Member
	grid    layout.DayGrid
	ticker  *time.Ticker
	done    chan struct{}
}

// beginFetch marks a new in-flight fetch and returns its generation token
// along with the inputs it should use.
func (s *viewState) beginFetch() (gen uint64, selector, timezone string, loc *time.Location, weekStart time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.loading = true
	return s.gen, s.selector, s.timezone, s.loc, s.weekStart
}

// commit stores a fetch result unless a newer fetch superseded it. It
// reports whether the result was accepted.
func (s *viewState) commit(gen uint64, events []model.Event, failed []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	s.loading = false
	s.events = events
	s.failed = failed
	s.fetched = true
	return true
}

// snapshot returns the last committed result.
func (s *viewState) snapshot() (events []model.Event, failed []string, fetched bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events, s.failed, s.fetched
}

// closeDayLocked stops the open day view's refresher. Caller holds mu.
func (s *viewState) closeDayLocked() {
	if s.day == nil {
		return
	}
	s.day.ticker.Stop()
	close(s.day.done)
	s.day = nil
}
