package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// UntitledEvent is the display title for events with an empty summary.
const UntitledEvent = "Untitled Event"

// EventID is an event identifier that may arrive as a JSON string or number.
type EventID string

// UnmarshalJSON accepts either form and keeps the textual value.
func (id *EventID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = EventID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("event id is neither string nor number: %w", err)
	}
	*id = EventID(n.String())
	return nil
}

// EventTime wraps the nested {"dateTime": ...} timestamp shape used by the
// availability API.
type EventTime struct {
	DateTime time.Time `json:"dateTime"`
}

// Event is a normalized availability item. End is chronologically after Start
// by contract; the layout engine clamps rather than rejects violations.
type Event struct {
	ID      EventID   `json:"id"`
	Summary string    `json:"summary"`
	Start   EventTime `json:"start"`
	End     EventTime `json:"end"`

	// MemberName is stamped only on multi-member fetches.
	MemberName string `json:"memberName,omitempty"`
}

// Title returns the display title, substituting UntitledEvent for an empty
// summary.
func (e Event) Title() string {
	if e.Summary == "" {
		return UntitledEvent
	}
	return e.Summary
}
