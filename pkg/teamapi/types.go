package teamapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// User is the session user returned by GET /api/me.
type User struct {
	Email     string `json:"email"`
	HasTokens bool   `json:"hasTokens"`
}

// Member is a directory entry from GET /api/members.
type Member struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ID is an event identifier that may be a JSON string or number on the wire.
type ID string

// UnmarshalJSON accepts both forms.
func (id *ID) UnmarshalJSON(data []byte) error {
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
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("event id is neither string nor number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// EventTime is the nested {"dateTime": ...} timestamp shape.
type EventTime struct {
	DateTime time.Time `json:"dateTime"`
}

// Event is one availability item from GET /api/availability/:memberId.
type Event struct {
	ID      ID        `json:"id"`
	Summary string    `json:"summary"`
	Start   EventTime `json:"start"`
	End     EventTime `json:"end"`
}

// AvailabilityQuery is the query string for an availability request.
type AvailabilityQuery struct {
	Timezone string    // IANA name, passed through to the backend
	Start    time.Time // week start, local midnight
	End      time.Time // end of day 7, 23:59:59.999 local
}
