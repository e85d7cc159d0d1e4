package model_test

import (
	"encoding/json"
	"testing"

	"team-calendar/internal/model"
)

func TestEventIDUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want model.EventID
	}{
		{"string id", `{"id":"evt_123"}`, "evt_123"},
		{"numeric id", `{"id":42}`, "42"},
		{"null id", `{"id":null}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ev model.Event
			if err := json.Unmarshal([]byte(tt.in), &ev); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if ev.ID != tt.want {
				t.Errorf("id = %q, want %q", ev.ID, tt.want)
			}
		})
	}

	t.Run("rejects object id", func(t *testing.T) {
		var ev model.Event
		if err := json.Unmarshal([]byte(`{"id":{"x":1}}`), &ev); err == nil {
			t.Error("expected error for object id")
		}
	})
}

func TestEventTitle(t *testing.T) {
	if got := (model.Event{Summary: "Team Meeting"}).Title(); got != "Team Meeting" {
		t.Errorf("Title = %q", got)
	}
	if got := (model.Event{}).Title(); got != model.UntitledEvent {
		t.Errorf("empty summary Title = %q, want %q", got, model.UntitledEvent)
	}
}

func TestMemberColor(t *testing.T) {
	tests := []struct {
		id   int
		hue  int
		want string
	}{
		{1, 60, "hsl(60, 70%, 60%)"},
		{3, 180, "hsl(180, 70%, 60%)"},
		{6, 0, "hsl(0, 70%, 60%)"}, // hue wraps mod 360
		{7, 60, "hsl(60, 70%, 60%)"},
	}
	for _, tt := range tests {
		m := model.Member{ID: tt.id}
		if m.Hue() != tt.hue {
			t.Errorf("Hue(%d) = %d, want %d", tt.id, m.Hue(), tt.hue)
		}
		if m.Color() != tt.want {
			t.Errorf("Color(%d) = %q, want %q", tt.id, m.Color(), tt.want)
		}
	}
}

func TestMemberInitial(t *testing.T) {
	if got := (model.Member{Name: "alice"}).Initial(); got != "A" {
		t.Errorf("Initial = %q, want A", got)
	}
	if got := (model.Member{}).Initial(); got != "" {
		t.Errorf("Initial of empty name = %q", got)
	}
}
