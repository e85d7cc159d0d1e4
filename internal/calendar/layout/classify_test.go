package layout_test

import (
	"testing"

	"team-calendar/internal/calendar/layout"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		title string
		want  layout.Category
	}{
		{"Team Meeting", layout.CategoryMeeting},
		{"WEEKLY MEETING", layout.CategoryMeeting},
		{"Skills Assessment", layout.CategoryAssessment},
		{"Half Day PTO", layout.CategoryHalfDay},
		{"Onboarding Training", layout.CategoryTraining},
		{"Lunch", layout.CategoryDefault},
		{"", layout.CategoryDefault},
		// First match wins on the ordered rule list.
		{"Training meeting", layout.CategoryMeeting},
	}

	for _, tt := range tests {
		if got := layout.Classify(tt.title); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestKeywordColor(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Team Meeting", layout.ColorIndigo},
		{"Skills Assessment", layout.ColorPink},
		{"Proxy coverage", layout.ColorOrange},
		{"Resume review", layout.ColorTeal},
		{"Phone Interview", layout.ColorTeal},
		{"Lunch", layout.ColorIndigo},
		{"", layout.ColorIndigo},
	}

	for _, tt := range tests {
		if got := layout.KeywordColor(tt.title); got != tt.want {
			t.Errorf("KeywordColor(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
