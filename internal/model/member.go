package model

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Member is a schedulable team member from the directory. Immutable for the
// session.
type Member struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Hue derives the member's display hue from the id. Not stored; computed on
// demand.
func (m Member) Hue() int {
	return (m.ID * 60) % 360
}

// Color returns the member's deterministic avatar color as a CSS hsl value.
func (m Member) Color() string {
	return fmt.Sprintf("hsl(%d, 70%%, 60%%)", m.Hue())
}

// Initial returns the upper-cased first rune of the member name, for avatar
// rendering.
func (m Member) Initial() string {
	if m.Name == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(m.Name)
	return strings.ToUpper(string(r))
}
