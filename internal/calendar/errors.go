package calendar

import "errors"

// Domain-specific errors for the calendar package.
var (
	ErrNoMemberSelected = errors.New("no member selected")
	ErrUnknownMember    = errors.New("member not found in roster")
	ErrInvalidTimezone  = errors.New("invalid timezone name")
	ErrInvalidDirection = errors.New("direction must be next or prev")
	ErrInvalidDate      = errors.New("invalid date")
	ErrNoDayOpen        = errors.New("no day view is open")
)
