package http

import (
	"team-calendar/internal/calendar"
	pkgErrors "team-calendar/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case calendar.ErrNoMemberSelected:
		return pkgErrors.NewHTTPError(400, "no member selected")
	case calendar.ErrUnknownMember:
		return pkgErrors.NewHTTPError(404, "member not found")
	case calendar.ErrInvalidTimezone:
		return pkgErrors.NewHTTPError(400, "invalid timezone")
	case calendar.ErrInvalidDirection:
		return pkgErrors.NewHTTPError(400, "direction must be next or prev")
	case calendar.ErrInvalidDate:
		return pkgErrors.NewHTTPError(400, "date must be YYYY-MM-DD")
	case calendar.ErrNoDayOpen:
		return pkgErrors.NewHTTPError(404, "no day view is open")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
