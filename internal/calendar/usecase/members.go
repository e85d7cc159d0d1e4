package usecase

import (
	"context"
	"strconv"

	"team-calendar/internal/calendar"
	"team-calendar/internal/model"
)

// Members returns the roster for the dashboard, fetching it on first use.
func (uc *implUseCase) Members(ctx context.Context, sc model.Scope) (calendar.MembersOutput, error) {
	roster, err := uc.ensureRoster(ctx)
	if err != nil {
		return calendar.MembersOutput{}, err
	}
	return calendar.MembersOutput{Members: roster}, nil
}

func intToSelector(id int) string {
	return strconv.Itoa(id)
}
