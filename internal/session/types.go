package session

import "team-calendar/internal/model"

// MeOutput is the session check result. User is nil when unauthenticated.
type MeOutput struct {
	User         *model.User
	Timezone     string
	TimezoneAbbr string
}
