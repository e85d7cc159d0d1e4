package repository

import "time"

// AvailabilityOptions holds the parameters for an availability lookup.
type AvailabilityOptions struct {
	Timezone string    // IANA name, passed through to the backend
	Start    time.Time // week start, local midnight
	End      time.Time // end of day 7, 23:59:59.999 local
}
