package backend

import (
	"context"

	"team-calendar/internal/calendar/repository"
	"team-calendar/internal/model"
	pkgLog "team-calendar/pkg/log"
	"team-calendar/pkg/teamapi"
)

type implRepository struct {
	client *teamapi.Client
	l      pkgLog.Logger
}

// New creates a calendar repository backed by the team backend API.
func New(client *teamapi.Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) ListMembers(ctx context.Context) ([]model.Member, error) {
	apiMembers, err := r.client.Members(ctx)
	if err != nil {
		r.l.Errorf(ctx, "backend repository: failed to list members: %v", err)
		return nil, err
	}

	members := make([]model.Member, len(apiMembers))
	for i, m := range apiMembers {
		members[i] = model.Member{
			ID:    m.ID,
			Name:  m.Name,
			Email: m.Email,
		}
	}
	return members, nil
}

func (r *implRepository) ListAvailability(ctx context.Context, memberID int, opt repository.AvailabilityOptions) ([]model.Event, error) {
	apiEvents, err := r.client.Availability(ctx, memberID, teamapi.AvailabilityQuery{
		Timezone: opt.Timezone,
		Start:    opt.Start,
		End:      opt.End,
	})
	if err != nil {
		r.l.Errorf(ctx, "backend repository: failed to list availability for member %d: %v", memberID, err)
		return nil, err
	}

	events := make([]model.Event, len(apiEvents))
	for i, ev := range apiEvents {
		events[i] = model.Event{
			ID:      model.EventID(ev.ID),
			Summary: ev.Summary,
			Start:   model.EventTime{DateTime: ev.Start.DateTime},
			End:     model.EventTime{DateTime: ev.End.DateTime},
		}
	}
	return events, nil
}
