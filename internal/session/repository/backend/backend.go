package backend

import (
	"context"

	"team-calendar/internal/model"
	"team-calendar/internal/session/repository"
	pkgLog "team-calendar/pkg/log"
	"team-calendar/pkg/teamapi"
)

type implRepository struct {
	client *teamapi.Client
	l      pkgLog.Logger
}

// New creates a session repository backed by the team backend API.
func New(client *teamapi.Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) CurrentUser(ctx context.Context) (*model.User, error) {
	apiUser, err := r.client.Me(ctx)
	if err != nil {
		r.l.Errorf(ctx, "backend repository: session check failed: %v", err)
		return nil, err
	}
	if apiUser == nil {
		return nil, nil
	}
	return &model.User{
		Email:     apiUser.Email,
		HasTokens: apiUser.HasTokens,
	}, nil
}

func (r *implRepository) Logout(ctx context.Context) error {
	if err := r.client.Logout(ctx); err != nil {
		r.l.Errorf(ctx, "backend repository: logout failed: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) LoginURL() string {
	return r.client.LoginURL()
}
