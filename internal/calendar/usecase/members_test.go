package usecase

import (
	"context"
	"errors"
	"testing"

	"team-calendar/internal/model"
)

func TestMembers(t *testing.T) {
	ctx := context.Background()

	t.Run("roster is fetched once and cached", func(t *testing.T) {
		calls := 0
		repo := &mockRepo{
			listMembers: func(ctx context.Context) ([]model.Member, error) {
				calls++
				return testRoster, nil
			},
		}
		uc := New(noopLogger{}, repo, newLocations(t), "America/New_York")

		for i := 0; i < 3; i++ {
			out, err := uc.Members(ctx, model.Scope{})
			if err != nil {
				t.Fatalf("Members: %v", err)
			}
			if len(out.Members) != 2 {
				t.Fatalf("members = %d, want 2", len(out.Members))
			}
		}
		if calls != 1 {
			t.Errorf("roster fetched %d times, want 1", calls)
		}
	})

	t.Run("roster fetch failure surfaces", func(t *testing.T) {
		repo := &mockRepo{
			listMembers: func(ctx context.Context) ([]model.Member, error) {
				return nil, errors.New("backend down")
			},
		}
		uc := New(noopLogger{}, repo, newLocations(t), "America/New_York")

		if _, err := uc.Members(ctx, model.Scope{}); err == nil {
			t.Error("expected error when the roster fetch fails")
		}
	})
}

func TestRefreshMembers(t *testing.T) {
	ctx := context.Background()

	t.Run("updates the cached roster", func(t *testing.T) {
		roster := testRoster[:1]
		repo := &mockRepo{
			listMembers: func(ctx context.Context) ([]model.Member, error) {
				return roster, nil
			},
		}
		uc := New(noopLogger{}, repo, newLocations(t), "America/New_York")

		out, err := uc.Members(ctx, model.Scope{})
		if err != nil {
			t.Fatalf("Members: %v", err)
		}
		if len(out.Members) != 1 {
			t.Fatalf("members = %d, want 1", len(out.Members))
		}

		roster = testRoster
		if err := uc.RefreshMembers(ctx); err != nil {
			t.Fatalf("RefreshMembers: %v", err)
		}
		out, err = uc.Members(ctx, model.Scope{})
		if err != nil {
			t.Fatalf("Members: %v", err)
		}
		if len(out.Members) != 2 {
			t.Errorf("members after refresh = %d, want 2", len(out.Members))
		}
	})

	t.Run("failure keeps the previous roster", func(t *testing.T) {
		fail := false
		repo := &mockRepo{
			listMembers: func(ctx context.Context) ([]model.Member, error) {
				if fail {
					return nil, errors.New("backend down")
				}
				return testRoster, nil
			},
		}
		uc := New(noopLogger{}, repo, newLocations(t), "America/New_York")

		if _, err := uc.Members(ctx, model.Scope{}); err != nil {
			t.Fatalf("Members: %v", err)
		}

		fail = true
		if err := uc.RefreshMembers(ctx); err == nil {
			t.Error("expected refresh error")
		}
		out, err := uc.Members(ctx, model.Scope{})
		if err != nil {
			t.Fatalf("Members after failed refresh: %v", err)
		}
		if len(out.Members) != 2 {
			t.Errorf("members = %d, want the cached roster", len(out.Members))
		}
	})
}
