package timeutil_test

import (
	"testing"
	"time"

	"team-calendar/pkg/timeutil"
)

func TestLocations(t *testing.T) {
	locs, err := timeutil.NewLocations(4)
	if err != nil {
		t.Fatalf("NewLocations: %v", err)
	}

	t.Run("Get caches", func(t *testing.T) {
		first, err := locs.Get("America/Chicago")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		second, err := locs.Get("America/Chicago")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if first != second {
			t.Error("expected cached *time.Location to be reused")
		}
	})

	t.Run("Get rejects unknown zone", func(t *testing.T) {
		if _, err := locs.Get("Not/AZone"); err == nil {
			t.Error("expected error for unknown zone")
		}
	})

	t.Run("Get rejects empty name", func(t *testing.T) {
		if _, err := locs.Get(""); err == nil {
			t.Error("expected error for empty name")
		}
	})

	t.Run("Resolve falls back to default zone", func(t *testing.T) {
		loc := locs.Resolve("Not/AZone")
		if loc.String() != timeutil.DefaultZone {
			t.Errorf("Resolve fallback = %v, want %v", loc, timeutil.DefaultZone)
		}
	})

	t.Run("Resolve passes through valid zone", func(t *testing.T) {
		loc := locs.Resolve("UTC")
		if loc != time.UTC {
			t.Errorf("Resolve(UTC) = %v", loc)
		}
	})
}
