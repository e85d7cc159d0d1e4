package timeutil

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultZone is used when a requested timezone cannot be loaded.
const DefaultZone = "America/New_York"

// Locations resolves IANA timezone names to *time.Location with an LRU cache
// in front of time.LoadLocation. Every grouping and layout call resolves the
// active zone, so lookups are cached.
type Locations struct {
	cache *lru.Cache[string, *time.Location]
}

// NewLocations creates a Locations resolver with the given cache size.
func NewLocations(size int) (*Locations, error) {
	if size <= 0 {
		size = 32
	}
	cache, err := lru.New[string, *time.Location](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create location cache: %w", err)
	}
	return &Locations{cache: cache}, nil
}

// Get resolves an IANA timezone name.
func (l *Locations) Get(name string) (*time.Location, error) {
	if name == "" {
		return nil, fmt.Errorf("timezone name is empty")
	}
	if loc, ok := l.cache.Get(name); ok {
		return loc, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}
	l.cache.Add(name, loc)
	return loc, nil
}

// Resolve resolves a timezone name, falling back to DefaultZone and then UTC
// when the name cannot be loaded.
func (l *Locations) Resolve(name string) *time.Location {
	if loc, err := l.Get(name); err == nil {
		return loc
	}
	if loc, err := l.Get(DefaultZone); err == nil {
		return loc
	}
	return time.UTC
}
