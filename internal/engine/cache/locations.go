package cache

import (
	"context"
	"errors"
	"sync"

	"go.trai.ch/gitgeo/internal/core/domain"
	"go.trai.ch/gitgeo/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Locations caches the profile location of each contributor.
// An absent location is a cached fact, not a miss.
type Locations struct {
	store   ports.LocationStore
	fetcher ports.LocationFetcher
	group   singleflight.Group

	mu      sync.Mutex
	entries map[string]*string
}

// OpenLocations loads the mapping held by store.
// A store that cannot be read is fatal for the run.
func OpenLocations(store ports.LocationStore, fetcher ports.LocationFetcher) (*Locations, error) {
	entries, err := store.Load()
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = make(map[string]*string)
	}

	return &Locations{
		store:   store,
		fetcher: fetcher,
		entries: entries,
	}, nil
}

// Location returns the location of contributor, fetching and persisting it on a miss.
// Concurrent misses for the same contributor share one fetch.
func (l *Locations) Location(ctx context.Context, contributor domain.ContributorRef) (domain.Location, error) {
	key := contributor.String()

	if loc, ok := l.lookup(key); ok {
		return loc, nil
	}

	v, err, _ := l.group.Do(key, func() (any, error) {
		// Another caller may have filled the entry while we waited.
		if loc, ok := l.lookup(key); ok {
			return loc, nil
		}

		loc, err := l.fetcher.FetchLocation(ctx, contributor)
		if err != nil {
			if errors.Is(err, domain.ErrFetchFailed) {
				return nil, err
			}
			return nil, errors.Join(domain.ErrFetchFailed, zerr.With(err, "contributor", key))
		}

		if err := l.put(key, loc); err != nil {
			return nil, err
		}
		return loc, nil
	})
	if err != nil {
		return domain.NoLocation, err
	}

	loc, _ := v.(domain.Location)
	return loc, nil
}

// Len returns the number of cached contributors.
func (l *Locations) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *Locations) lookup(key string) (domain.Location, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	value, ok := l.entries[key]
	if !ok {
		return domain.NoLocation, false
	}
	if value == nil {
		return domain.NoLocation, true
	}
	return domain.DeclaredLocation(*value), true
}

func (l *Locations) put(key string, loc domain.Location) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var value *string
	if loc.Declared {
		name := loc.Name
		value = &name
	}

	l.entries[key] = value
	if err := l.store.Save(l.entries); err != nil {
		delete(l.entries, key)
		if errors.Is(err, domain.ErrCacheIO) {
			return err
		}
		return errors.Join(domain.ErrCacheIO, err)
	}
	return nil
}
