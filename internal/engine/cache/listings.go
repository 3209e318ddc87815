// Package cache implements the fetch-or-reuse caches in front of the remote
// listing and profile services.
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

// Listings caches the contributor list of each repository.
// An entry, once stored, is returned as-is for the lifetime of the backing file.
type Listings struct {
	store  ports.ListingStore
	lister ports.ContributorLister
	group  singleflight.Group

	mu      sync.Mutex
	entries map[string][]string
}

// OpenListings loads the mapping held by store.
// A store that cannot be read is fatal for the run.
func OpenListings(store ports.ListingStore, lister ports.ContributorLister) (*Listings, error) {
	entries, err := store.Load()
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = make(map[string][]string)
	}

	return &Listings{
		store:   store,
		lister:  lister,
		entries: entries,
	}, nil
}

// Contributors returns the contributors of ref.
//
// A cached entry is returned unchanged whatever its length; enforcing limit
// on a cached list is the caller's job. On a miss the lister is asked for up
// to limit contributors and the result is stored and persisted before it is
// returned. A zero limit never reaches the lister and stores nothing.
// Concurrent misses for the same repository share one fetch.
func (l *Listings) Contributors(
	ctx context.Context,
	ref domain.RepositoryRef,
	limit int,
) ([]domain.ContributorRef, error) {
	key := ref.String()

	if cached, ok := l.lookup(key); ok {
		return toContributors(cached), nil
	}

	if limit <= 0 {
		return nil, nil
	}

	v, err, _ := l.group.Do(key, func() (any, error) {
		if cached, ok := l.lookup(key); ok {
			return toContributors(cached), nil
		}

		fetched, err := l.lister.ListContributors(ctx, ref, limit)
		if err != nil {
			if errors.Is(err, domain.ErrFetchFailed) {
				return nil, err
			}
			return nil, errors.Join(domain.ErrFetchFailed, zerr.With(err, "repository", key))
		}

		logins := make([]string, len(fetched))
		for i, c := range fetched {
			logins[i] = c.String()
		}

		if err := l.put(key, logins); err != nil {
			return nil, err
		}
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}

	contributors, _ := v.([]domain.ContributorRef)
	return contributors, nil
}

// Len returns the number of cached repositories.
func (l *Listings) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *Listings) lookup(key string) ([]string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	cached, ok := l.entries[key]
	return cached, ok
}

func (l *Listings) put(key string, logins []string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries[key] = logins
	if err := l.store.Save(l.entries); err != nil {
		delete(l.entries, key)
		if errors.Is(err, domain.ErrCacheIO) {
			return err
		}
		return errors.Join(domain.ErrCacheIO, err)
	}
	return nil
}

func toContributors(logins []string) []domain.ContributorRef {
	out := make([]domain.ContributorRef, len(logins))
	for i, login := range logins {
		out[i] = domain.ContributorRef(login)
	}
	return out
}
