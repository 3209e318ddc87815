package cache_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gitgeo/internal/adapters/jsonfile"
	"go.trai.ch/gitgeo/internal/core/domain"
	"go.trai.ch/gitgeo/internal/core/ports/mocks"
	"go.trai.ch/gitgeo/internal/engine/cache"
	"go.uber.org/mock/gomock"
)

func TestLocations_FetchThenReuse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockLocationFetcher(ctrl)
	store := jsonfile.NewStore[*string](filepath.Join(t.TempDir(), "contributors.json"))

	locations, err := cache.OpenLocations(store, fetcher)
	require.NoError(t, err)

	sf := domain.DeclaredLocation("San Francisco, CA")
	fetcher.EXPECT().FetchLocation(gomock.Any(), domain.ContributorRef("alice")).Return(sf, nil).Times(1)

	for range 3 {
		got, err := locations.Location(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, sf, got)
	}
}

func TestLocations_AbsenceIsCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "contributors.json")
	fetcher := mocks.NewMockLocationFetcher(ctrl)
	fetcher.EXPECT().FetchLocation(gomock.Any(), domain.ContributorRef("bob")).Return(domain.NoLocation, nil).Times(1)

	locations, err := cache.OpenLocations(jsonfile.NewStore[*string](path), fetcher)
	require.NoError(t, err)

	got, err := locations.Location(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, domain.NoLocation, got)

	got, err = locations.Location(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, domain.NoLocation, got)

	// A fresh cache over the same file still treats bob as known.
	reopened, err := cache.OpenLocations(jsonfile.NewStore[*string](path), mocks.NewMockLocationFetcher(ctrl))
	require.NoError(t, err)
	got, err = reopened.Location(context.Background(), "bob")
	require.NoError(t, err)
	assert.False(t, got.Declared)
}

func TestLocations_FetchErrorWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockLocationFetcher(ctrl)
	store := mocks.NewMockLocationStore(ctrl)
	store.EXPECT().Load().Return(map[string]*string{}, nil)

	locations, err := cache.OpenLocations(store, fetcher)
	require.NoError(t, err)

	fetcher.EXPECT().FetchLocation(gomock.Any(), domain.ContributorRef("alice")).
		Return(domain.NoLocation, errors.Join(domain.ErrFetchFailed, errors.New("rate limited")))

	_, err = locations.Location(context.Background(), "alice")
	require.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Equal(t, 0, locations.Len())
}

func TestLocations_SaveErrorIsCacheIO(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockLocationFetcher(ctrl)
	store := mocks.NewMockLocationStore(ctrl)
	store.EXPECT().Load().Return(map[string]*string{}, nil)
	store.EXPECT().Save(gomock.Any()).Return(errors.New("read-only file system"))

	locations, err := cache.OpenLocations(store, fetcher)
	require.NoError(t, err)

	fetcher.EXPECT().FetchLocation(gomock.Any(), domain.ContributorRef("alice")).Return(domain.DeclaredLocation("Berlin"), nil)

	_, err = locations.Location(context.Background(), "alice")
	require.ErrorIs(t, err, domain.ErrCacheIO)
	assert.Equal(t, 0, locations.Len())
}

func TestLocations_ConcurrentMissesShareFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockLocationFetcher(ctrl)
	store := jsonfile.NewStore[*string](filepath.Join(t.TempDir(), "contributors.json"))

	locations, err := cache.OpenLocations(store, fetcher)
	require.NoError(t, err)

	fetcher.EXPECT().FetchLocation(gomock.Any(), domain.ContributorRef("alice")).
		Return(domain.DeclaredLocation("Paris"), nil).
		Times(1)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := locations.Location(context.Background(), "alice")
			assert.NoError(t, err)
			assert.Equal(t, "Paris", got.String())
		}()
	}
	wg.Wait()
}
