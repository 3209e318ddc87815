package ports

// ListingStore persists the contributor-listing cache as a whole mapping
// from repository identifier to contributor logins.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ListingStore interface {
	// Load reads the full mapping. A missing backing file yields an empty mapping.
	Load() (map[string][]string, error)
	// Save replaces the stored mapping.
	Save(entries map[string][]string) error
	// Remove deletes the backing file. A missing file is not an error.
	Remove() error
}

// LocationStore persists the contributor-location cache as a whole mapping
// from contributor login to location. A nil value is a cached absent location.
type LocationStore interface {
	// Load reads the full mapping. A missing backing file yields an empty mapping.
	Load() (map[string]*string, error)
	// Save replaces the stored mapping.
	Save(entries map[string]*string) error
	// Remove deletes the backing file. A missing file is not an error.
	Remove() error
}
