// Package jsonfile implements whole-mapping cache persistence in JSON files.
package jsonfile

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/gitgeo/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store persists a string-keyed mapping as one JSON object.
// It implements ports.ListingStore for V = []string and ports.LocationStore
// for V = *string.
type Store[V any] struct {
	path string
}

// NewStore creates a Store backed by the file at path.
// The file is not touched until the first Load or Save.
func NewStore[V any](path string) *Store[V] {
	return &Store[V]{path: filepath.Clean(path)}
}

// Path returns the backing file path.
func (s *Store[V]) Path() string {
	return s.path
}

// Load reads the full mapping. A missing file yields an empty mapping.
func (s *Store[V]) Load() (map[string]V, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(map[string]V), nil
		}
		return nil, s.cacheErr(err, domain.ErrCacheReadFailed)
	}

	entries := make(map[string]V)
	if len(data) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, s.cacheErr(err, domain.ErrCacheUnmarshalFailed)
	}
	if entries == nil {
		// The file held a JSON null.
		entries = make(map[string]V)
	}

	return entries, nil
}

// Save replaces the file content with entries.
// The write goes to a temp file in the same directory which is then renamed
// over the target, so readers never observe a partially written cache.
func (s *Store[V]) Save(entries map[string]V) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return s.cacheErr(err, domain.ErrCacheMarshalFailed)
	}

	if err := atomicWriteFile(s.path, data); err != nil {
		return s.cacheErr(err, domain.ErrCacheWriteFailed)
	}

	return nil
}

// Remove deletes the backing file. A missing file is not an error.
func (s *Store[V]) Remove() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return s.cacheErr(err, domain.ErrCacheRemoveFailed)
	}
	return nil
}

func (s *Store[V]) cacheErr(err error, kind error) error {
	return errors.Join(domain.ErrCacheIO, zerr.With(zerr.Wrap(err, kind.Error()), "path", s.path))
}

// atomicWriteFile writes data to a file atomically by writing to a temp file and renaming it.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
