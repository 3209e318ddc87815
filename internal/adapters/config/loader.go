// Package config loads scan defaults from an optional YAML file.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"go.trai.ch/gitgeo/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load returns the built-in defaults overlaid with the values found in the
// file at path. A missing file is not an error.
func (l *Loader) Load(path string) (domain.ScanOptions, error) {
	opts := domain.DefaultScanOptions()

	// #nosec G304 -- path is provided by the user
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return opts, nil
	}
	if err != nil {
		return opts, errors.Join(domain.ErrConfigReadFailed,
			zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path))
	}

	var file Configfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return opts, errors.Join(domain.ErrConfigParseFailed,
			zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path))
	}

	if err := apply(&opts, &file); err != nil {
		return opts, zerr.With(err, "path", path)
	}
	return opts, nil
}

func apply(opts *domain.ScanOptions, file *Configfile) error {
	if file.Input != "" {
		opts.Input = file.Input
	}
	if file.OutputDir != "" {
		opts.OutputDir = file.OutputDir
	}
	if file.Cache.Repositories != "" {
		opts.RepoCachePath = file.Cache.Repositories
	}
	if file.Cache.Contributors != "" {
		opts.ContributorCachePath = file.Cache.Contributors
	}

	if file.MaxContributors != nil {
		if *file.MaxContributors < 0 {
			return zerr.With(domain.ErrInvalidMaxContributors, "max_contributors", *file.MaxContributors)
		}
		opts.MaxContributors = *file.MaxContributors
	}

	if file.Workers != nil {
		if *file.Workers < 1 {
			return zerr.With(domain.ErrInvalidWorkers, "workers", *file.Workers)
		}
		opts.Workers = *file.Workers
	}

	return nil
}
