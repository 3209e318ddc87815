package ports

import "go.trai.ch/gitgeo/internal/core/domain"

// ConfigLoader defines the interface for loading scan defaults.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and merges it over the
	// built-in defaults. A missing file yields the defaults.
	Load(path string) (domain.ScanOptions, error)
}
