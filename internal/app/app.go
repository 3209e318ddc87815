// Package app implements the application layer for gitgeo.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.trai.ch/gitgeo/internal/adapters/jsonfile" //nolint:depguard // Cache files are opened per run
	"go.trai.ch/gitgeo/internal/core/domain"
	"go.trai.ch/gitgeo/internal/core/ports"
	"go.trai.ch/gitgeo/internal/engine/cache"
	"go.trai.ch/gitgeo/internal/engine/scanner"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	lister       ports.ContributorLister
	fetcher      ports.LocationFetcher
	countries    ports.CountryResolver
	reports      ports.ReportWriter
	tracer       ports.Tracer
	logger       ports.Logger
	now          func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	lister ports.ContributorLister,
	fetcher ports.LocationFetcher,
	countries ports.CountryResolver,
	reports ports.ReportWriter,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		lister:       lister,
		fetcher:      fetcher,
		countries:    countries,
		reports:      reports,
		tracer:       tracer,
		logger:       log,
		now:          time.Now,
	}
}

// WithClock replaces the clock used to derive run identifiers.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// LoadOptions returns the scan options configured in the file at path,
// falling back to built-in defaults.
func (a *App) LoadOptions(path string) (domain.ScanOptions, error) {
	return a.configLoader.Load(path)
}

// SetLogJSON switches the logger to JSON output when it supports it.
func (a *App) SetLogJSON(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}

// Scan runs one scan and writes its report.
//
//nolint:cyclop // orchestration function
func (a *App) Scan(ctx context.Context, opts domain.ScanOptions) (summary domain.ScanSummary, err error) {
	if opts.MaxContributors < 0 {
		return summary, zerr.With(domain.ErrInvalidMaxContributors, "max_contributors", opts.MaxContributors)
	}
	if opts.Workers < 1 {
		return summary, zerr.With(domain.ErrInvalidWorkers, "workers", opts.Workers)
	}

	runID := domain.NewRunID(a.now())

	// 1. Create the report
	path := opts.Output
	if path == "" {
		path = domain.ReportPath(opts.OutputDir, runID)
	}
	sink, err := a.reports.Create(path)
	if err != nil {
		return summary, classify(domain.ErrReportCreateFailed, err)
	}
	summary.ReportPath = sink.Path()
	defer func() {
		if closeErr := sink.Close(); closeErr != nil && err == nil {
			err = classify(domain.ErrReportWriteFailed, closeErr)
		}
	}()

	repoStore := jsonfile.NewStore[[]string](opts.RepoCachePath)
	locationStore := jsonfile.NewStore[*string](opts.ContributorCachePath)

	// 2. Reset
	if opts.Reset {
		if err := a.removeCaches(repoStore, locationStore); err != nil {
			return summary, err
		}
	}

	// 3. Open both caches
	listings, err := cache.OpenListings(repoStore, a.lister)
	if err != nil {
		return summary, err
	}
	locations, err := cache.OpenLocations(locationStore, a.fetcher)
	if err != nil {
		return summary, err
	}

	// 4. Scan the input
	// #nosec G304 -- input path is provided by the user
	in, err := os.Open(opts.Input)
	if err != nil {
		return summary, errors.Join(domain.ErrInputOpenFailed, zerr.With(err, "path", opts.Input))
	}
	defer func() { _ = in.Close() }()

	sc := scanner.New(listings, locations, a.countries, a.tracer, a.logger)
	result, err := sc.Run(ctx, in, sink, scanner.Options{
		RunID:           runID,
		MaxContributors: opts.MaxContributors,
		Workers:         opts.Workers,
	})
	result.ReportPath = summary.ReportPath
	summary = result
	if err != nil {
		return summary, errors.Join(domain.ErrScanFailed, err)
	}

	a.logger.Info(fmt.Sprintf(
		"scanned %d repositories (%d skipped, %d lines rejected): %d rows, %d contributors skipped, report %s",
		summary.Repositories,
		summary.SkippedRepositories,
		summary.RejectedLines,
		summary.Rows,
		summary.SkippedContributors,
		summary.ReportPath,
	))

	return summary, nil
}

// CleanOptions locates the cache files removed by Clean.
type CleanOptions struct {
	RepoCachePath        string
	ContributorCachePath string
}

// Clean deletes both cache files. Missing files are not an error.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	return a.removeCaches(
		jsonfile.NewStore[[]string](opts.RepoCachePath),
		jsonfile.NewStore[*string](opts.ContributorCachePath),
	)
}

type removableStore interface {
	Remove() error
	Path() string
}

func (a *App) removeCaches(stores ...removableStore) error {
	var errs error
	for _, store := range stores {
		if err := store.Remove(); err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		a.logger.Info(fmt.Sprintf("removed %s", store.Path()))
	}
	return errs
}

// classify joins err with sentinel unless it already matches it.
func classify(sentinel, err error) error {
	if errors.Is(err, sentinel) {
		return err
	}
	return errors.Join(sentinel, err)
}
