// Package scanner turns a repository list into located contributor rows.
package scanner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/gitgeo/internal/core/domain"
	"go.trai.ch/gitgeo/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const commentPrefix = "#"

// ListingSource returns the contributors of a repository, typically through a cache.
type ListingSource interface {
	Contributors(ctx context.Context, ref domain.RepositoryRef, limit int) ([]domain.ContributorRef, error)
}

// LocationSource returns the declared location of a contributor, typically through a cache.
type LocationSource interface {
	Location(ctx context.Context, contributor domain.ContributorRef) (domain.Location, error)
}

// Options tunes a single Run.
type Options struct {
	RunID           domain.RunID
	MaxContributors int
	Workers         int
}

// Scanner walks repositories, resolves their contributors and emits one row
// per contributor.
type Scanner struct {
	listings  ListingSource
	locations LocationSource
	countries ports.CountryResolver
	tracer    ports.Tracer
	logger    ports.Logger
}

// New creates a Scanner.
func New(
	listings ListingSource,
	locations LocationSource,
	countries ports.CountryResolver,
	tracer ports.Tracer,
	logger ports.Logger,
) *Scanner {
	return &Scanner{
		listings:  listings,
		locations: locations,
		countries: countries,
		tracer:    tracer,
		logger:    logger,
	}
}

// Run reads repository identifiers from in and appends a row to sink for every
// contributor whose location could be fetched.
//
// Malformed lines, repositories whose listing cannot be fetched and
// contributors whose profile cannot be fetched are logged, counted and
// skipped. Anything else, including cancellation of ctx, stops the run.
func (s *Scanner) Run(
	ctx context.Context,
	in io.Reader,
	sink ports.RowSink,
	opts Options,
) (domain.ScanSummary, error) {
	if opts.MaxContributors < 0 {
		return domain.ScanSummary{}, zerr.With(domain.ErrInvalidMaxContributors, "max_contributors", opts.MaxContributors)
	}

	targets, rejected, err := s.readTargets(in)
	if err != nil {
		return domain.ScanSummary{}, err
	}

	var summary domain.ScanSummary
	if opts.Workers > 1 && len(targets) > 1 {
		summary, err = s.runConcurrent(ctx, targets, sink, opts)
	} else {
		summary, err = s.runSequential(ctx, targets, sink, opts)
	}
	summary.RejectedLines = rejected

	return summary, err
}

func (s *Scanner) readTargets(in io.Reader) ([]domain.RepositoryRef, int, error) {
	var targets []domain.RepositoryRef
	rejected := 0

	lines := bufio.NewScanner(in)
	lineNo := 0
	for lines.Scan() {
		lineNo++
		line := strings.TrimSpace(lines.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		ref, err := domain.ParseRepositoryRef(line)
		if err != nil {
			rejected++
			s.logger.Warn(fmt.Sprintf("skipping line %d: %q is not a repository identifier", lineNo, line))
			continue
		}
		targets = append(targets, ref)
	}

	if err := lines.Err(); err != nil {
		return nil, rejected, errors.Join(domain.ErrInputReadFailed, zerr.With(err, "line", lineNo+1))
	}

	return targets, rejected, nil
}

func (s *Scanner) runSequential(
	ctx context.Context,
	targets []domain.RepositoryRef,
	sink ports.RowSink,
	opts Options,
) (domain.ScanSummary, error) {
	var total domain.ScanSummary
	emit := func(rec domain.ScanRecord) error {
		if err := appendRow(sink, rec); err != nil {
			return err
		}
		total.Rows++
		return nil
	}

	for _, ref := range targets {
		summary, err := s.scanRepository(ctx, ref, opts, emit)
		total.Add(summary)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

type repoResult struct {
	records []domain.ScanRecord
	summary domain.ScanSummary
}

// runConcurrent scans up to opts.Workers repositories at a time. Rows are
// buffered per repository and appended in input order.
func (s *Scanner) runConcurrent(
	ctx context.Context,
	targets []domain.RepositoryRef,
	sink ports.RowSink,
	opts Options,
) (domain.ScanSummary, error) {
	g, gctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(opts.Workers))

	results := make([]chan repoResult, len(targets))
	for i := range results {
		results[i] = make(chan repoResult, 1)
	}

	var total domain.ScanSummary
	g.Go(func() error {
		for _, ch := range results {
			select {
			case res := <-ch:
				for _, rec := range res.records {
					if err := appendRow(sink, rec); err != nil {
						return err
					}
					total.Rows++
				}
				total.Add(res.summary)
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for i, ref := range targets {
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}

		g.Go(func() error {
			defer sem.Release(1)

			var records []domain.ScanRecord
			summary, err := s.scanRepository(gctx, ref, opts, func(rec domain.ScanRecord) error {
				records = append(records, rec)
				return nil
			})
			if err != nil {
				return err
			}
			results[i] <- repoResult{records: records, summary: summary}
			return nil
		})
	}

	err := g.Wait()
	return total, err
}

// scanRepository emits the rows of one repository. A returned error is fatal.
func (s *Scanner) scanRepository(
	ctx context.Context,
	ref domain.RepositoryRef,
	opts Options,
	emit func(domain.ScanRecord) error,
) (domain.ScanSummary, error) {
	ctx, span := s.tracer.Start(ctx, domain.SpanScanRepository)
	defer span.End()
	span.SetAttribute(domain.AttrRepository, ref.String())

	var summary domain.ScanSummary

	contributors, err := s.listings.Contributors(ctx, ref, opts.MaxContributors)
	if err != nil {
		span.RecordError(err)
		if s.isFatal(ctx, err) {
			return summary, err
		}
		s.logger.Warn(fmt.Sprintf("skipping repository %s: %s", ref, reason(err)))
		summary.SkippedRepositories++
		return summary, nil
	}
	summary.Repositories++

	// A cached listing may be longer than the cap requested for this run.
	if len(contributors) > opts.MaxContributors {
		contributors = contributors[:opts.MaxContributors]
	}

	rows := 0
	for _, contributor := range contributors {
		rec, ok, err := s.resolveContributor(ctx, ref, contributor, opts.RunID)
		if err != nil {
			span.RecordError(err)
			return summary, err
		}
		if !ok {
			summary.SkippedContributors++
			continue
		}

		if err := emit(rec); err != nil {
			span.RecordError(err)
			return summary, err
		}
		rows++
	}
	span.SetAttribute(domain.AttrRows, rows)

	return summary, nil
}

// resolveContributor builds the row of one contributor. ok is false when the
// contributor is skipped.
func (s *Scanner) resolveContributor(
	ctx context.Context,
	ref domain.RepositoryRef,
	contributor domain.ContributorRef,
	runID domain.RunID,
) (domain.ScanRecord, bool, error) {
	ctx, span := s.tracer.Start(ctx, domain.SpanResolveContributor)
	defer span.End()
	span.SetAttribute(domain.AttrContributor, contributor.String())

	loc, err := s.locations.Location(ctx, contributor)
	if err != nil {
		span.RecordError(err)
		if s.isFatal(ctx, err) {
			return domain.ScanRecord{}, false, err
		}
		s.logger.Warn(fmt.Sprintf("skipping contributor %s of %s: %s", contributor, ref, reason(err)))
		return domain.ScanRecord{}, false, nil
	}

	country := s.countries.ResolveCountry(loc)
	span.SetAttribute(domain.AttrCountry, country)

	return domain.ScanRecord{
		Repository:  ref,
		RunID:       runID,
		Contributor: contributor,
		Location:    loc,
		Country:     country,
	}, true, nil
}

// isFatal reports whether err must stop the run. Only remote fetch failures
// are skippable, and not once the run itself has been cancelled.
func (s *Scanner) isFatal(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	return !errors.Is(err, domain.ErrFetchFailed)
}

func reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return domain.ErrNotFound.Error()
	case errors.Is(err, domain.ErrRateLimited):
		return domain.ErrRateLimited.Error()
	default:
		return domain.ErrFetchFailed.Error()
	}
}

func appendRow(sink ports.RowSink, rec domain.ScanRecord) error {
	if err := sink.Append(rec); err != nil {
		return errors.Join(domain.ErrReportWriteFailed, err)
	}
	return nil
}
