package domain

import "time"

// UnknownCountry is the sentinel returned when no country can be determined.
const UnknownCountry = "Unknown"

// RunID identifies a single scan run. It is the run's start time.
type RunID struct {
	t time.Time
}

// NewRunID returns the run identifier for a run starting at t.
func NewRunID(t time.Time) RunID {
	return RunID{t: t}
}

// String formats the run identifier as used in report names and rows.
func (r RunID) String() string {
	return r.t.Format(RunIDLayout)
}

// Time returns the start time of the run.
func (r RunID) Time() time.Time {
	return r.t
}

// ScanRecord is one output row: a contributor of a repository seen in a run.
type ScanRecord struct {
	Repository  RepositoryRef
	RunID       RunID
	Contributor ContributorRef
	Location    Location
	Country     string
}

// ScanOptions configures a scan run.
type ScanOptions struct {
	// Input is the path of the repository list.
	Input string
	// MaxContributors caps how many contributors are considered per repository.
	MaxContributors int
	// Reset deletes both cache files before the run starts.
	Reset bool
	// RepoCachePath is the contributor-listing cache file.
	RepoCachePath string
	// ContributorCachePath is the contributor-location cache file.
	ContributorCachePath string
	// OutputDir is where the report is created when Output is empty.
	OutputDir string
	// Output overrides the report path.
	Output string
	// Workers is the number of repositories scanned concurrently.
	Workers int
}

// DefaultScanOptions returns the options used when nothing is configured.
func DefaultScanOptions() ScanOptions {
	return ScanOptions{
		Input:                DefaultInputFile,
		MaxContributors:      DefaultMaxContributors,
		RepoCachePath:        DefaultRepoCacheFile,
		ContributorCachePath: DefaultContributorCacheFile,
		OutputDir:            ".",
		Workers:              DefaultWorkers,
	}
}

// ScanSummary counts what happened during a run.
type ScanSummary struct {
	// ReportPath is the path of the created report.
	ReportPath string
	// Repositories is the number of repositories whose listing was obtained.
	Repositories int
	// RejectedLines is the number of input lines that failed normalization.
	RejectedLines int
	// SkippedRepositories is the number of repositories whose listing fetch failed.
	SkippedRepositories int
	// SkippedContributors is the number of contributors whose location fetch failed.
	SkippedContributors int
	// Rows is the number of rows written to the report.
	Rows int
}

// Add merges the counts of other into s.
func (s *ScanSummary) Add(other ScanSummary) {
	s.Repositories += other.Repositories
	s.RejectedLines += other.RejectedLines
	s.SkippedRepositories += other.SkippedRepositories
	s.SkippedContributors += other.SkippedContributors
	s.Rows += other.Rows
}
