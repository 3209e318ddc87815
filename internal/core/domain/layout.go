package domain

import "path/filepath"

const (
	// DefaultInputFile is the default repository list.
	DefaultInputFile = "repos.txt"

	// DefaultMaxContributors is the default number of contributors considered per repository.
	DefaultMaxContributors = 100

	// DefaultRepoCacheFile is the default path of the contributor-listing cache.
	DefaultRepoCacheFile = "repos.json"

	// DefaultContributorCacheFile is the default path of the contributor-location cache.
	DefaultContributorCacheFile = "contributors.json"

	// DefaultConfigFile is the name of the optional configuration file.
	DefaultConfigFile = "gitgeo.yaml"

	// DefaultWorkers keeps the scan strictly sequential.
	DefaultWorkers = 1

	// ReportPrefix is the fixed prefix of every report file name.
	ReportPrefix = "multirepo"

	// ReportExt is the report file extension.
	ReportExt = ".csv"

	// RunIDLayout is the time layout of a run identifier.
	RunIDLayout = "20060102-150405"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// ReportPath returns the deterministic report path for a run inside dir.
func ReportPath(dir string, runID RunID) string {
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, ReportPrefix+"_"+runID.String()+ReportExt)
}
