package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedIdentifier is returned when an input line is neither an owner/name pair nor a repository URL.
	ErrMalformedIdentifier = zerr.New("malformed repository identifier")

	// ErrFetchFailed is returned when a remote listing or profile lookup fails.
	ErrFetchFailed = zerr.New("remote fetch failed")

	// ErrRateLimited is returned when the remote API refuses a request because of rate limiting.
	ErrRateLimited = zerr.New("remote API rate limit exceeded")

	// ErrNotFound is returned when the remote API does not know the requested repository or user.
	ErrNotFound = zerr.New("remote resource not found")

	// ErrCacheIO is returned when a cache file cannot be read, parsed or written.
	ErrCacheIO = zerr.New("cache storage unusable")

	// ErrCacheReadFailed is returned when a cache file cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cache file")

	// ErrCacheUnmarshalFailed is returned when a cache file does not contain a valid mapping.
	ErrCacheUnmarshalFailed = zerr.New("failed to unmarshal cache file")

	// ErrCacheMarshalFailed is returned when a cache mapping cannot be serialized.
	ErrCacheMarshalFailed = zerr.New("failed to marshal cache file")

	// ErrCacheWriteFailed is returned when a cache file cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cache file")

	// ErrCacheRemoveFailed is returned when a cache file cannot be deleted.
	ErrCacheRemoveFailed = zerr.New("failed to remove cache file")

	// ErrInputOpenFailed is returned when the repository list cannot be opened.
	ErrInputOpenFailed = zerr.New("failed to open repository list")

	// ErrInputReadFailed is returned when the repository list cannot be read to the end.
	ErrInputReadFailed = zerr.New("failed to read repository list")

	// ErrReportCreateFailed is returned when the output report cannot be created.
	ErrReportCreateFailed = zerr.New("failed to create report")

	// ErrReportWriteFailed is returned when a row cannot be written to the report.
	ErrReportWriteFailed = zerr.New("failed to write report row")

	// ErrInvalidMaxContributors is returned when the per-repository contributor cap is negative.
	ErrInvalidMaxContributors = zerr.New("max contributors per repository must not be negative")

	// ErrInvalidWorkers is returned when the worker count is not positive.
	ErrInvalidWorkers = zerr.New("workers must be at least 1")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrScanFailed is returned when a scan aborts on an infrastructure error.
	ErrScanFailed = zerr.New("scan failed")

	// ErrGazetteerLoadFailed is returned when the embedded place data cannot be decoded.
	ErrGazetteerLoadFailed = zerr.New("failed to load gazetteer")
)
