package ports

import "go.trai.ch/gitgeo/internal/core/domain"

// RowSink is an append-only writer of scan records.
//
//go:generate mockgen -source=report.go -destination=mocks/mock_report.go -package=mocks
type RowSink interface {
	// Append writes one record.
	Append(rec domain.ScanRecord) error
	// Close flushes outstanding rows and releases the artifact.
	Close() error
	// Path returns where the artifact lives.
	Path() string
}

// ReportWriter creates the output artifact for a run.
type ReportWriter interface {
	// Create creates the artifact at path and writes its header.
	Create(path string) (RowSink, error)
}
