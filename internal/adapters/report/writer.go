// Package report implements the append-only CSV report of a scan run.
package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/gitgeo/internal/core/domain"
	"go.trai.ch/gitgeo/internal/core/ports"
	"go.trai.ch/zerr"
)

// Header is the first row of every report.
var Header = []string{"repository", "scan_id", "contributor", "location", "country"}

// Writer implements ports.ReportWriter for CSV files.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Create creates (or truncates) the report at path and writes the header.
func (w *Writer) Create(path string) (ports.RowSink, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReportCreateFailed.Error()), "path", path)
	}

	//nolint:gosec // Report path comes from the invoker
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReportCreateFailed.Error()), "path", path)
	}

	s := &Sink{
		path: path,
		file: f,
		csv:  csv.NewWriter(f),
	}

	if err := s.write(Header); err != nil {
		_ = f.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReportCreateFailed.Error()), "path", path)
	}

	return s, nil
}

// Sink appends scan records to an open report.
// Every row is flushed to the file as soon as it is appended.
type Sink struct {
	path string

	mu     sync.Mutex
	file   *os.File
	csv    *csv.Writer
	closed bool
}

// Append writes one record.
func (s *Sink) Append(rec domain.ScanRecord) error {
	err := s.write([]string{
		rec.Repository.String(),
		rec.RunID.String(),
		rec.Contributor.String(),
		rec.Location.String(),
		rec.Country,
	})
	if err != nil {
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", s.path)
		return zerr.With(wrapped, "repository", rec.Repository.String())
	}
	return nil
}

// Close flushes outstanding rows and closes the file. It is safe to call twice.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	s.csv.Flush()
	flushErr := s.csv.Error()
	closeErr := s.file.Close()

	for _, err := range []error{flushErr, closeErr} {
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", s.path)
		}
	}
	return nil
}

// Path returns the report location.
func (s *Sink) Path() string {
	return s.path
}

func (s *Sink) write(row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return os.ErrClosed
	}
	if err := s.csv.Write(row); err != nil {
		return err
	}
	s.csv.Flush()
	return s.csv.Error()
}
