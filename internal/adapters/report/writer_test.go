package report_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gitgeo/internal/adapters/report"
	"go.trai.ch/gitgeo/internal/core/domain"
	"go.trai.ch/gitgeo/internal/core/ports"
)

var _ ports.ReportWriter = (*report.Writer)(nil)

func record(contributor string, loc domain.Location, country string) domain.ScanRecord {
	return domain.ScanRecord{
		Repository:  domain.RepositoryRef{Owner: "octocat", Name: "Hello-World"},
		RunID:       domain.NewRunID(time.Date(2026, time.October, 16, 9, 5, 3, 0, time.UTC)),
		Contributor: domain.ContributorRef(contributor),
		Location:    loc,
		Country:     country,
	}
}

func TestSink_Golden(t *testing.T) {
	tests := []struct {
		name       string
		records    []domain.ScanRecord
		goldenName string
	}{
		{
			name:       "header only",
			goldenName: "report_empty",
		},
		{
			name: "rows with quoting and absent location",
			records: []domain.ScanRecord{
				record("alice", domain.DeclaredLocation("San Francisco, CA"), "United States"),
				record("bob", domain.NoLocation, domain.UnknownCountry),
				record("dave", domain.DeclaredLocation(`The "Cloud"`), domain.UnknownCountry),
			},
			goldenName: "report_rows",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out", "report.csv")

			sink, err := report.NewWriter().Create(path)
			require.NoError(t, err)
			assert.Equal(t, path, sink.Path())

			for _, rec := range tt.records {
				require.NoError(t, sink.Append(rec))
			}
			require.NoError(t, sink.Close())

			data, err := os.ReadFile(path)
			require.NoError(t, err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, data)
		})
	}
}

func TestSink_RowsDurableBeforeClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")

	sink, err := report.NewWriter().Create(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sink.Close() })

	require.NoError(t, sink.Append(record("alice", domain.DeclaredLocation("Berlin"), "Germany")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "octocat/Hello-World,20261016-090503,alice,Berlin,Germany\n")
}

func TestSink_AppendAfterClose(t *testing.T) {
	sink, err := report.NewWriter().Create(filepath.Join(t.TempDir(), "report.csv"))
	require.NoError(t, err)

	require.NoError(t, sink.Close())
	require.NoError(t, sink.Close())

	err = sink.Append(record("alice", domain.NoLocation, domain.UnknownCountry))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrReportWriteFailed.Error())
}

func TestWriter_CreateFails(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	// A regular file where a directory is expected.
	_, err := report.NewWriter().Create(filepath.Join(blocker, "report.csv"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrReportCreateFailed.Error())
}
