package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gitgeo/internal/adapters/config"
	"go.trai.ch/gitgeo/internal/core/domain"
	"go.trai.ch/gitgeo/internal/core/ports"
)

var _ ports.ConfigLoader = (*config.Loader)(nil)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), domain.DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_MissingFileYieldsDefaults(t *testing.T) {
	t.Parallel()

	opts, err := config.NewLoader().Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultScanOptions(), opts)
}

func TestLoader_EmptyFileYieldsDefaults(t *testing.T) {
	t.Parallel()

	opts, err := config.NewLoader().Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultScanOptions(), opts)
}

func TestLoader_OverridesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
input: lists/top.txt
max_contributors: 25
workers: 4
output_dir: reports
cache:
  repositories: state/repos.json
  contributors: state/people.json
`)

	opts, err := config.NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.ScanOptions{
		Input:                "lists/top.txt",
		MaxContributors:      25,
		RepoCachePath:        "state/repos.json",
		ContributorCachePath: "state/people.json",
		OutputDir:            "reports",
		Workers:              4,
	}, opts)
}

func TestLoader_PartialFileKeepsOtherDefaults(t *testing.T) {
	t.Parallel()

	opts, err := config.NewLoader().Load(writeConfig(t, "max_contributors: 0\n"))
	require.NoError(t, err)

	want := domain.DefaultScanOptions()
	want.MaxContributors = 0
	assert.Equal(t, want, opts)
}

func TestLoader_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "negative cap", content: "max_contributors: -1\n", wantErr: domain.ErrInvalidMaxContributors.Error()},
		{name: "zero workers", content: "workers: 0\n", wantErr: domain.ErrInvalidWorkers.Error()},
		{name: "unknown key", content: "colour: blue\n", wantErr: domain.ErrConfigParseFailed.Error()},
		{name: "bad yaml", content: "input: [unterminated\n", wantErr: domain.ErrConfigParseFailed.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.NewLoader().Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoader_ParseErrorIsClassified(t *testing.T) {
	t.Parallel()

	_, err := config.NewLoader().Load(writeConfig(t, "workers: many\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigParseFailed))
}

func TestLoader_ReadError(t *testing.T) {
	t.Parallel()

	_, err := config.NewLoader().Load(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigReadFailed))
}
