package logger_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gitgeo/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger returns a logger writing to a buffer with colors disabled.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg, ok := logger.New().(*logger.Logger)
	require.True(t, ok)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(*logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(l *logger.Logger) { l.Info("scanned 3 repositories") },
			goldenName: "info_basic",
		},
		{
			name:       "warn",
			log:        func(l *logger.Logger) { l.Warn("skipping malformed line 4") },
			goldenName: "warn_basic",
		},
		{
			name:       "error",
			log:        func(l *logger.Logger) { l.Error(os.ErrPermission) },
			goldenName: "error_simple",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_JoinedChain(t *testing.T) {
	lg, buf := newTestLogger(t)

	sentinel := zerr.New("cache I/O failed")
	cause := zerr.With(zerr.Wrap(os.ErrPermission, "failed to write cache"), "path", "repos.json")
	lg.Error(errors.Join(sentinel, cause))

	g := goldie.New(t)
	g.Assert(t, "error_joined_chain", buf.Bytes())
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Error(zerr.With(zerr.New("failed to list contributors"), "repository", "octocat/Hello-World"))

	out := buf.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"error"`)
	assert.Contains(t, out, "failed to list contributors")
	assert.NotContains(t, out, "✗")

	buf.Reset()
	lg.SetJSON(false)
	lg.Info("back to pretty")
	assert.Equal(t, "back to pretty\n", buf.String())
}

func TestLogger_SetOutput_NilFallsBackToStderr(t *testing.T) {
	lg, _ := newTestLogger(t)
	assert.NotPanics(t, func() { lg.SetOutput(nil) })
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "caused by",
			entries: []logger.ErrorEntry{{Message: "outer"}, {Message: "inner"}, {Message: "root"}},
			want:    "Error: outer\n\n  Caused by:\n    → inner\n    → root",
		},
		{
			name: "sorted metadata",
			entries: []logger.ErrorEntry{
				{Message: "error", Metadata: map[string]any{"zebra": "z", "alpha": "a"}},
				{Message: "cause", Metadata: map[string]any{"status_code": 404}},
			},
			want: "Error: error\n       alpha: a\n       zebra: z\n\n  Caused by:\n    → cause\n      status_code: 404",
		},
		{
			name:    "multiline message",
			entries: []logger.ErrorEntry{{Message: "line1\nline2"}},
			want:    "Error: line1\n       line2",
		},
		{
			name:    "empty",
			entries: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}

func TestCollectErrorEntries(t *testing.T) {
	t.Run("plain error", func(t *testing.T) {
		entries := logger.CollectErrorEntries(errors.New("simple"))
		require.Len(t, entries, 1)
		assert.Equal(t, "simple", entries[0].Message)
		assert.Nil(t, entries[0].Metadata)
	})

	t.Run("zerr chain", func(t *testing.T) {
		err := zerr.With(zerr.Wrap(errors.New("root cause"), "outer layer"), "key", "value")
		entries := logger.CollectErrorEntries(err)
		require.Len(t, entries, 2)
		assert.Equal(t, "outer layer", entries[0].Message)
		assert.Equal(t, "value", entries[0].Metadata["key"])
		assert.Equal(t, "root cause", entries[1].Message)
	})

	t.Run("joined members in order", func(t *testing.T) {
		err := errors.Join(zerr.New("fetch failed"), errors.New("boom"))
		entries := logger.CollectErrorEntries(err)
		require.Len(t, entries, 2)
		assert.Equal(t, "fetch failed", entries[0].Message)
		assert.Equal(t, "boom", entries[1].Message)
	})

	t.Run("nil", func(t *testing.T) {
		assert.Empty(t, logger.CollectErrorEntries(nil))
	})
}
