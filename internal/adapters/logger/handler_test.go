package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/gitgeo/internal/adapters/logger"
)

func TestPrettyHandler(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		msg   string
		attrs []any
		want  string
	}{
		{name: "info", level: slog.LevelInfo, msg: "hello", want: "hello\n"},
		{name: "warn", level: slog.LevelWarn, msg: "careful", want: "! careful\n"},
		{name: "error", level: slog.LevelError, msg: "broken", want: "✗ broken\n"},
		{name: "debug filtered", level: slog.LevelDebug, msg: "hidden", want: ""},
		{
			name:  "attributes",
			level: slog.LevelInfo,
			msg:   "scanned",
			attrs: []any{"repository", "octocat/Hello-World", "rows", 3},
			want:  "scanned repository=octocat/Hello-World rows=3\n",
		},
		{
			name:  "quoted value",
			level: slog.LevelWarn,
			msg:   "skipping",
			attrs: []any{"reason", "remote resource not found"},
			want:  "! skipping reason=\"remote resource not found\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
			lg.Log(t.Context(), tt.level, tt.msg, tt.attrs...)

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_WithAttrsAndGroup(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	var h slog.Handler = logger.NewPrettyHandler(buf, nil)
	h = h.WithAttrs([]slog.Attr{slog.String("run", "20261016-090503")})
	h = h.WithGroup("scan").WithGroup("repository")

	slog.New(h).Info("done", "rows", 2)

	assert.Equal(t, "done run=20261016-090503 scan.repository.rows=2\n", buf.String())
}
