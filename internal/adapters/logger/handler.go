package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/gitgeo/internal/ui/output"
	"go.trai.ch/gitgeo/internal/ui/style"
)

// levelMark is the prefix and color of a log line at or above a level.
type levelMark struct {
	level slog.Level
	icon  string
	color string
}

// Checked from the most severe down.
var levelMarks = []levelMark{
	{level: slog.LevelError, icon: style.Cross, color: string(style.Red)},
	{level: slog.LevelWarn, icon: style.Warning, color: string(style.Yellow)},
}

// PrettyHandler is a slog.Handler writing one colored line per record:
// the message followed by key=value pairs.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	prefix string
	// preformatted holds the pairs added by WithAttrs, already qualified.
	preformatted []string
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	color := string(style.Slate)
	for _, m := range levelMarks {
		if r.Level >= m.level {
			b.WriteString(m.icon + " ")
			color = m.color
			break
		}
	}
	b.WriteString(r.Message)

	for _, pair := range h.preformatted {
		b.WriteString(" " + pair)
	}
	r.Attrs(func(attr slog.Attr) bool {
		if pair := formatAttr(h.prefix, attr); pair != "" {
			b.WriteString(" " + pair)
		}
		return true
	})

	line := h.out.String(b.String()).Foreground(termenv.RGBColor(color)).String()
	_, err := h.out.WriteString(line + "\n")
	return err
}

// WithAttrs returns a Handler that appends attrs to every line.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.preformatted = append([]string(nil), h.preformatted...)
	for _, attr := range attrs {
		if pair := formatAttr(h.prefix, attr); pair != "" {
			next.preformatted = append(next.preformatted, pair)
		}
	}
	return &next
}

// WithGroup returns a Handler that qualifies later attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

// formatAttr renders attr as key=value. Values containing spaces are quoted,
// so a warning reason stays one token.
func formatAttr(prefix string, attr slog.Attr) string {
	if attr.Equal(slog.Attr{}) {
		return ""
	}
	value := attr.Value.Resolve().String()
	if strings.ContainsAny(value, " \t\n\"") {
		value = strconv.Quote(value)
	}
	return prefix + attr.Key + "=" + value
}
