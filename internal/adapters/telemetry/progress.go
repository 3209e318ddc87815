package telemetry

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/gitgeo/internal/core/domain"
	"go.trai.ch/gitgeo/internal/ui/output"
	"go.trai.ch/gitgeo/internal/ui/style"
)

// Progress implements sdktrace.SpanProcessor. It prints one line per
// finished repository span.
type Progress struct {
	mu  sync.Mutex
	out *termenv.Output
}

// NewProgress returns a Progress writing to w. Colors are only used on terminals.
func NewProgress(w io.Writer) *Progress {
	return &Progress{out: output.NewAuto(w)}
}

// OnStart does nothing.
func (p *Progress) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd prints the outcome of a repository span.
func (p *Progress) OnEnd(s sdktrace.ReadOnlySpan) {
	if s.Name() != domain.SpanScanRepository {
		return
	}

	var repo string
	var rows int64
	for _, kv := range s.Attributes() {
		switch kv.Key {
		case attribute.Key(domain.AttrRepository):
			repo = kv.Value.AsString()
		case attribute.Key(domain.AttrRows):
			rows = kv.Value.AsInt64()
		}
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)

	var line string
	if s.Status().Code == codes.Error {
		symbol := p.out.String(style.Cross).Foreground(termenv.RGBColor(string(style.Red))).String()
		desc, _, _ := strings.Cut(s.Status().Description, "\n")
		line = fmt.Sprintf("%s %s skipped: %s", symbol, repo, desc)
	} else {
		symbol := p.out.String(style.Check).Foreground(termenv.RGBColor(string(style.Green))).String()
		detail := p.out.String(fmt.Sprintf("%d rows in %v", rows, elapsed)).Faint().String()
		line = fmt.Sprintf("%s %s %s", symbol, repo, detail)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = p.out.WriteString(line + "\n")
}

// ForceFlush does nothing; lines are written synchronously.
func (p *Progress) ForceFlush(context.Context) error {
	return nil
}

// Shutdown does nothing.
func (p *Progress) Shutdown(context.Context) error {
	return nil
}
