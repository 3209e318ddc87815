package telemetry_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/gitgeo/internal/adapters/telemetry"
	"go.trai.ch/gitgeo/internal/core/domain"
	"go.trai.ch/gitgeo/internal/core/ports"
)

var (
	_ ports.Tracer           = (*telemetry.OTelTracer)(nil)
	_ ports.Tracer           = (*telemetry.NoOpTracer)(nil)
	_ sdktrace.SpanProcessor = (*telemetry.Progress)(nil)
	_ ports.Span             = (*telemetry.OTelSpan)(nil)
)

func TestOTelTracer_RecordsSpans(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := telemetry.NewOTelTracer(tp, "test")

	ctx, parent := tracer.Start(context.Background(), domain.SpanScanRepository)
	parent.SetAttribute(domain.AttrRepository, "octocat/Hello-World")
	parent.SetAttribute(domain.AttrRows, 2)

	_, child := tracer.Start(ctx, domain.SpanResolveContributor)
	child.SetAttribute(domain.AttrContributor, domain.ContributorRef("alice"))
	child.RecordError(errors.New("boom"))
	child.End()
	parent.End()

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, domain.SpanResolveContributor, spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "boom", spans[0].Status().Description)
	assert.Contains(t, spans[0].Attributes(), attribute.String(domain.AttrContributor, "alice"))
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())

	assert.Equal(t, codes.Unset, spans[1].Status().Code)
	assert.Contains(t, spans[1].Attributes(), attribute.Int(domain.AttrRows, 2))
}

func TestOTelSpan_RecordNilError(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)), "test")

	_, span := tracer.Start(context.Background(), "noop")
	span.RecordError(nil)
	span.End()

	require.Len(t, recorder.Ended(), 1)
	assert.Equal(t, codes.Unset, recorder.Ended()[0].Status().Code)
}

func TestProgress(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewProgress(&buf)))
	tracer := telemetry.NewOTelTracer(tp, "test")
	ctx := context.Background()

	_, ok := tracer.Start(ctx, domain.SpanScanRepository)
	ok.SetAttribute(domain.AttrRepository, "octocat/Hello-World")
	ok.SetAttribute(domain.AttrRows, 3)
	ok.End()

	_, contributor := tracer.Start(ctx, domain.SpanResolveContributor)
	contributor.End()

	_, failed := tracer.Start(ctx, domain.SpanScanRepository)
	failed.SetAttribute(domain.AttrRepository, "octocat/missing")
	failed.RecordError(errors.New("failed to fetch"))
	failed.End()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2, "only repository spans are reported")
	assert.Contains(t, string(lines[0]), "✓ octocat/Hello-World 3 rows in ")
	assert.Equal(t, "✗ octocat/missing skipped: failed to fetch", string(lines[1]))
}

func TestNoOpTracer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	got, span := telemetry.NewNoOpTracer().Start(ctx, "anything")
	assert.Equal(t, ctx, got)
	assert.NotPanics(t, func() {
		span.SetAttribute("k", "v")
		span.RecordError(errors.New("ignored"))
		span.End()
	})
}
