package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/gitgeo/internal/core/ports"
)

// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewProgress(os.Stderr)))
			otel.SetTracerProvider(tp)
			return NewOTelTracer(tp, InstrumentationName), nil
		},
	})
}
