package function

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var functionTracer = otel.Tracer("ihl-standings/internal/interfaces/function")

// startSpan opens the invocation span. Lambda invocations arrive without a
// parent, so this is the root of the trace unless a gateway propagated one.
func startSpan(ctx context.Context, name string, method Method) (context.Context, trace.Span) {
	return functionTracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attribute.String("http.request.method", string(method))),
	)
}
