// Package tracing provides a shared OTel tracer helper for all domain packages.
//
// When no TracerProvider is registered (tests, local runs without OTel) the
// global no-op provider is used and every call is inert.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "medilabsai"

// Start creates a new span as a child of the span in ctx. The caller must
// call span.End().
//
//	ctx, span := tracing.Start(ctx, "contact.deliver",
//	    attribute.String("medilabsai.form.id", id),
//	)
//	defer span.End()
func Start(ctx context.Context, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, spanName, trace.WithAttributes(attrs...))
}
