package server

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for strand handlers.
const defaultTracerName = "strand"

// startRenderSpan opens a span covering the render and response streaming
// for one request. The returned context carries the span for downstream
// instrumentation.
func startRenderSpan(r *http.Request, cfg Config) (context.Context, trace.Span) {
	tracer := otel.Tracer(cfg.TracerName)
	ctx, span := tracer.Start(r.Context(), "strand.render",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("http.method", r.Method),
			attribute.String("http.target", r.URL.Path),
		),
	)
	return ctx, span
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func finishRenderSpan(span trace.Span) {
	span.SetStatus(codes.Ok, "")
}
