package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type pageKey struct{}

// pageLabel carries the served page name from the handler back to
// instrument.
type pageLabel struct {
	name string
}

func setPage(ctx context.Context, name string) {
	if l, ok := ctx.Value(pageKey{}).(*pageLabel); ok {
		l.name = name
	}
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("htmldoom.page", name))
}

// instrument traces, logs and counts every request.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ctx, span := s.tracer.Start(r.Context(), "htmldoom.request",
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("htmldoom.path", r.URL.Path),
			),
		)
		defer span.End()

		label := &pageLabel{}
		ctx = context.WithValue(ctx, pageKey{}, label)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		size := ww.BytesWritten()
		span.SetAttributes(
			attribute.Int("http.status_code", status),
			attribute.Int("htmldoom.bytes", size),
		)
		if status >= http.StatusBadRequest {
			span.SetStatus(codes.Error, http.StatusText(status))
		} else {
			span.SetStatus(codes.Ok, "")
		}

		page := label.name
		if page == "" {
			// Unknown paths share one label.
			page = "unmatched"
		}
		elapsed := time.Since(start)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", size,
			"duration", elapsed,
		)
		if s.config.Metrics != nil {
			s.config.Metrics.ObserveRequest(page, status, elapsed, size)
		}
	})
}
