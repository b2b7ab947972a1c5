// Package handler provides an ogen ErrorHandler that answers every failed
// request with an RFC 7807 problem document.
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Sokol111/ecommerce-problem/pkg/core/logger"
	"github.com/Sokol111/ecommerce-problem/pkg/problem"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewErrorHandlerModule provides the error handler for ogen servers.
func NewErrorHandlerModule() fx.Option {
	return fx.Provide(NewErrorHandler)
}

// NewErrorHandler returns an ogen ErrorHandler that logs errors and writes
// application/problem+json responses. Errors that already are problems keep
// their fields; anything else is mapped through ogenerrors.ErrorCode.
func NewErrorHandler() ogenerrors.ErrorHandler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, err error) {
		p := problem.Ensure(err)

		b := problem.From(p)
		if p.Status() == nil || p.Status().Code() == http.StatusInternalServerError {
			if code := ogenerrors.ErrorCode(err); code != http.StatusInternalServerError {
				b.WithStatus(problem.Status(code)).WithTitle(http.StatusText(code))
			}
		}
		if p.Instance() == "" {
			b.WithInstance(r.URL.Path)
		}
		// Add trace ID if available
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			if _, set := p.Parameters().Get("traceId"); !set {
				b.With("traceId", sc.TraceID().String())
			}
		}
		p = b.Build()

		status := http.StatusInternalServerError
		if s := p.Status(); s != nil {
			status = s.Code()
		}

		log := logger.Get(ctx)
		log.Error("Request error",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("query", r.URL.RawQuery),
			zap.Int("status", status),
			zap.String("error", err.Error()),
			zap.Object("problem", p),
		)

		w.Header().Set("Content-Type", problem.ContentType)
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(p)
	}
}
