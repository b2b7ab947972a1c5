package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sokol111/ecommerce-problem/pkg/core/logger"
	"github.com/Sokol111/ecommerce-problem/pkg/problem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewErrorHandler(t *testing.T) {
	// Setup logger context
	testLogger := zap.NewNop()
	ctx := logger.With(context.Background(), testLogger)

	handler := NewErrorHandler()

	t.Run("returns RFC7807 Problem response", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/v1/products", nil)
		r = r.WithContext(ctx)

		testErr := errors.New("something went wrong")
		handler(ctx, w, r, testErr)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, problem.ContentType, w.Header().Get("Content-Type"))

		var p problem.Error
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))

		assert.Equal(t, "about:blank", p.Type())
		assert.Equal(t, "Internal Server Error", p.Title())
		require.NotNil(t, p.Status())
		assert.Equal(t, http.StatusInternalServerError, p.Status().Code())
		assert.Equal(t, "something went wrong", p.Detail())
		assert.Equal(t, "/api/v1/products", p.Instance())
	})

	t.Run("keeps fields of an error that already is a problem", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/v1/orders/123", nil)
		r = r.WithContext(ctx)

		handler(ctx, w, r, problem.FromStatus(
			problem.Status(http.StatusNotFound),
			problem.WithDetail("Order 123"),
			problem.WithInstance("https://example.org/orders/123")))

		assert.Equal(t, http.StatusNotFound, w.Code)

		var p problem.Error
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))

		assert.Equal(t, "Not Found", p.Title())
		assert.Equal(t, "Order 123", p.Detail())
		assert.Equal(t, "https://example.org/orders/123", p.Instance())
	})

	t.Run("fills the instance from the request path", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("DELETE", "/api/v1/orders/9", nil)
		r = r.WithContext(ctx)

		handler(ctx, w, r, problem.FromStatus(problem.Status(http.StatusConflict)))

		var p problem.Error
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))

		assert.Equal(t, "/api/v1/orders/9", p.Instance())
	})

	t.Run("logs the error with the problem attached", func(t *testing.T) {
		core, recorded := observer.New(zapcore.ErrorLevel)
		logCtx := logger.With(context.Background(), zap.New(core))

		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/v1/products", nil)
		r = r.WithContext(logCtx)

		handler(logCtx, w, r, errors.New("kaboom"))

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Equal(t, "Request error", logs[0].Message)

		fields := logs[0].ContextMap()
		assert.Equal(t, "GET", fields["method"])
		assert.Equal(t, "/api/v1/products", fields["path"])
		assert.Equal(t, int64(http.StatusInternalServerError), fields["status"])
		assert.Equal(t, "kaboom", fields["error"])
		require.Contains(t, fields, "problem")
	})
}
