// Package middleware provides Gin middleware that turns errors raised by
// handlers into RFC 7807 problem responses, with structured logging and
// panic recovery, wired together through fx modules.
package middleware

import (
	"sort"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Middleware represents a Gin middleware with priority.
// Lower priority runs earlier in the chain.
type Middleware struct {
	Priority int
	Handler  gin.HandlerFunc
}

type mwIn struct {
	fx.In
	Middlewares []Middleware `group:"gin_mw"`
}

// Sorted orders middlewares by ascending priority and drops entries with a
// nil handler.
func Sorted(mws []Middleware) []gin.HandlerFunc {
	sort.Slice(mws, func(i, j int) bool { return mws[i].Priority < mws[j].Priority })

	handlers := make([]gin.HandlerFunc, 0, len(mws))
	for _, m := range mws {
		if m.Handler == nil {
			continue
		}
		handlers = append(handlers, m.Handler)
	}
	return handlers
}

// requestFields returns common request fields for logging.
func requestFields(c *gin.Context) []zap.Field {
	return []zap.Field{
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("query", c.Request.URL.RawQuery),
		zap.String("client_ip", c.ClientIP()),
	}
}
