package middleware

import (
	"errors"

	"github.com/Sokol111/ecommerce-problem/pkg/core/logger"
	"github.com/Sokol111/ecommerce-problem/pkg/problem"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// errorLoggerMiddleware logs errors from Gin context. Problems log as
// structured objects, other errors as plain text.
func errorLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		log := logger.Get(c.Request.Context())
		for _, e := range c.Errors {
			fields := append(requestFields(c),
				zap.Int("status", c.Writer.Status()),
				zap.String("error", e.Error()),
			)

			var p *problem.Error
			if errors.As(e.Err, &p) {
				fields = append(fields, zap.Object("problem", p))
			}

			log.Error("Request error", fields...)
		}
	}
}

// ErrorLoggerModule provides error logger middleware.
func ErrorLoggerModule(priority int) fx.Option {
	return fx.Provide(
		fx.Annotate(
			func() Middleware {
				return Middleware{Priority: priority, Handler: errorLoggerMiddleware()}
			},
			fx.ResultTags(`group:"gin_mw"`),
		),
	)
}
