package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/Sokol111/ecommerce-problem/pkg/core/logger"
	"github.com/Sokol111/ecommerce-problem/pkg/problem"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// recoveryMiddleware handles panics and converts them to 500 problem responses.
func recoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				fields := append(requestFields(c),
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()),
				)
				logger.Get(c.Request.Context()).Error("Panic recovered", fields...)

				// The panic value stays out of the response body on purpose.
				writeProblem(c, problem.FromStatus(
					problem.Status(http.StatusInternalServerError),
					problem.WithInstance(c.Request.URL.Path)))
			}
		}()
		c.Next()
	}
}

// RecoveryModule provides recovery middleware.
func RecoveryModule(priority int) fx.Option {
	return fx.Provide(
		fx.Annotate(
			func() Middleware {
				return Middleware{Priority: priority, Handler: recoveryMiddleware()}
			},
			fx.ResultTags(`group:"gin_mw"`),
		),
	)
}
