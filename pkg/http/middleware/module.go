package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// NewGinModule provides the middleware chain plus a ready Gin engine.
// Middleware execution order (by priority, lower = earlier):
//
//	10 - Recovery    - catches panics, answers with a 500 problem
//	20 - ErrorLogger - logs errors from handlers
//	30 - Problem     - converts errors to RFC 7807 responses
func NewGinModule() fx.Option {
	return fx.Options(
		RecoveryModule(10),
		ErrorLoggerModule(20),
		ProblemModule(30),
		fx.Provide(provideGinAndHandler),
	)
}

func provideGinAndHandler(in mwIn) (*gin.Engine, http.Handler) {
	e := newEngine(in.Middlewares)
	return e, e
}

func newEngine(mws []Middleware) *gin.Engine {
	engine := gin.New(func(e *gin.Engine) {
		e.ContextWithFallback = true
	})

	for _, handler := range Sorted(mws) {
		engine.Use(handler)
	}

	return engine
}
