package modules

import (
	"github.com/Sokol111/ecommerce-problem/pkg/http/handler"
	"github.com/Sokol111/ecommerce-problem/pkg/http/middleware"
	"go.uber.org/fx"
)

// NewHTTPModule provides the full problem-details HTTP surface: the Gin
// middleware chain (recovery, error logging, RFC 7807 conversion) plus the
// ogen error handler.
//
// Example usage:
//
//	fx.New(
//	    modules.NewHTTPModule(),
//	    // ... application modules consuming *gin.Engine ...
//	)
func NewHTTPModule() fx.Option {
	return fx.Options(
		middleware.NewGinModule(),
		handler.NewErrorHandlerModule(),
	)
}
