package middleware

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Sokol111/ecommerce-problem/pkg/problem"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

// problemMiddleware converts Gin errors to Problem Details (RFC 7807) responses.
func problemMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only handle if there are errors and response hasn't been written yet
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		writeProblem(c, buildProblem(c, c.Errors[0]))
	}
}

// buildProblem derives the problem document for the first Gin error.
// Handlers can hand over a ready problem either as the error itself or via
// Meta; anything else becomes a generic problem for the written status.
func buildProblem(c *gin.Context, ginErr *gin.Error) *problem.Error {
	p, ok := ginErr.Meta.(*problem.Error)
	if !ok && !errors.As(ginErr.Err, &p) {
		status := c.Writer.Status()
		if status == 0 || status == http.StatusOK {
			status = http.StatusInternalServerError
		}

		p = problem.FromStatus(problem.Status(status),
			problem.WithDetail(ginErr.Error()),
			problem.WithInstance(c.Request.URL.Path))
	}

	b := problem.From(p)
	if p.Instance() == "" {
		// Mint an occurrence URI so every emitted problem is addressable.
		b.WithInstance("urn:uuid:" + uuid.NewString())
	}
	if _, set := p.Parameters().Get("traceId"); !set {
		if sc := trace.SpanContextFromContext(c.Request.Context()); sc.IsValid() {
			b.With("traceId", sc.TraceID().String())
		}
	}
	return b.Build()
}

// writeProblem emits the application/problem+json response.
func writeProblem(c *gin.Context, p *problem.Error) {
	status := http.StatusInternalServerError
	if s := p.Status(); s != nil {
		status = s.Code()
	}

	body, err := json.Marshal(p)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(status, problem.ContentType, body)
	c.Abort()
}

// ProblemModule provides problem details middleware.
func ProblemModule(priority int) fx.Option {
	return fx.Provide(
		fx.Annotate(
			func() Middleware {
				return Middleware{Priority: priority, Handler: problemMiddleware()}
			},
			fx.ResultTags(`group:"gin_mw"`),
		),
	)
}
