package problem

import (
	"errors"
	"net/http"
)

// Option tweaks the builder used by FromStatus and Wrap.
type Option func(*Builder)

// WithDetail sets the occurrence-specific detail message.
func WithDetail(detail string) Option {
	return func(b *Builder) { b.WithDetail(detail) }
}

// WithInstance sets the occurrence URI. The value is used verbatim.
func WithInstance(instance string) Option {
	return func(b *Builder) { b.WithInstance(instance) }
}

// FromStatus produces a ready-to-use problem from a status descriptor
// alone. The title is pre-filled from the descriptor's reason phrase, the
// type stays on the DefaultType sentinel and no extension attributes are
// set. Detail and instance are added through options:
//
//	problem.FromStatus(problem.Status(http.StatusNotFound))
//	problem.FromStatus(problem.Status(http.StatusNotFound), problem.WithDetail("Order 123"))
//	problem.FromStatus(problem.Status(http.StatusNotFound), problem.WithInstance("https://example.org/"))
//	problem.FromStatus(problem.Status(http.StatusNotFound),
//		problem.WithDetail("Order 123"), problem.WithInstance("https://example.org/"))
//
// The status must not be nil; that precondition is owned by the caller.
func FromStatus(status StatusType, opts ...Option) *Error {
	b := NewBuilder().
		WithStatus(status).
		WithTitle(status.Reason())
	for _, opt := range opts {
		opt(b)
	}
	return b.Build()
}

// Wrap builds a problem from a status descriptor and attaches cause as the
// causal predecessor, preserved for errors.Is / errors.As via Unwrap.
func Wrap(cause error, status StatusType, opts ...Option) *Error {
	b := NewBuilder().
		WithStatus(status).
		WithTitle(status.Reason()).
		WithCause(cause)
	for _, opt := range opts {
		opt(b)
	}
	return b.Build()
}

// Ensure converts any error into a *Error.
//
// Behavior:
//   - nil input yields nil
//   - an error that already is (or wraps) a *Error is returned as-is
//   - anything else becomes a 500 problem with the error text as detail
//     and the original error as cause
func Ensure(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return e
	}

	return Wrap(err, Status(http.StatusInternalServerError), WithDetail(err.Error()))
}
