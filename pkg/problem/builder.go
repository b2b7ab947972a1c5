package problem

import "fmt"

// Builder assembles an immutable problem value. All setters return the
// receiver for chaining; the terminal Build produces an independent
// snapshot, so a builder may be reused after building.
//
// A builder is not safe for concurrent use; confine each instance to one
// goroutine until Build has been called.
type Builder struct {
	typ      string
	title    string
	status   StatusType
	detail   string
	instance string
	params   Parameters
	cause    error
}

// NewBuilder returns an empty builder. Building it right away yields a
// problem with the DefaultType sentinel, empty parameters and nothing else.
func NewBuilder() *Builder {
	return &Builder{}
}

// From seeds a builder with the fields of an existing problem, so callers
// can derive a modified copy without touching the original. The causal
// predecessor is carried over when the source exposes Unwrap.
func From(p Problem) *Builder {
	b := NewBuilder().
		WithTitle(p.Title()).
		WithStatus(p.Status()).
		WithDetail(p.Detail()).
		WithInstance(p.Instance())
	if typ := p.Type(); typ != DefaultType {
		b.WithType(typ)
	}
	p.Parameters().Each(func(key string, value any) {
		b.params.Set(key, value)
	})
	if wrapped, ok := p.(interface{ Unwrap() error }); ok {
		b.WithCause(wrapped.Unwrap())
	}
	return b
}

// WithType sets the problem type URI. The value is used verbatim.
func (b *Builder) WithType(typ string) *Builder {
	b.typ = typ
	return b
}

// WithTitle sets the short human-readable summary.
func (b *Builder) WithTitle(title string) *Builder {
	b.title = title
	return b
}

// WithStatus sets the status descriptor.
func (b *Builder) WithStatus(status StatusType) *Builder {
	b.status = status
	return b
}

// WithDetail sets the occurrence-specific explanation.
func (b *Builder) WithDetail(detail string) *Builder {
	b.detail = detail
	return b
}

// WithInstance sets the occurrence URI. The value is used verbatim; no
// check is made that it is actually absolute.
func (b *Builder) WithInstance(instance string) *Builder {
	b.instance = instance
	return b
}

// WithCause sets the causal predecessor exposed by Error.Unwrap.
func (b *Builder) WithCause(cause error) *Builder {
	b.cause = cause
	return b
}

// With adds an extension attribute. The reserved member names type, title,
// status, detail and instance route to the corresponding field setter so
// they can never collide with the named members in serialized form; for
// status the value must be a StatusType or an int, anything else is
// dropped.
func (b *Builder) With(key string, value any) *Builder {
	switch key {
	case "type":
		return b.WithType(fmt.Sprint(value))
	case "title":
		return b.WithTitle(fmt.Sprint(value))
	case "detail":
		return b.WithDetail(fmt.Sprint(value))
	case "instance":
		return b.WithInstance(fmt.Sprint(value))
	case "status":
		switch status := value.(type) {
		case StatusType:
			return b.WithStatus(status)
		case int:
			return b.WithStatus(Status(status))
		}
		return b
	}
	b.params.Set(key, value)
	return b
}

// Build produces the immutable problem value. The parameter mapping is
// cloned, so later changes to the builder do not leak into the value.
func (b *Builder) Build() *Error {
	return &Error{
		typ:      b.typ,
		title:    b.title,
		status:   b.status,
		detail:   b.detail,
		instance: b.instance,
		params:   b.params.Clone(),
		cause:    b.cause,
	}
}
