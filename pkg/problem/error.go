package problem

// Error is the concrete problem value produced by Builder.Build and the
// status factories. Besides satisfying Problem it implements the standard
// error interface, so a problem can travel through normal Go error
// propagation and carry a causal predecessor for errors.Is / errors.As.
//
// All fields are unexported and set exactly once during construction; an
// Error never changes after it has been handed to a caller.
type Error struct {
	typ      string
	title    string
	status   StatusType
	detail   string
	instance string
	params   *Parameters
	cause    error
}

var (
	_ Problem = (*Error)(nil)
	_ error   = (*Error)(nil)
)

// Type returns the problem type URI, falling back to DefaultType.
func (e *Error) Type() string {
	if e.typ == "" {
		return DefaultType
	}
	return e.typ
}

func (e *Error) Title() string { return e.title }

func (e *Error) Status() StatusType { return e.status }

func (e *Error) Detail() string { return e.detail }

func (e *Error) Instance() string { return e.instance }

// Parameters returns a copy of the extension attributes, never nil.
func (e *Error) Parameters() *Parameters {
	return e.params.Clone()
}

// Error returns the canonical rendering, e.g.
// "about:blank{404, Not Found, Order 123}".
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return Render(e)
}

// String returns the same canonical rendering as Error.
func (e *Error) String() string { return e.Error() }

// Unwrap returns the causal predecessor, or nil.
func (e *Error) Unwrap() error { return e.cause }
