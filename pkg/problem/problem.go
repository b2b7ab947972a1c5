// Package problem provides Problem Details for HTTP APIs (RFC 7807) as an
// immutable value type, together with a chainable builder, status-based
// factories, a canonical string rendering and a problem+json codec.
package problem

// DefaultType is the sentinel problem type URI. It stands for "no specific
// problem-type URI was registered, see the status code instead".
const DefaultType = "about:blank"

// ContentType is the media type for problem documents over HTTP.
const ContentType = "application/problem+json"

// Problem is the read-only contract every problem value satisfies.
//
// Values are immutable once constructed and safe to share across any
// number of concurrent readers. All accessors are total: Type and
// Parameters have documented fallbacks, the remaining fields report
// absence through their zero value (empty string, nil status).
type Problem interface {
	// Type returns an absolute URI identifying the problem category.
	// It is never empty; values that were never given a type report
	// DefaultType.
	Type() string

	// Title returns a short, human-readable summary of the problem type.
	// It should not change between occurrences of the same type, aside
	// from localisation. Empty means absent.
	Title() string

	// Status returns the status descriptor reported by the origin, or
	// nil if none was reported.
	Status() StatusType

	// Detail returns the human-readable explanation specific to this one
	// occurrence, as opposed to Title which describes the class of
	// problem. Empty means absent.
	Detail() string

	// Instance returns an absolute URI identifying this specific
	// occurrence. Dereferencing it is optional. Empty means absent.
	Instance() string

	// Parameters returns the extension attributes attached to the
	// problem beyond the five named fields. It is never nil; the
	// returned mapping is a copy, so mutating it does not affect the
	// problem.
	Parameters() *Parameters
}
