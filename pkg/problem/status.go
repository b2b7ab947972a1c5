package problem

import (
	"net/http"
	"strconv"
)

// StatusType describes an HTTP status. Implementations supply at least the
// numeric code; the reason phrase is used by FromStatus to pre-fill the
// problem title.
type StatusType interface {
	Code() int
	Reason() string
}

// Status is a StatusType backed by the standard HTTP status catalog.
// Use it with the net/http constants, e.g. problem.Status(http.StatusNotFound).
type Status int

// Code returns the numeric status code.
func (s Status) Code() int { return int(s) }

// Reason returns the standard reason phrase for the code, or an empty
// string for codes the catalog does not know.
func (s Status) Reason() string { return http.StatusText(int(s)) }

func (s Status) String() string {
	if reason := s.Reason(); reason != "" {
		return strconv.Itoa(int(s)) + " " + reason
	}
	return strconv.Itoa(int(s))
}
