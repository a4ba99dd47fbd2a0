package domaincheck

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport matches (via errors.Is) failures to send the request or
	// read the response, including context cancellation.
	ErrTransport = errors.New("domaincheck: transport failure")

	// ErrStatus matches responses with a status other than 200 OK.
	ErrStatus = errors.New("domaincheck: non-200 response")

	// ErrDecode matches 200 responses whose body is not valid JSON or lacks
	// a required field.
	ErrDecode = errors.New("domaincheck: invalid response body")

	// ErrInvalidEndpoint is returned by every call when Options.Endpoint is
	// not an absolute http or https URL.
	ErrInvalidEndpoint = errors.New("domaincheck: Options.Endpoint must be an absolute http(s) URL")

	// ErrInvalidEmail is returned by CheckEmail when no domain can be
	// extracted from the address. No request is made.
	ErrInvalidEmail = errors.New("domaincheck: invalid email address")
)

// ErrorKind classifies a failed lookup.
type ErrorKind int

const (
	// KindTransport means the request could not be sent or the response not read.
	KindTransport ErrorKind = iota + 1
	// KindStatus means the service answered with a status other than 200.
	KindStatus
	// KindDecode means a 200 body was not valid JSON or broke the response shape.
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is returned by CheckDomain and CheckEmail for every failed lookup.
// Use errors.As to inspect it, or errors.Is with ErrTransport, ErrStatus
// or ErrDecode to branch on the kind.
type Error struct {
	Kind ErrorKind
	// Domain is the domain that was requested.
	Domain string
	// StatusCode and Body are set for KindStatus. Body is the raw response text.
	StatusCode int
	Body       string
	// Err is the underlying cause for KindTransport and KindDecode.
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("domaincheck: received non-200 response (%d) for %q: %s", e.StatusCode, e.Domain, e.Body)
	case KindDecode:
		return fmt.Sprintf("domaincheck: decoding response for %q: %v", e.Domain, e.Err)
	default:
		return fmt.Sprintf("domaincheck: checking %q: %v", e.Domain, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrTransport:
		return e.Kind == KindTransport
	case ErrStatus:
		return e.Kind == KindStatus
	case ErrDecode:
		return e.Kind == KindDecode
	}
	return false
}
