package opensilex

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed request. Every error surfaced by the
// transport core carries exactly one kind; the Response constructor is the
// only place that maps kinds onto envelopes.
type ErrorKind int

const (
	// KindTransport - DNS/connection/timeout failure before any HTTP response.
	KindTransport ErrorKind = iota + 1
	// KindAuthentication - credentials rejected by the auth endpoint, or a
	// 200 auth response missing the expected token.
	KindAuthentication
	// KindTokenExpired - 401 on a non-auth call that survived the single
	// re-authentication retry.
	KindTokenExpired
	// KindValidation - 4xx from a resource endpoint.
	KindValidation
	// KindServer - 5xx from any endpoint.
	KindServer
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindAuthentication:
		return "authentication"
	case KindTokenExpired:
		return "token expired"
	case KindValidation:
		return "validation"
	case KindServer:
		return "server"
	}
	return "unknown"
}

// RequestError is the error type returned by the transport core. StatusCode
// is zero when no HTTP response was received.
type RequestError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Errors     []string
	cause      error
}

func (e *RequestError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *RequestError) Unwrap() error {
	return e.cause
}

var (
	// ErrUnrecognizedResponseShape is returned by ExtractURI when a creation
	// response matches none of the known result shapes.
	ErrUnrecognizedResponseShape = errors.New("unrecognized response shape")

	// ErrPageLimitExceeded is returned by CollectAll when the remote service
	// never produces a short page within the configured page bound.
	ErrPageLimitExceeded = errors.New("page limit exceeded")
)
