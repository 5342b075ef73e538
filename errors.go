package adopcion

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an API failure into one of a closed set of variants.
// Classification happens exactly once, at the client boundary; callers
// decide view-specific handling from the Kind.
type Kind int

const (
	// KindNetwork means no response was received: offline, DNS failure,
	// or the client-side timeout expired.
	KindNetwork Kind = iota
	// KindAuthRejected is an HTTP 401: the session token is invalid or
	// expired.
	KindAuthRejected
	// KindForbidden is an HTTP 403.
	KindForbidden
	// KindNotFound is an HTTP 404.
	KindNotFound
	// KindValidation is an HTTP 422 carrying field-level messages.
	KindValidation
	// KindServer is an HTTP 500.
	KindServer
	// KindOther is any other non-2xx status.
	KindOther
)

// String returns a short identifier for the kind.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindAuthRejected:
		return "auth_rejected"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindServer:
		return "server"
	default:
		return "other"
	}
}

// Sentinel errors for errors.Is checks against classified failures.
var (
	ErrNetwork      = errors.New("adopcion: no response from server")
	ErrAuthRejected = errors.New("adopcion: authentication rejected")
	ErrForbidden    = errors.New("adopcion: forbidden")
	ErrNotFound     = errors.New("adopcion: resource not found")
	ErrValidation   = errors.New("adopcion: validation failed")
	ErrServer       = errors.New("adopcion: server error")
)

// Error is the failure type returned by every client operation. Every
// failed call yields exactly one *Error; nothing is swallowed.
type Error struct {
	// Kind is the classified failure variant.
	Kind Kind
	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int
	// Message is the backend-supplied message. Empty means the backend
	// sent none; nothing synthesizes a display string in its place, so
	// the notice policy can distinguish "no message" from "has message".
	Message string
	// Fields carries per-field validation messages on KindValidation.
	Fields map[string]string
	// Err is the underlying transport error on KindNetwork.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Kind == KindNetwork && e.Err != nil:
		return fmt.Sprintf("adopcion: request failed: %v", e.Err)
	case e.Message != "":
		return fmt.Sprintf("adopcion: HTTP %d: %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("adopcion: HTTP %d (%s)", e.StatusCode, e.Kind)
	}
}

// Unwrap exposes the underlying transport error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is maps the classified kind onto the package sentinel errors so callers
// can use errors.Is without inspecting status codes.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindNetwork:
		return target == ErrNetwork
	case KindAuthRejected:
		return target == ErrAuthRejected
	case KindForbidden:
		return target == ErrForbidden
	case KindNotFound:
		return target == ErrNotFound
	case KindValidation:
		return target == ErrValidation
	case KindServer:
		return target == ErrServer
	default:
		return false
	}
}

// IsNotFound reports whether the error is a classified 404.
func (e *Error) IsNotFound() bool { return e.Kind == KindNotFound }

// IsAuthRejected reports whether the error is a classified 401.
func (e *Error) IsAuthRejected() bool { return e.Kind == KindAuthRejected }

// IsForbidden reports whether the error is a classified 403.
func (e *Error) IsForbidden() bool { return e.Kind == KindForbidden }

// IsValidation reports whether the error is a classified 422.
func (e *Error) IsValidation() bool { return e.Kind == KindValidation }

// IsNetwork reports whether no response was received at all.
func (e *Error) IsNetwork() bool { return e.Kind == KindNetwork }

// AsError extracts a classified *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// classifyStatus maps an HTTP status code to a Kind.
func classifyStatus(status int) Kind {
	switch status {
	case http.StatusUnauthorized:
		return KindAuthRejected
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusUnprocessableEntity:
		return KindValidation
	case http.StatusInternalServerError:
		return KindServer
	default:
		return KindOther
	}
}

// errorBody is the backend's failure envelope. The message sometimes
// arrives nested under "error", sometimes flat.
type errorBody struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
	Error   *struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	} `json:"error"`
}

// parseError builds the classified *Error for a non-2xx response.
func parseError(status int, body []byte) *Error {
	e := &Error{
		Kind:       classifyStatus(status),
		StatusCode: status,
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		e.Message = eb.Message
		e.Fields = eb.Errors
		if eb.Error != nil {
			if e.Message == "" {
				e.Message = eb.Error.Message
			}
			if e.Fields == nil {
				e.Fields = eb.Error.Errors
			}
		}
	}
	return e
}

// networkError wraps a transport failure (no response received).
func networkError(err error) *Error {
	return &Error{Kind: KindNetwork, Err: err}
}
