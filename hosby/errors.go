package hosby

import (
	"errors"
	"fmt"
	"net/http"
)

// Error categories. Every failure returned by the client wraps one of these,
// so callers can branch with errors.Is without string matching.
var (
	// ErrConfig is returned at construction time for missing or invalid
	// configuration, including HTTPS policy violations. Construction
	// errors are not recoverable by the client itself; reconstruct with
	// corrected configuration.
	ErrConfig = errors.New("hosby: invalid configuration")

	// ErrValidation is returned for per-call input errors, before any
	// I/O happens.
	ErrValidation = errors.New("hosby: invalid request")

	// ErrSigning is returned when the request signature cannot be
	// generated.
	ErrSigning = errors.New("hosby: request signing failed")

	// ErrToken is returned when the CSRF token cannot be fetched or is
	// missing from the bootstrap response.
	ErrToken = errors.New("hosby: csrf token unavailable")

	// ErrTransport is returned for network-level failures from the
	// underlying HTTP client.
	ErrTransport = errors.New("hosby: transport failure")
)

// Error is the normalized shape every per-call failure converges to,
// mirroring the wire-level error envelope {success:false, status,
// message}. Transport failures carry status 500.
type Error struct {
	Success bool   `json:"success"`
	Status  int    `json:"status"`
	Message string `json:"message"`

	// Extra holds any additional fields from an error response body,
	// minus the envelope keys.
	Extra map[string]any `json:"-"`

	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("hosby: request failed: status %d: %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

func newError(status int, message string, cause error) *Error {
	return &Error{Status: status, Message: message, cause: cause}
}

// normalizeError converts any failure into the standard *Error shape.
// Errors that are already normalized pass through verbatim; anything
// else becomes a 500.
func normalizeError(err error) *Error {
	var herr *Error
	if errors.As(err, &herr) {
		return herr
	}

	return newError(http.StatusInternalServerError, err.Error(), err)
}
