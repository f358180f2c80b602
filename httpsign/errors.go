package httpsign

import "errors"

var (
	// ErrInvalidKey is returned when key material is invalid (nil,
	// insufficient size, wrong type).
	ErrInvalidKey = errors.New("httpsign: invalid key material")

	// ErrEmptyPayload is returned when Sign is called with an empty
	// payload.
	ErrEmptyPayload = errors.New("httpsign: payload must not be empty")

	// ErrSignFailed is returned when the signing primitive fails or
	// produces an empty signature.
	ErrSignFailed = errors.New("httpsign: signing failed")
)
