package adapter

import "errors"

var (
	// ErrBadRequest is returned for 4xx responses and for requests that
	// cannot be sent at all (unknown kind, unencodable payload).
	ErrBadRequest = errors.New("bad request")

	// ErrBackendUnavailable is returned for 5xx responses and transport
	// failures such as timeouts or refused connections.
	ErrBackendUnavailable = errors.New("ai backend unavailable")

	// ErrInvalidResponse is returned when a 2xx body is not a response
	// object.
	ErrInvalidResponse = errors.New("invalid ai backend response")
)
