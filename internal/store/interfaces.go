package store

import (
	"context"
	"io"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValuePersistence is the local storage surface the vault writes to. It
// mirrors the browser's localStorage: string keys, string values, one value
// per key, each write replacing the previous value as a unit. No
// transactional semantics are offered beyond a single Set.
type KeyValuePersistence interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, fully replacing any previous value.
	// ErrQuotaExceeded is returned when the backend is out of space.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Persistence is a [KeyValuePersistence] that holds resources which must be
// released on shutdown.
type Persistence interface {
	KeyValuePersistence
	io.Closer
}

// ErrorClassificator maps a driver-specific error to a store sentinel
// ([ErrQuotaExceeded], [ErrStorageUnavailable]) or nil when the error has no
// special meaning.
type ErrorClassificator interface {
	Classify(err error) error
}
