package store

import "errors"

// Sentinel errors returned by [KeyValuePersistence] implementations. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by Get when nothing is stored under the key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrQuotaExceeded is returned when a write would exceed the configured
	// quota or the underlying medium is full.
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrStorageUnavailable is returned when the backend cannot be reached
	// or opened (e.g. a dropped database connection or a locked file).
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrEmptyKey is returned when an operation is called with an empty key.
	ErrEmptyKey = errors.New("empty storage key")

	// ErrUnsupportedDriver is returned by [NewPersistence] for an unknown
	// storage driver.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
)

// Low-level database operation errors. These are wrapped by the SQL
// implementation when a statement fails before any classification applies.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL statement
	// with the query builder fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning the stored value fails.
	ErrScanningRow = errors.New("failed to scan kv row")
)
