package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. If err is nil or is not
// a PostgreSQL driver error, nil is returned.
func (c *PostgresErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return nil
}

// ClassifyPgError maps a *pgconn.PgError to a store sentinel based on the
// PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
// Quota codes ([ErrQuotaExceeded]):
//   - Class 53: insufficient resources (53000, 53100, 53200)
//   - Class 54: program limit exceeded (54000)
//
// Availability codes ([ErrStorageUnavailable]):
//   - Class 08: connection exceptions (08000, 08003, 08006)
//   - Class 57: operator intervention (57P01, 57P03)
//   - Class 25: read-only transaction (25006)
//
// Any other code returns nil.
func ClassifyPgError(pgErr *pgconn.PgError) error {
	switch pgErr.Code {
	case pgerrcode.InsufficientResources,
		pgerrcode.DiskFull,
		pgerrcode.OutOfMemory,
		pgerrcode.ProgramLimitExceeded:
		return ErrQuotaExceeded

	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.AdminShutdown,
		pgerrcode.CannotConnectNow,
		pgerrcode.ReadOnlySQLTransaction:
		return ErrStorageUnavailable
	}

	return nil
}
