package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestClassifyPgError(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{pgerrcode.DiskFull, ErrQuotaExceeded},
		{pgerrcode.InsufficientResources, ErrQuotaExceeded},
		{pgerrcode.OutOfMemory, ErrQuotaExceeded},
		{pgerrcode.ProgramLimitExceeded, ErrQuotaExceeded},
		{pgerrcode.ConnectionException, ErrStorageUnavailable},
		{pgerrcode.ConnectionFailure, ErrStorageUnavailable},
		{pgerrcode.AdminShutdown, ErrStorageUnavailable},
		{pgerrcode.CannotConnectNow, ErrStorageUnavailable},
		{pgerrcode.ReadOnlySQLTransaction, ErrStorageUnavailable},
		{pgerrcode.UniqueViolation, nil},
		{pgerrcode.SyntaxError, nil},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPgError(&pgconn.PgError{Code: tt.code}))
		})
	}
}

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Nil(t, c.Classify(nil))
	assert.Nil(t, c.Classify(errors.New("plain")))

	wrapped := fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgerrcode.DiskFull})
	assert.Equal(t, ErrQuotaExceeded, c.Classify(wrapped))
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, ErrQuotaExceeded, c.Classify(sqlite3.Error{Code: sqlite3.ErrFull}))
	assert.Equal(t, ErrStorageUnavailable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, ErrStorageUnavailable, c.Classify(fmt.Errorf("wrap: %w", sqlite3.Error{Code: sqlite3.ErrReadonly})))
	assert.Nil(t, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Nil(t, c.Classify(errors.New("plain")))
}
