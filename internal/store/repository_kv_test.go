package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/logger"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestKVRepo(t *testing.T) (*sqlKeyValueStorage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &sqlKeyValueStorage{
		db: &DB{
			DB:                 db,
			builder:            sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
			errorClassificator: NewPostgresErrorClassifier(),
			dialect:            "postgres",
			logger:             l,
		},
		logger: l,
		now:    func() time.Time { return fixedNow },
	}
	t.Cleanup(func() { db.Close() })
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestKVGet_Success(t *testing.T) {
	repo, mock := newTestKVRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT entry_value FROM kv_entries WHERE entry_key = $1")).
		WithArgs("familyconnect.vault").
		WillReturnRows(sqlmock.NewRows([]string{"entry_value"}).AddRow("fcvault$1$..."))

	got, err := repo.Get(context.Background(), "familyconnect.vault")
	require.NoError(t, err)
	assert.Equal(t, "fcvault$1$...", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVGet_NotFound(t *testing.T) {
	repo, mock := newTestKVRepo(t)

	mock.ExpectQuery("SELECT entry_value FROM kv_entries").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVGet_ConnectionFailure(t *testing.T) {
	repo, mock := newTestKVRepo(t)

	mock.ExpectQuery("SELECT entry_value FROM kv_entries").
		WithArgs("k").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, ErrExecutingQuery)

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr), "driver error stays in the chain")
}

func TestKVSet_Success(t *testing.T) {
	repo, mock := newTestKVRepo(t)

	mock.ExpectExec("INSERT INTO kv_entries").
		WithArgs("k", "v", fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Set(context.Background(), "k", "v"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVSet_DiskFull(t *testing.T) {
	repo, mock := newTestKVRepo(t)

	mock.ExpectExec("INSERT INTO kv_entries").
		WithArgs("k", "v", fixedNow).
		WillReturnError(pgError(pgerrcode.DiskFull))

	err := repo.Set(context.Background(), "k", "v")
	assert.ErrorIs(t, err, ErrQuotaExceeded)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestKVSet_UnclassifiedError(t *testing.T) {
	repo, mock := newTestKVRepo(t)

	mock.ExpectExec("INSERT INTO kv_entries").
		WillReturnError(errors.New("boom"))

	err := repo.Set(context.Background(), "k", "v")
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrQuotaExceeded)
	assert.NotErrorIs(t, err, ErrStorageUnavailable)
}

func TestKVDelete(t *testing.T) {
	repo, mock := newTestKVRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM kv_entries WHERE entry_key = $1")).
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "k"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKV_EmptyKey(t *testing.T) {
	repo, mock := newTestKVRepo(t)
	ctx := context.Background()

	_, err := repo.Get(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyKey)
	assert.ErrorIs(t, repo.Set(ctx, "", "v"), ErrEmptyKey)
	assert.ErrorIs(t, repo.Delete(ctx, ""), ErrEmptyKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVClose(t *testing.T) {
	repo, mock := newTestKVRepo(t)
	mock.ExpectClose()

	require.NoError(t, repo.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
