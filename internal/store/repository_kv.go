package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/logger"
)

// sqlKeyValueStorage implements [Persistence] on a single kv_entries table.
type sqlKeyValueStorage struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLKeyValueStorage wraps an opened and migrated [DB].
func NewSQLKeyValueStorage(db *DB, log *logger.Logger) Persistence {
	return &sqlKeyValueStorage{
		db:     db,
		logger: log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *sqlKeyValueStorage) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	query, args, err := buildGetValueQuery(s.db.builder, key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqlKeyValueStorage.Get").
			Str("key", key).
			Msg("failed to query value")
		return "", s.db.classify(ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqlKeyValueStorage) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := buildUpsertValueQuery(s.db.builder, key, value, s.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqlKeyValueStorage.Set").
			Str("key", key).
			Msg("failed to execute upsert")
		return s.db.classify(ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlKeyValueStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := buildDeleteValueQuery(s.db.builder, key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqlKeyValueStorage.Delete").
			Str("key", key).
			Msg("failed to execute delete")
		return s.db.classify(ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlKeyValueStorage) Close() error {
	return s.db.Close()
}
