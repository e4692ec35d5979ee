package store

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/logger"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/migrations"
)

// DB wraps a *sql.DB with the dialect-specific pieces the key-value
// repository needs: a statement builder with the right placeholder format,
// an error classifier and the goose dialect name.
type DB struct {
	*sql.DB
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	dialect            string
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations for the DB's dialect.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, db.dialect); err != nil {
		return fmt.Errorf("migrate %s: %w", db.dialect, err)
	}
	return nil
}

// classify wraps err with the store sentinel chosen by the dialect's
// classifier, keeping the driver error in the chain.
func (db *DB) classify(base, err error) error {
	if db.errorClassificator != nil {
		if sentinel := db.errorClassificator.Classify(err); sentinel != nil {
			return fmt.Errorf("%w: %w: %w", sentinel, base, err)
		}
	}
	return fmt.Errorf("%w: %w", base, err)
}
