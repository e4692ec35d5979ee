// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/config"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/logger"
)

// NewPersistence opens the key-value backend selected by cfg.Driver:
//   - "memory":   process-local map (values are lost on exit);
//   - "file":     one file per key under cfg.Dir;
//   - "sqlite":   kv_entries table in the SQLite database cfg.DSN;
//   - "postgres": kv_entries table in the PostgreSQL database cfg.DSN.
//
// SQL backends run pending migrations before returning.
func NewPersistence(ctx context.Context, cfg config.Storage, log *logger.Logger) (Persistence, error) {
	log.Info().Str("driver", cfg.Driver).Msg("creating new storage...")

	switch cfg.Driver {
	case config.DriverMemory:
		return NewMemoryStorage(cfg.QuotaBytes), nil
	case config.DriverFile:
		return NewFileStorage(cfg.Dir, cfg.QuotaBytes, log)
	case config.DriverSQLite, config.DriverPostgres:
		return newSQLPersistence(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func newSQLPersistence(ctx context.Context, cfg config.Storage, log *logger.Logger) (Persistence, error) {
	var (
		db  *DB
		err error
	)
	if cfg.Driver == config.DriverPostgres {
		db, err = NewConnectPostgres(ctx, cfg.DSN, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DSN, log)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.Driver, err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSQLKeyValueStorage(db, log), nil
}
