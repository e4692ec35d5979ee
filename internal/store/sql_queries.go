// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "kv_entries"
	kvKeyColumn   = "entry_key"
	kvValueColumn = "entry_value"
	kvUpdatedAt   = "updated_at"

	// both SQLite (3.24+) and PostgreSQL accept this upsert form
	kvUpsertSuffix = "ON CONFLICT (" + kvKeyColumn + ") DO UPDATE SET " +
		kvValueColumn + " = excluded." + kvValueColumn + ", " +
		kvUpdatedAt + " = excluded." + kvUpdatedAt
)

func buildGetValueQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
}

func buildUpsertValueQuery(b sq.StatementBuilderType, key, value string, now time.Time) (string, []any, error) {
	return b.Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn, kvUpdatedAt).
		Values(key, value, now).
		Suffix(kvUpsertSuffix).
		ToSql()
}

func buildDeleteValueQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Delete(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
}
