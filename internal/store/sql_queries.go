// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const overridesTable = "overrides"

// sqliteBuilder renders "?" placeholders as expected by go-sqlite3.
var sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetOverrideQuery(key string) (string, []any, error) {
	return sqliteBuilder.
		Select("value").
		From(overridesTable).
		Where(sq.Eq{"name": key}).
		Limit(1).
		ToSql()
}

func buildUpsertOverrideQuery(key, value string, updatedAt time.Time) (string, []any, error) {
	return sqliteBuilder.
		Insert(overridesTable).
		Columns("name", "value", "updated_at").
		Values(key, value, updatedAt).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteOverrideQuery(key string) (string, []any, error) {
	return sqliteBuilder.
		Delete(overridesTable).
		Where(sq.Eq{"name": key}).
		ToSql()
}

func buildListOverridesQuery() (string, []any, error) {
	return sqliteBuilder.
		Select("name", "value", "updated_at").
		From(overridesTable).
		OrderBy("name").
		ToSql()
}
