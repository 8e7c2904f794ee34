package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-api-config/internal/logger"
	"github.com/MKhiriev/go-api-config/models"
)

// overrideRepository is the SQLite-backed implementation of
// [OverrideRepository]. It handles the "overrides" table.
type overrideRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewOverrideRepository constructs an [OverrideRepository] backed by the
// provided database connection and logger.
func NewOverrideRepository(db *DB, logger *logger.Logger) OverrideRepository {
	logger.Debug().Msg("creating override repository")
	return &overrideRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// GetOverride returns the value stored under key.
//
// Error handling:
//   - empty key → [ErrEmptyOverrideKey];
//   - no row → [ErrOverrideNotFound];
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *overrideRepository) GetOverride(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyOverrideKey
	}

	query, args, err := buildGetOverrideQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrOverrideNotFound
	case err != nil:
		r.logger.Err(err).Str("func", "*overrideRepository.GetOverride").Str("key", key).Msg("error reading override")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

// SetOverride stores value under key, replacing any previous value.
func (r *overrideRepository) SetOverride(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyOverrideKey
	}

	query, args, err := buildUpsertOverrideQuery(key, value, r.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*overrideRepository.SetOverride").Str("key", key).Msg("error saving override")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	r.logger.Info().Str("key", key).Str("value", value).Msg("override saved")
	return nil
}

// ClearOverride removes the value stored under key. It returns
// [ErrOverrideNotFound] when there was nothing to remove.
func (r *overrideRepository) ClearOverride(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyOverrideKey
	}

	query, args, err := buildDeleteOverrideQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*overrideRepository.ClearOverride").Str("key", key).Msg("error deleting override")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrOverrideNotFound
	}

	r.logger.Info().Str("key", key).Msg("override cleared")
	return nil
}

// ListOverrides returns every stored override ordered by key.
func (r *overrideRepository) ListOverrides(ctx context.Context) ([]models.Override, error) {
	query, args, err := buildListOverridesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	overrides := make([]models.Override, 0)
	for rows.Next() {
		var o models.Override
		if err = rows.Scan(&o.Key, &o.Value, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		overrides = append(overrides, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return overrides, nil
}
