package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-api-config/internal/config"
	"github.com/MKhiriev/go-api-config/internal/logger"
)

// Storages groups the persisted storage of the application.
type Storages struct {
	// Overrides is the SQLite-backed persisted override store.
	Overrides OverrideRepository

	db *DB
}

// NewStorages initialises the storage layer:
//  1. Opens an SQLite connection to cfg.DSN (or the XDG default),
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires a fresh [OverrideRepository].
func NewStorages(ctx context.Context, cfg config.Store, logger *logger.Logger) (*Storages, error) {
	logger.Debug().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Overrides: NewOverrideRepository(db, logger),
		db:        db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
