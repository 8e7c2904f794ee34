package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-api-config/internal/config"
	"github.com/MKhiriev/go-api-config/internal/logger"
)

// defaultDBFile is the override store location relative to $XDG_DATA_HOME.
const defaultDBFile = "go-api-config/overrides.db"

// DefaultDSN returns the override store file under the XDG data directory,
// creating the parent directory when needed.
func DefaultDSN() (string, error) {
	path, err := xdg.DataFile(defaultDBFile)
	if err != nil {
		return "", fmt.Errorf("error resolving default store location: %w", err)
	}
	return path, nil
}

// NewConnectSQLite opens the SQLite database named by cfg.DSN, or the XDG
// default when the DSN is empty, and pings it.
func NewConnectSQLite(ctx context.Context, cfg config.Store, log *logger.Logger) (*DB, error) {
	dsn := cfg.DSN
	if dsn == "" {
		var err error
		if dsn, err = DefaultDSN(); err != nil {
			return nil, err
		}
	}

	// db will be in file
	if err := createLocalDBFileIfNotExists(dsn); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error pinging DB: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("dsn", dsn).Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err = os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("error creating DB dir: %w", err)
			}
		}

		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
