package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// SQLiteCache persists cached projections in a local SQLite file.
type SQLiteCache struct {
	db *sql.DB
}

// OpenSQLite opens or creates the cache database at the given path.
func OpenSQLite(dbPath string) (*SQLiteCache, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("sqlite cache path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteCache{db: db}, nil
}

func (c *SQLiteCache) Get(ctx context.Context, key string) (string, bool, error) {
	var payload string
	err := c.db.QueryRowContext(ctx, "SELECT payload FROM projections WHERE cache_key = ?", key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading cache entry: %w", err)
	}
	return payload, true, nil
}

func (c *SQLiteCache) Set(ctx context.Context, key string, value string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := c.db.ExecContext(ctx, `INSERT OR REPLACE INTO projections (cache_key, payload, created_at)
		VALUES (?, ?, ?)`, key, value, now)
	if err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	return nil
}

// Close closes the cache database.
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}
