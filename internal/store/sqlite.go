package store

import (
	"context"
	"database/sql"
	errs "errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLite is the local single-file backend.
type SQLite struct {
	db *sql.DB
}

// DefaultDBPath returns the default save location.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", wrap(err, "get home dir")
	}
	return filepath.Join(home, ".santaexe.db"), nil
}

// OpenSQLite opens (and creates if missing) the database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	if err := ensureDir(path); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, wrap(err, "open sqlite")
	}
	// one writer; sqlite serialises anyway and this avoids SQLITE_BUSY
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, wrap(err, "ping sqlite")
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM saves WHERE key = ?`, key).Scan(&value)
	if errs.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, wrap(err, "get "+key)
	}
	return []byte(value), true, nil
}

func (s *SQLite) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO saves(key, value, updated_at) VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`, key, string(value))
	return wrap(err, "put "+key)
}

func (s *SQLite) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM saves WHERE key = ?`, key)
	return wrap(err, "delete "+key)
}

func (s *SQLite) Close() error { return s.db.Close() }

func ensureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return wrap(err, "create data dir")
	}
	return nil
}
