package store

import (
	"context"
	"fmt"
	"log/slog"
)

const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Options selects and locates a backend.
type Options struct {
	Backend string
	DSN     string // postgres
	Path    string // sqlite
	Logger  *slog.Logger
}

// Open applies pending migrations and returns the chosen backend.
func Open(ctx context.Context, opts Options) (KV, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	switch opts.Backend {
	case BackendMemory:
		return NewMemoryKV(), nil
	case BackendPostgres:
		if err := migrateUp(ctx, BackendPostgres, opts.DSN); err != nil {
			return nil, err
		}
		db, err := OpenPostgres(ctx, opts.DSN)
		if err != nil {
			return nil, err
		}
		log.Info("store opened", slog.String("backend", BackendPostgres))
		return db, nil
	case BackendSQLite, "":
		path, err := sqlitePath(opts.Path)
		if err != nil {
			return nil, err
		}
		if err := migrateUp(ctx, BackendSQLite, path); err != nil {
			return nil, err
		}
		db, err := OpenSQLite(ctx, path)
		if err != nil {
			return nil, err
		}
		log.Info("store opened", slog.String("backend", BackendSQLite), slog.String("path", path))
		return db, nil
	}
	return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
}

func migrateUp(ctx context.Context, backend, target string) error {
	mig, err := NewMigrator(backend, target)
	if err != nil {
		return err
	}
	if err := mig.Up(ctx); err != nil && err != ErrNoChange {
		return err
	}
	return nil
}

func sqlitePath(path string) (string, error) {
	if path == "" {
		p, err := DefaultDBPath()
		if err != nil {
			return "", err
		}
		path = p
	}
	if err := ensureDir(path); err != nil {
		return "", err
	}
	return path, nil
}

// MigratorFor resolves the backend location the same way Open does.
func MigratorFor(opts Options) (*Migrator, error) {
	switch opts.Backend {
	case BackendPostgres:
		return NewMigrator(BackendPostgres, opts.DSN)
	case BackendSQLite, "":
		path, err := sqlitePath(opts.Path)
		if err != nil {
			return nil, err
		}
		return NewMigrator(BackendSQLite, path)
	}
	return nil, fmt.Errorf("backend %q has no migrations", opts.Backend)
}
