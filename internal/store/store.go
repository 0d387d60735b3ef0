package store

import (
	"context"
	"database/sql"
	errs "errors"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB wraps gorm.DB for the postgres backend and exposes Close.
type DB struct {
	gorm *gorm.DB
	sql  *sql.DB
}

func (d *DB) Close() error { return d.sql.Close() }

// OpenPostgres connects to the DSN and checks the connection.
func OpenPostgres(ctx context.Context, dsn string) (*DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("missing DSN")
	}
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		return nil, wrap(err, "open postgres")
	}
	sdb, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sdb.SetConnMaxLifetime(30 * time.Minute)
	sdb.SetMaxOpenConns(4)
	sdb.SetMaxIdleConns(2)
	if err := sdb.PingContext(ctx); err != nil {
		_ = sdb.Close()
		return nil, wrap(err, "ping postgres")
	}
	return &DB{gorm: gdb, sql: sdb}, nil
}

func (d *DB) Get(ctx context.Context, key string) ([]byte, bool, error) {
	row := d.gorm.WithContext(ctx).Raw(`SELECT value FROM saves WHERE key = ?`, key).Row()
	var value string
	if err := row.Scan(&value); err != nil {
		if errs.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, wrap(err, "get "+key)
	}
	return []byte(value), true, nil
}

// Put replaces the whole value in one statement so readers never see a partial record.
func (d *DB) Put(ctx context.Context, key string, value []byte) error {
	err := d.gorm.WithContext(ctx).Exec(`INSERT INTO saves(key, value, updated_at) VALUES (?, ?, NOW())
	ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`, key, string(value)).Error
	return wrap(err, "put "+key)
}

func (d *DB) Delete(ctx context.Context, key string) error {
	return wrap(d.gorm.WithContext(ctx).Exec(`DELETE FROM saves WHERE key = ?`, key).Error, "delete "+key)
}

// Helper error wrap
func wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}
