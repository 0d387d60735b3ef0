package store

import (
	"context"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrator handles schema migrations using golang-migrate.
type Migrator struct {
	backend string
	url     string
}

// NewMigrator accepts the "postgres" backend with a DSN, or "sqlite" with a file path.
func NewMigrator(backend, target string) (*Migrator, error) {
	if target == "" {
		return nil, fmt.Errorf("missing migration target for %s", backend)
	}
	switch backend {
	case BackendPostgres:
		return &Migrator{backend: backend, url: target}, nil
	case BackendSQLite:
		return &Migrator{backend: backend, url: "sqlite://" + target}, nil
	}
	return nil, fmt.Errorf("no migrations for backend %q", backend)
}

func (m *Migrator) Up(ctx context.Context) error {
	mig, closer, err := m.migrateInstance()
	if err != nil {
		return err
	}
	defer closer()
	return translate(mig.Up())
}

func (m *Migrator) Down(ctx context.Context) error {
	mig, closer, err := m.migrateInstance()
	if err != nil {
		return err
	}
	defer closer()
	return translate(mig.Steps(-1))
}

func translate(err error) error {
	if err == migrate.ErrNoChange {
		return ErrNoChange
	}
	return wrap(err, "migrate")
}

func (m *Migrator) migrateInstance() (*migrate.Migrate, func(), error) {
	src, err := iofs.New(migrationsFS, "migrations/"+m.backend)
	if err != nil {
		return nil, func() {}, wrap(err, "migration source")
	}
	mig, err := migrate.NewWithSourceInstance("iofs", src, m.url)
	if err != nil {
		return nil, func() {}, wrap(err, "migration instance")
	}
	return mig, func() { mig.Close() }, nil
}
