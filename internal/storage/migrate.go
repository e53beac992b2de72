package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// newMigrator builds a migrator over conn. The returned instance must not be
// closed: closing it would close conn as well.
func newMigrator(conn *sql.DB) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}
	driver, err := sqlite.WithInstance(conn, &sqlite.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return m, nil
}

// migrateUp applies every pending migration. Existing rows are kept.
func migrateUp(conn *sql.DB) error {
	m, err := newMigrator(conn)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// SchemaVersion returns the applied migration version and whether the last
// migration was left half-applied.
func (db *DB) SchemaVersion(ctx context.Context) (uint, bool, error) {
	m, err := newMigrator(db.conn.DB)
	if err != nil {
		return 0, false, wrapStorage("version", err)
	}
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, wrapStorage("version", err)
	}
	return version, dirty, nil
}

// Reset drops every table and recreates the schema from scratch. All notes
// are lost.
func (db *DB) Reset(ctx context.Context) error {
	m, err := newMigrator(db.conn.DB)
	if err != nil {
		return wrapStorage("reset", err)
	}
	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return wrapStorage("reset", fmt.Errorf("failed to roll back migrations: %w", err))
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return wrapStorage("reset", fmt.Errorf("failed to apply migrations: %w", err))
	}
	return nil
}
