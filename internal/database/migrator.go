package database

import (
	"errors"
	"fmt"

	"finboard/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// MigrationsSource is where the Postgres schema files live, relative to the
// working directory.
const MigrationsSource = "file://migrations"

// Migrator applies the SQL files in MigrationsSource to a Postgres database.
type Migrator struct {
	m *migrate.Migrate
}

// NewMigrator opens the migration source and the database at url.
func NewMigrator(url string) (*Migrator, error) {
	m, err := migrate.New(MigrationsSource, url)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return &Migrator{m: m}, nil
}

// Up applies every pending migration. An up-to-date schema is not an error.
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}

// Down rolls back the given number of applied migrations.
func (mg *Migrator) Down(steps int) error {
	if steps < 1 {
		return fmt.Errorf("invalid step count %d", steps)
	}
	if err := mg.m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration down failed: %w", err)
	}
	return nil
}

// Force records version as applied and clears the dirty flag without running
// any migration. -1 means no version.
func (mg *Migrator) Force(version int) error {
	if err := mg.m.Force(version); err != nil {
		return fmt.Errorf("force version %d failed: %w", version, err)
	}
	return nil
}

// Version reports the applied schema version. A database with no applied
// migration reports version 0.
func (mg *Migrator) Version() (version uint, dirty bool, err error) {
	version, dirty, err = mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get version: %w", err)
	}
	return version, dirty, nil
}

// Close releases the source and database handles.
func (mg *Migrator) Close() {
	log := logger.Component("database")
	srcErr, dbErr := mg.m.Close()
	if srcErr != nil {
		log.Warnf("migrate source close error: %v", srcErr)
	}
	if dbErr != nil {
		log.Warnf("migrate database close error: %v", dbErr)
	}
}
