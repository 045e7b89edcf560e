package database

import (
	"fmt"
	"time"

	"finboard/internal/logger"
	"finboard/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Manager owns the GORM handle for the SQL store backends. One Manager is
// created at startup and closed on shutdown.
type Manager struct {
	db *gorm.DB
	// migrationURL is set for Postgres; SQLite falls back to AutoMigrate.
	migrationURL string
}

// NewPostgresManager connects to Postgres and tunes the connection pool.
func NewPostgresManager(config *Config) (*Manager, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  config.DSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{db: db, migrationURL: config.URL()}, nil
}

// NewSQLiteManager opens (or creates) a SQLite database file.
func NewSQLiteManager(path string) (*Manager, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}

	// SQLite allows a single writer at a time.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return &Manager{db: db}, nil
}

// Migrate brings the schema up to date. Postgres applies the SQL files in
// migrations/; SQLite uses GORM's AutoMigrate.
func (m *Manager) Migrate() error {
	if m.migrationURL == "" {
		if err := m.db.AutoMigrate(&models.Transaction{}); err != nil {
			return fmt.Errorf("auto-migrate failed: %w", err)
		}
		return nil
	}
	return m.runMigrations()
}

func (m *Manager) runMigrations() error {
	log := logger.Component("database")
	log.Info("Running database migrations...")

	mig, err := NewMigrator(m.migrationURL)
	if err != nil {
		return err
	}
	defer mig.Close()

	if err := mig.Up(); err != nil {
		return err
	}

	log.Info("Database migrations completed successfully")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close releases the connection pool.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
