package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"finboard/internal/config"
	"finboard/internal/database"
	"finboard/internal/logger"
	"finboard/internal/store"
)

const usage = "usage: migrate <up|down [N]|force V|version>"

// action is a parsed migrate command line.
type action struct {
	name string
	// n is the step count for down and the version for force.
	n int
}

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(os.Args[1:]); err != nil {
		logger.Get().Fatalf("Migration error: %v", err)
	}
}

func run(args []string) error {
	act, err := parseArgs(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := checkSupported(cfg.StoreBackend, act); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.StoreTimeout)
	defer cancel()

	switch cfg.StoreBackend {
	case config.StoreBackendPostgres:
		return migratePostgres(cfg, act)
	case config.StoreBackendSQLite:
		return migrateSQLite(cfg)
	default:
		return migrateMongo(ctx, cfg)
	}
}

func parseArgs(args []string) (action, error) {
	if len(args) == 0 {
		return action{}, errors.New(usage)
	}

	act := action{name: args[0]}
	switch act.name {
	case "up", "version":
		if len(args) > 1 {
			return action{}, fmt.Errorf("%s takes no arguments; %s", act.name, usage)
		}
	case "down":
		act.n = 1
		if len(args) > 2 {
			return action{}, errors.New(usage)
		}
		if len(args) == 2 {
			steps, err := strconv.Atoi(args[1])
			if err != nil || steps < 1 {
				return action{}, fmt.Errorf("invalid step count %q", args[1])
			}
			act.n = steps
		}
	case "force":
		if len(args) != 2 {
			return action{}, fmt.Errorf("force needs a version; %s", usage)
		}
		version, err := strconv.Atoi(args[1])
		if err != nil || version < -1 {
			return action{}, fmt.Errorf("invalid version %q", args[1])
		}
		act.n = version
	default:
		return action{}, fmt.Errorf("unknown command: %s; %s", act.name, usage)
	}
	return act, nil
}

// checkSupported rejects actions the backend has no schema history for.
// SQLite and MongoDB only support up.
func checkSupported(backend config.StoreBackend, act action) error {
	if backend == config.StoreBackendPostgres || act.name == "up" {
		return nil
	}
	return fmt.Errorf("%s is only supported for the postgres backend (STORE_BACKEND=%s)", act.name, backend)
}

func migratePostgres(cfg *config.Config, act action) error {
	log := logger.Component("migrate")

	mig, err := database.NewMigrator(database.NewConfig(cfg).URL())
	if err != nil {
		return err
	}
	defer mig.Close()

	switch act.name {
	case "up":
		if err := mig.Up(); err != nil {
			return err
		}
		log.Info("Migrations applied successfully")
	case "down":
		if err := mig.Down(act.n); err != nil {
			return err
		}
		log.Infof("Rolled back %d migration(s)", act.n)
	case "force":
		if err := mig.Force(act.n); err != nil {
			return err
		}
		log.Infof("Forced schema version to %d", act.n)
	}

	version, dirty, err := mig.Version()
	if err != nil {
		return err
	}
	log.Infow("Schema version", "version", version, "dirty", dirty)
	return nil
}

func migrateSQLite(cfg *config.Config) error {
	dbManager, err := database.NewSQLiteManager(cfg.SQLitePath)
	if err != nil {
		return err
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(); err != nil {
		return err
	}
	logger.Component("migrate").Infow("SQLite schema is up to date", "path", cfg.SQLitePath)
	return nil
}

func migrateMongo(ctx context.Context, cfg *config.Config) error {
	client, err := database.ConnectMongo(ctx, database.MongoConfig{
		URI:      cfg.MongoURI,
		Database: cfg.MongoDatabase,
		Timeout:  cfg.StoreTimeout,
	})
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background())

	if err := store.EnsureIndexes(ctx, client.Database(cfg.MongoDatabase)); err != nil {
		return err
	}
	logger.Component("migrate").Infow("MongoDB indexes are up to date",
		"database", cfg.MongoDatabase, "collection", store.CollectionName)
	return nil
}
