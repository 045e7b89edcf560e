package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"finboard/internal/config"
	"finboard/internal/database"
	"finboard/internal/logger"
	"finboard/internal/router"
	"finboard/internal/services"
	"finboard/internal/session"
	"finboard/internal/store"
	"finboard/internal/validator"
)

// @title           Finboard API
// @version         1.0
// @description     Finboard records income and expense transactions and summarizes spending by month and category against per-session budgets.

// @host      localhost:8080
// @BasePath  /api

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Open the transaction store
	txStore, closeStore, err := openStore(ctx, appConfig)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := closeStore(closeCtx); err != nil {
			log.Warnf("failed to close %s store: %v", appConfig.StoreBackend, err)
		}
	}()

	validator.Register()

	// Initialize services
	transactionService := services.NewTransactionService(txStore)
	dashboardService := services.NewDashboardService(transactionService)
	auditService := services.NewAuditService()

	engine := router.New(router.Deps{
		Transactions: transactionService,
		Dashboard:    dashboardService,
		Audit:        auditService,
		Budgets:      session.NewBudgets(appConfig.SessionMax, appConfig.SessionTTL),
		SessionTTL:   appConfig.SessionTTL,
	})

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Starting Finboard server on port %s (store: %s)", appConfig.Port, appConfig.StoreBackend)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Server stopped gracefully")
	return nil
}

// openStore connects the configured backend and returns the store together
// with a function releasing its connection.
func openStore(ctx context.Context, cfg *config.Config) (store.TransactionStore, func(context.Context) error, error) {
	log := logger.Get()

	switch cfg.StoreBackend {
	case config.StoreBackendPostgres, config.StoreBackendSQLite:
		var (
			dbManager *database.Manager
			err       error
		)
		if cfg.StoreBackend == config.StoreBackendPostgres {
			dbManager, err = database.NewPostgresManager(database.NewConfig(cfg))
		} else {
			dbManager, err = database.NewSQLiteManager(cfg.SQLitePath)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create database manager: %w", err)
		}

		// Run migrations
		if err := dbManager.Migrate(); err != nil {
			_ = dbManager.Close()
			return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
		}

		log.Infof("Initialized %s store", cfg.StoreBackend)
		return store.NewGormStore(dbManager.DB()), func(context.Context) error { return dbManager.Close() }, nil

	default:
		client, err := database.ConnectMongo(ctx, database.MongoConfig{
			URI:      cfg.MongoURI,
			Database: cfg.MongoDatabase,
			Timeout:  cfg.StoreTimeout,
		})
		if err != nil {
			return nil, nil, err
		}

		db := client.Database(cfg.MongoDatabase)
		if err := store.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, err
		}

		log.Infof("Initialized mongo store (database: %s)", cfg.MongoDatabase)
		return store.NewMongoStore(db), client.Disconnect, nil
	}
}
