package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordlearning/internal/config"
	"wordlearning/internal/handler"
	"wordlearning/internal/repository"
	"wordlearning/internal/repository/mongodb"
	"wordlearning/internal/repository/postgres"
	"wordlearning/internal/server"
	"wordlearning/internal/service"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/julienschmidt/httprouter"
	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const (
	maxRetries      = 30
	retryDelay      = 2 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting word learning server",
		zap.String("store", cfg.StoreDriver),
		zap.String("addr", cfg.Addr()),
	)

	// Connect to the store once; every request shares this handle
	wordRepo, closeStore, err := openWordRepository(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open word store", zap.Error(err))
	}
	defer closeStore()

	logger.Info("Word store ready")

	// Initialize services
	wordService := service.NewWordService(wordRepo)

	// Initialize handler
	router := httprouter.New()
	h := handler.NewHandler(router, wordService, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	srv := server.NewServer(server.Config{
		Addr:           cfg.Addr(),
		MaxConnections: cfg.MaxConnections,
	}, router, logger)

	// Start server in background
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// Wait for interrupt signal or a server failure
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("Shutdown signal received, stopping server...", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			logger.Error("HTTP server stopped unexpectedly", zap.Error(err))
		}
	}

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Failed to shut down HTTP server", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// newLogger builds a production logger at the configured level
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = lvl
	return zapCfg.Build()
}

// openWordRepository connects the configured backend and returns its closer
func openWordRepository(cfg *config.Config, logger *zap.Logger) (repository.WordRepository, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		db, err := connectDatabase(cfg.DSN(), logger)
		if err != nil {
			return nil, nil, err
		}

		if err := runMigrations(db, logger); err != nil {
			db.Close()
			return nil, nil, err
		}

		return postgres.NewWordRepo(db), func() { db.Close() }, nil

	default:
		client, err := connectMongo(cfg.MongoURI(), logger)
		if err != nil {
			return nil, nil, err
		}

		coll := client.Database(cfg.Database.Name).Collection(cfg.Database.Collection)
		closer := func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := client.Disconnect(ctx); err != nil {
				logger.Warn("Failed to disconnect from MongoDB", zap.Error(err))
			}
		}

		return mongodb.NewWordRepo(coll), closer, nil
	}
}

// connectMongo connects to MongoDB with retries
func connectMongo(uri string, logger *zap.Logger) (*mongo.Client, error) {
	var client *mongo.Client
	var err error

	opts := options.Client().
		ApplyURI(uri).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	for i := 0; i < maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

		client, err = mongo.Connect(ctx, opts)
		if err != nil {
			cancel()
			logger.Warn("Failed to open MongoDB connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		err = client.Ping(ctx, readpref.Primary())
		cancel()
		if err != nil {
			logger.Warn("Failed to ping MongoDB",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			_ = client.Disconnect(context.Background())
			time.Sleep(retryDelay)
			continue
		}

		return client, nil
	}

	return nil, fmt.Errorf("failed to connect to MongoDB after %d attempts: %w", maxRetries, err)
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		// Connection successful
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply")
	} else {
		logger.Info("Migrations applied successfully")
	}

	return nil
}
