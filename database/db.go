package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"github.com/JHyunJung/atdd-subway-map/config"
)

const (
	maxConnectRetries = 30
	connectRetryDelay = 2 * time.Second
)

// Connect establishes a connection to the PostgreSQL database
func Connect(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Test the connection with retries
	for i := 0; i < maxConnectRetries; i++ {
		err = db.PingContext(ctx)
		if err == nil {
			slog.Info("connected to database", "host", cfg.DBHost, "name", cfg.DBName)
			return db, nil
		}
		slog.Warn("failed to connect to database",
			"attempt", i+1, "max_attempts", maxConnectRetries, "error", err)

		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(connectRetryDelay):
		}
	}

	db.Close()
	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxConnectRetries, err)
}

// Open connects to the store selected by cfg.DBDriver
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.DBDriver {
	case config.DriverMemory:
		slog.Info("using in-memory store")
		return NewMemoryStore(), nil
	case config.DriverMongo:
		store, err := ConnectMongo(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		db, err := Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return NewPostgresStore(db), nil
	}
}
