package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS stations (
		id   BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS lines (
		id       BIGSERIAL PRIMARY KEY,
		name     VARCHAR(20) NOT NULL,
		color    VARCHAR(15) NOT NULL,
		distance INTEGER NOT NULL CHECK (distance > 0)
	)`,
	`CREATE TABLE IF NOT EXISTS line_stations (
		line_id    BIGINT NOT NULL REFERENCES lines (id) ON DELETE CASCADE,
		position   INTEGER NOT NULL,
		station_id BIGINT NOT NULL REFERENCES stations (id) ON DELETE RESTRICT,
		PRIMARY KEY (line_id, position)
	)`,
	`CREATE INDEX IF NOT EXISTS line_stations_station_id_idx ON line_stations (station_id)`,
}

// RunMigrations ensures all required tables exist
func RunMigrations(ctx context.Context, db *sql.DB) error {
	slog.Info("checking database schema")

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	slog.Info("database schema is up to date", "statements", len(schema))
	return nil
}
