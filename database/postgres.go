package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lib/pq"

	"github.com/JHyunJung/atdd-subway-map/models"
)

// foreign_key_violation
const pqForeignKeyViolation = "23503"

// PostgresStore keeps stations and lines in PostgreSQL
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.db)
}

// Close closes the database connection
func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// CreateStation inserts a station and returns it with its generated id
func (s *PostgresStore) CreateStation(ctx context.Context, name string) (models.Station, error) {
	station := models.Station{Name: name}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO stations (name)
		VALUES ($1)
		RETURNING id
	`, name).Scan(&station.ID)
	if err != nil {
		return models.Station{}, fmt.Errorf("failed to create station: %w", err)
	}

	return station, nil
}

// FindStation retrieves a station by ID
func (s *PostgresStore) FindStation(ctx context.Context, id int64) (models.Station, error) {
	var station models.Station

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name
		FROM stations
		WHERE id = $1
	`, id).Scan(&station.ID, &station.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Station{}, models.StationNotFound(id)
		}
		return models.Station{}, fmt.Errorf("failed to find station %d: %w", id, err)
	}

	return station, nil
}

// ListStations retrieves all stations in creation order
func (s *PostgresStore) ListStations(ctx context.Context) ([]models.Station, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name
		FROM stations
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("error querying stations: %w", err)
	}
	defer rows.Close()

	stations := []models.Station{}
	for rows.Next() {
		var station models.Station
		if err := rows.Scan(&station.ID, &station.Name); err != nil {
			return nil, fmt.Errorf("error scanning station: %w", err)
		}
		stations = append(stations, station)
	}

	return stations, rows.Err()
}

// DeleteStation removes a station unless a line still runs through it
func (s *PostgresStore) DeleteStation(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM stations WHERE id = $1`, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
			return fmt.Errorf("station %d: %w", id, models.ErrStationInUse)
		}
		return fmt.Errorf("failed to delete station %d: %w", id, err)
	}

	return nil
}

// CreateLine inserts the line and its stations in one transaction
func (s *PostgresStore) CreateLine(ctx context.Context, line *models.Line) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var lineID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO lines (name, color, distance)
		VALUES ($1, $2, $3)
		RETURNING id
	`, line.Name, line.Color, line.Distance).Scan(&lineID)
	if err != nil {
		return fmt.Errorf("failed to create line: %w", err)
	}

	for position, stationID := range line.Stations.IDs() {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO line_stations (line_id, position, station_id)
			VALUES ($1, $2, $3)
		`, lineID, position, stationID)
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
				return models.StationNotFound(stationID)
			}
			return fmt.Errorf("failed to add station %d to line: %w", stationID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit line: %w", err)
	}

	line.ID = lineID
	slog.Debug("line stored", "id", lineID, "stations", line.Stations.Len())

	return nil
}

// lineColumns joins each line with its stations in route order.
// Lines without stations come back with a NULL station_id.
const lineColumns = `
	SELECT l.id, l.name, l.color, l.distance, ls.station_id
	FROM lines l
	LEFT JOIN line_stations ls ON ls.line_id = l.id
`

// scanLines folds joined rows into lines, keeping row order
func scanLines(rows *sql.Rows) ([]*models.Line, error) {
	lines := []*models.Line{}
	var current *models.Line
	for rows.Next() {
		var (
			line      models.Line
			stationID sql.NullInt64
		)
		if err := rows.Scan(&line.ID, &line.Name, &line.Color, &line.Distance, &stationID); err != nil {
			return nil, fmt.Errorf("error scanning line: %w", err)
		}
		if current == nil || current.ID != line.ID {
			current = &line
			lines = append(lines, current)
		}
		if stationID.Valid {
			current.Stations.Add(stationID.Int64)
		}
	}
	return lines, rows.Err()
}

// FindLine retrieves a line by ID along with its ordered station ids
func (s *PostgresStore) FindLine(ctx context.Context, id int64) (*models.Line, error) {
	rows, err := s.db.QueryContext(ctx, lineColumns+`
		WHERE l.id = $1
		ORDER BY ls.position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find line %d: %w", id, err)
	}
	defer rows.Close()

	lines, err := scanLines(rows)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, models.LineNotFound(id)
	}

	return lines[0], nil
}

// ListLines retrieves all lines in creation order
func (s *PostgresStore) ListLines(ctx context.Context) ([]*models.Line, error) {
	rows, err := s.db.QueryContext(ctx, lineColumns+`
		ORDER BY l.id, ls.position
	`)
	if err != nil {
		return nil, fmt.Errorf("error querying lines: %w", err)
	}
	defer rows.Close()

	return scanLines(rows)
}

// UpdateLine overwrites the name and color of a line
func (s *PostgresStore) UpdateLine(ctx context.Context, line *models.Line) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE lines
		SET name = $1, color = $2
		WHERE id = $3
	`, line.Name, line.Color, line.ID)
	if err != nil {
		return fmt.Errorf("failed to update line %d: %w", line.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update line %d: %w", line.ID, err)
	}
	if affected == 0 {
		return models.LineNotFound(line.ID)
	}

	return nil
}

// DeleteLine removes a line; its line_stations rows cascade, stations stay
func (s *PostgresStore) DeleteLine(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM lines WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete line %d: %w", id, err)
	}
	return nil
}
