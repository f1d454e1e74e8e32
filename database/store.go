package database

import (
	"context"

	"github.com/JHyunJung/atdd-subway-map/models"
)

// StationStore persists stations.
// Lookups of unknown ids return a *models.NotFoundError.
type StationStore interface {
	CreateStation(ctx context.Context, name string) (models.Station, error)
	FindStation(ctx context.Context, id int64) (models.Station, error)
	ListStations(ctx context.Context) ([]models.Station, error)
	// DeleteStation returns models.ErrStationInUse while a line references the station.
	// Deleting an unknown id is not an error.
	DeleteStation(ctx context.Context, id int64) error
}

// LineStore persists lines together with their ordered station ids.
type LineStore interface {
	// CreateLine stores the line and sets its ID.
	CreateLine(ctx context.Context, line *models.Line) error
	FindLine(ctx context.Context, id int64) (*models.Line, error)
	// ListLines returns every line in creation order.
	ListLines(ctx context.Context) ([]*models.Line, error)
	// UpdateLine writes the name and color of an existing line.
	UpdateLine(ctx context.Context, line *models.Line) error
	// DeleteLine removes the line. Deleting an unknown id is not an error.
	DeleteLine(ctx context.Context, id int64) error
}

// Store is a persistence backend holding both stations and lines
type Store interface {
	StationStore
	LineStore

	// Migrate prepares tables or indexes. It is safe to run repeatedly.
	Migrate(ctx context.Context) error
	Close() error
}

var (
	_ Store = (*PostgresStore)(nil)
	_ Store = (*MongoStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
