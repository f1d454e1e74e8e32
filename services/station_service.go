package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JHyunJung/atdd-subway-map/database"
	"github.com/JHyunJung/atdd-subway-map/models"
)

// StationService resolves and manages stations
type StationService struct {
	store database.StationStore
}

// NewStationService creates a station service backed by the given store
func NewStationService(store database.StationStore) *StationService {
	return &StationService{store: store}
}

// CreateStation stores a new station
func (s *StationService) CreateStation(ctx context.Context, req models.StationRequest) (models.StationResponse, error) {
	station, err := s.store.CreateStation(ctx, req.Name)
	if err != nil {
		return models.StationResponse{}, err
	}

	slog.InfoContext(ctx, "station created", "id", station.ID, "name", station.Name)
	return models.NewStationResponse(station), nil
}

// FindStation returns the station with the given id or a not-found error
func (s *StationService) FindStation(ctx context.Context, id int64) (models.Station, error) {
	return s.store.FindStation(ctx, id)
}

// FindStations resolves ids in the order given
func (s *StationService) FindStations(ctx context.Context, ids []int64) ([]models.Station, error) {
	stations := make([]models.Station, 0, len(ids))
	for _, id := range ids {
		station, err := s.store.FindStation(ctx, id)
		if err != nil {
			return nil, err
		}
		stations = append(stations, station)
	}
	return stations, nil
}

// GetAllStations returns every station in creation order
func (s *StationService) GetAllStations(ctx context.Context) ([]models.StationResponse, error) {
	stations, err := s.store.ListStations(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.StationResponse, 0, len(stations))
	for _, st := range stations {
		views = append(views, models.NewStationResponse(st))
	}
	return views, nil
}

// DeleteStation removes a station. It fails while a line still uses it.
func (s *StationService) DeleteStation(ctx context.Context, id int64) error {
	if err := s.store.DeleteStation(ctx, id); err != nil {
		return fmt.Errorf("delete station: %w", err)
	}

	slog.InfoContext(ctx, "station deleted", "id", id)
	return nil
}
