package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JHyunJung/atdd-subway-map/database"
	"github.com/JHyunJung/atdd-subway-map/models"
)

// LineService orchestrates line operations.
// Stations are resolved through the StationService on every read.
type LineService struct {
	store    database.LineStore
	stations *StationService
}

// NewLineService creates a line service that resolves stations through the station service
func NewLineService(store database.LineStore, stations *StationService) *LineService {
	return &LineService{store: store, stations: stations}
}

// SaveLine creates a line between two existing stations
func (s *LineService) SaveLine(ctx context.Context, req models.LineRequest) (models.LineResponse, error) {
	upStation, err := s.stations.FindStation(ctx, req.UpStationID)
	if err != nil {
		return models.LineResponse{}, fmt.Errorf("up station: %w", err)
	}

	downStation, err := s.stations.FindStation(ctx, req.DownStationID)
	if err != nil {
		return models.LineResponse{}, fmt.Errorf("down station: %w", err)
	}

	line := models.NewLine(req.Name, req.Color, upStation.ID, downStation.ID, req.Distance)
	if err := s.store.CreateLine(ctx, line); err != nil {
		return models.LineResponse{}, err
	}

	slog.InfoContext(ctx, "line created",
		"id", line.ID, "name", line.Name, "up_station", upStation.ID, "down_station", downStation.ID)

	return models.NewLineResponse(line, []models.Station{upStation, downStation}), nil
}

// FindAllLines returns every line in creation order
func (s *LineService) FindAllLines(ctx context.Context) ([]models.LineResponse, error) {
	lines, err := s.store.ListLines(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]models.LineResponse, 0, len(lines))
	for _, line := range lines {
		response, err := s.createLineResponse(ctx, line)
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}

	return responses, nil
}

// FindLine returns a single line
func (s *LineService) FindLine(ctx context.Context, id int64) (models.LineResponse, error) {
	line, err := s.store.FindLine(ctx, id)
	if err != nil {
		return models.LineResponse{}, err
	}

	return s.createLineResponse(ctx, line)
}

// UpdateLine changes the name and color of a line.
// Stations and distance are left untouched.
func (s *LineService) UpdateLine(ctx context.Context, id int64, req models.LineUpdateRequest) error {
	line, err := s.store.FindLine(ctx, id)
	if err != nil {
		return err
	}

	line.Rename(req.Name, req.Color)
	if err := s.store.UpdateLine(ctx, line); err != nil {
		return err
	}

	slog.InfoContext(ctx, "line updated", "id", id, "name", req.Name, "color", req.Color)
	return nil
}

// DeleteLine removes a line. Its stations are kept, and an unknown id is not an error.
func (s *LineService) DeleteLine(ctx context.Context, id int64) error {
	if err := s.store.DeleteLine(ctx, id); err != nil {
		return err
	}

	slog.InfoContext(ctx, "line deleted", "id", id)
	return nil
}

func (s *LineService) createLineResponse(ctx context.Context, line *models.Line) (models.LineResponse, error) {
	stations, err := s.stations.FindStations(ctx, line.Stations.IDs())
	if err != nil {
		return models.LineResponse{}, fmt.Errorf("line %d: %w", line.ID, err)
	}

	return models.NewLineResponse(line, stations), nil
}
