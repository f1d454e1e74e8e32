package database

import (
	"context"
	"fmt"
	"sync"

	"github.com/JHyunJung/atdd-subway-map/models"
)

// MemoryStore keeps stations and lines in process memory.
// Ids start at 1 and are never reused.
type MemoryStore struct {
	mu sync.RWMutex

	stations      map[int64]models.Station
	stationOrder  []int64
	lastStationID int64

	lines      map[int64]models.Line
	lineOrder  []int64
	lastLineID int64
}

// NewMemoryStore returns an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		stations: make(map[int64]models.Station),
		lines:    make(map[int64]models.Line),
	}
}

// Migrate is a no-op; there is no schema to apply
func (s *MemoryStore) Migrate(context.Context) error { return nil }

// Close is a no-op
func (s *MemoryStore) Close() error { return nil }

// CreateStation stores a station under the next station id
func (s *MemoryStore) CreateStation(_ context.Context, name string) (models.Station, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastStationID++
	station := models.Station{ID: s.lastStationID, Name: name}
	s.stations[station.ID] = station
	s.stationOrder = append(s.stationOrder, station.ID)

	return station, nil
}

// FindStation returns the station or a not found error
func (s *MemoryStore) FindStation(_ context.Context, id int64) (models.Station, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	station, ok := s.stations[id]
	if !ok {
		return models.Station{}, models.StationNotFound(id)
	}
	return station, nil
}

// ListStations returns all stations ordered by id
func (s *MemoryStore) ListStations(context.Context) ([]models.Station, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stations := make([]models.Station, 0, len(s.stationOrder))
	for _, id := range s.stationOrder {
		stations = append(stations, s.stations[id])
	}
	return stations, nil
}

// DeleteStation removes a station unless a line still runs through it
func (s *MemoryStore) DeleteStation(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.stations[id]; !ok {
		return nil
	}
	for _, line := range s.lines {
		if line.Stations.Contains(id) {
			return fmt.Errorf("station %d: %w", id, models.ErrStationInUse)
		}
	}

	delete(s.stations, id)
	s.stationOrder = without(s.stationOrder, id)
	return nil
}

// CreateLine stores a copy of the line and assigns its id
func (s *MemoryStore) CreateLine(_ context.Context, line *models.Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, stationID := range line.Stations.IDs() {
		if _, ok := s.stations[stationID]; !ok {
			return models.StationNotFound(stationID)
		}
	}

	s.lastLineID++
	line.ID = s.lastLineID
	s.lines[line.ID] = cloneLine(line)
	s.lineOrder = append(s.lineOrder, line.ID)

	return nil
}

// FindLine returns a copy of the stored line
func (s *MemoryStore) FindLine(_ context.Context, id int64) (*models.Line, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	line, ok := s.lines[id]
	if !ok {
		return nil, models.LineNotFound(id)
	}
	out := cloneLine(&line)
	return &out, nil
}

// ListLines returns copies of all lines in creation order
func (s *MemoryStore) ListLines(context.Context) ([]*models.Line, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := make([]*models.Line, 0, len(s.lineOrder))
	for _, id := range s.lineOrder {
		line := s.lines[id]
		out := cloneLine(&line)
		lines = append(lines, &out)
	}
	return lines, nil
}

// UpdateLine overwrites the name and color of a line
func (s *MemoryStore) UpdateLine(_ context.Context, line *models.Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.lines[line.ID]
	if !ok {
		return models.LineNotFound(line.ID)
	}
	stored.Rename(line.Name, line.Color)
	s.lines[line.ID] = stored

	return nil
}

// DeleteLine removes a line; deleting an absent line is not an error
func (s *MemoryStore) DeleteLine(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lines[id]; !ok {
		return nil
	}
	delete(s.lines, id)
	s.lineOrder = without(s.lineOrder, id)

	return nil
}

func cloneLine(line *models.Line) models.Line {
	out := *line
	out.Stations = models.NewLineStations(line.Stations.IDs()...)
	return out
}

func without(ids []int64, id int64) []int64 {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
