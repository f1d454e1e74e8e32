package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/JHyunJung/atdd-subway-map/database"
	"github.com/JHyunJung/atdd-subway-map/models"
)

type fixture struct {
	stations *StationService
	lines    *LineService

	gangnam, yeoksam, yangjae models.StationResponse
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := database.NewMemoryStore()
	stations := NewStationService(store)
	f := &fixture{
		stations: stations,
		lines:    NewLineService(store, stations),
	}

	f.gangnam = f.createStation(t, "강남역")
	f.yeoksam = f.createStation(t, "역삼역")
	f.yangjae = f.createStation(t, "양재역")

	return f
}

func (f *fixture) createStation(t *testing.T, name string) models.StationResponse {
	t.Helper()

	st, err := f.stations.CreateStation(context.Background(), models.StationRequest{Name: name})
	if err != nil {
		t.Fatalf("CreateStation(%q): %v", name, err)
	}
	return st
}

func (f *fixture) createLine(t *testing.T, name, color string, up, down int64, distance int) models.LineResponse {
	t.Helper()

	line, err := f.lines.SaveLine(context.Background(), models.LineRequest{
		Name:          name,
		Color:         color,
		UpStationID:   up,
		DownStationID: down,
		Distance:      distance,
	})
	if err != nil {
		t.Fatalf("SaveLine(%q): %v", name, err)
	}
	return line
}

func TestSaveLine(t *testing.T) {
	f := newFixture(t)

	got := f.createLine(t, "신분당선", "bg-red-600", f.gangnam.ID, f.yeoksam.ID, 10)

	want := models.LineResponse{
		ID:       1,
		Name:     "신분당선",
		Color:    "bg-red-600",
		Stations: []models.StationResponse{f.gangnam, f.yeoksam},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	found, err := f.lines.FindLine(context.Background(), got.ID)
	if err != nil {
		t.Fatalf("FindLine: %v", err)
	}
	if !reflect.DeepEqual(found, want) {
		t.Fatalf("expected stored line %+v, got %+v", want, found)
	}
}

func TestSaveLineUnknownStation(t *testing.T) {
	cases := []struct {
		name     string
		up, down int64
	}{
		{name: "up", up: 99, down: 2},
		{name: "down", up: 1, down: 99},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()

			_, err := f.lines.SaveLine(ctx, models.LineRequest{
				Name: "신분당선", Color: "bg-red-600",
				UpStationID: tc.up, DownStationID: tc.down, Distance: 10,
			})

			var nf *models.NotFoundError
			if !errors.As(err, &nf) || nf.Entity != "station" || nf.ID != 99 {
				t.Fatalf("expected station 99 not found, got %v", err)
			}

			lines, err := f.lines.FindAllLines(ctx)
			if err != nil {
				t.Fatalf("FindAllLines: %v", err)
			}
			if len(lines) != 0 {
				t.Fatalf("expected no line to be stored, got %+v", lines)
			}
		})
	}
}

func TestFindAllLinesInCreationOrder(t *testing.T) {
	f := newFixture(t)
	f.createLine(t, "2호선", "bg-green-700", f.gangnam.ID, f.yeoksam.ID, 20)
	f.createLine(t, "신분당선", "bg-red-600", f.gangnam.ID, f.yangjae.ID, 10)

	lines, err := f.lines.FindAllLines(context.Background())
	if err != nil {
		t.Fatalf("FindAllLines: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Name != "2호선" || lines[1].Name != "신분당선" {
		t.Fatalf("unexpected order: %q, %q", lines[0].Name, lines[1].Name)
	}
	if lines[0].Stations[1].ID != f.yeoksam.ID || lines[1].Stations[1].ID != f.yangjae.ID {
		t.Fatalf("unexpected down stations: %+v", lines)
	}
}

func TestUpdateLine(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := f.createLine(t, "신분당선", "bg-red-600", f.gangnam.ID, f.yeoksam.ID, 10)

	req := models.LineUpdateRequest{Name: "3호선", Color: "bg-blue-600"}
	if err := f.lines.UpdateLine(ctx, created.ID, req); err != nil {
		t.Fatalf("UpdateLine: %v", err)
	}
	once, _ := f.lines.FindLine(ctx, created.ID)

	if err := f.lines.UpdateLine(ctx, created.ID, req); err != nil {
		t.Fatalf("second UpdateLine: %v", err)
	}
	twice, _ := f.lines.FindLine(ctx, created.ID)

	if once.Name != "3호선" || once.Color != "bg-blue-600" {
		t.Fatalf("update not applied: %+v", once)
	}
	if !reflect.DeepEqual(once.Stations, created.Stations) {
		t.Fatalf("stations changed on update: %+v", once.Stations)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("repeated update changed state: %+v vs %+v", once, twice)
	}
}

func TestUpdateLineNotFound(t *testing.T) {
	f := newFixture(t)

	err := f.lines.UpdateLine(context.Background(), 42, models.LineUpdateRequest{Name: "a", Color: "b"})
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteLine(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := f.createLine(t, "2호선", "bg-green-700", f.gangnam.ID, f.yeoksam.ID, 20)
	second := f.createLine(t, "신분당선", "bg-red-600", f.gangnam.ID, f.yangjae.ID, 10)

	if err := f.lines.DeleteLine(ctx, first.ID); err != nil {
		t.Fatalf("DeleteLine: %v", err)
	}

	lines, err := f.lines.FindAllLines(ctx)
	if err != nil {
		t.Fatalf("FindAllLines: %v", err)
	}
	if len(lines) != 1 || lines[0].ID != second.ID {
		t.Fatalf("expected only line %d, got %+v", second.ID, lines)
	}

	if _, err := f.lines.FindLine(ctx, first.ID); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}

	if err := f.lines.DeleteLine(ctx, first.ID); err != nil {
		t.Fatalf("deleting an absent line should succeed, got %v", err)
	}

	// Stations outlive the line.
	if _, err := f.stations.FindStation(ctx, f.yeoksam.ID); err != nil {
		t.Fatalf("station removed with its line: %v", err)
	}
}
