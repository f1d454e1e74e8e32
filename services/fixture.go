package services

import (
	"context"
	"fmt"
	"io"

	"github.com/gin-gonic/gin/binding"
	"gopkg.in/yaml.v3"

	"github.com/JHyunJung/atdd-subway-map/models"
)

// Fixture is a YAML description of stations and the lines between them.
// Lines refer to stations by name.
type Fixture struct {
	Stations []string      `yaml:"stations"`
	Lines    []FixtureLine `yaml:"lines"`
}

// FixtureLine is one line of a Fixture
type FixtureLine struct {
	Name     string `yaml:"name"`
	Color    string `yaml:"color"`
	Up       string `yaml:"up"`
	Down     string `yaml:"down"`
	Distance int    `yaml:"distance"`
}

// SeedResult reports what a fixture created
type SeedResult struct {
	Stations []models.StationResponse
	Lines    []models.LineResponse
}

// ParseFixture decodes a fixture and checks that every line refers to a listed station
func ParseFixture(r io.Reader) (*Fixture, error) {
	var f Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}

	known := make(map[string]bool, len(f.Stations))
	for _, name := range f.Stations {
		if err := binding.Validator.ValidateStruct(models.StationRequest{Name: name}); err != nil {
			return nil, fmt.Errorf("invalid fixture: station %q: %w", name, err)
		}
		if known[name] {
			return nil, fmt.Errorf("invalid fixture: station %q listed twice", name)
		}
		known[name] = true
	}
	for _, l := range f.Lines {
		// Name and color follow the same rules as an update request.
		if err := binding.Validator.ValidateStruct(models.LineUpdateRequest{Name: l.Name, Color: l.Color}); err != nil {
			return nil, fmt.Errorf("invalid fixture: line %q: %w", l.Name, err)
		}
		for _, ref := range []string{l.Up, l.Down} {
			if !known[ref] {
				return nil, fmt.Errorf("invalid fixture: line %q refers to unknown station %q", l.Name, ref)
			}
		}
		if l.Distance <= 0 {
			return nil, fmt.Errorf("invalid fixture: line %q needs a positive distance", l.Name)
		}
	}

	return &f, nil
}

// Seed creates the fixture's stations and then its lines.
// Every request is validated with the rules the HTTP handlers apply.
func Seed(ctx context.Context, stations *StationService, lines *LineService, f *Fixture) (*SeedResult, error) {
	result := &SeedResult{}
	ids := make(map[string]int64, len(f.Stations))

	for _, name := range f.Stations {
		req := models.StationRequest{Name: name}
		if err := binding.Validator.ValidateStruct(req); err != nil {
			return result, fmt.Errorf("seed station %q: %w", name, err)
		}

		st, err := stations.CreateStation(ctx, req)
		if err != nil {
			return result, fmt.Errorf("seed station %q: %w", name, err)
		}
		ids[name] = st.ID
		result.Stations = append(result.Stations, st)
	}

	for _, l := range f.Lines {
		req := models.LineRequest{
			Name:          l.Name,
			Color:         l.Color,
			UpStationID:   ids[l.Up],
			DownStationID: ids[l.Down],
			Distance:      l.Distance,
		}
		if err := binding.Validator.ValidateStruct(req); err != nil {
			return result, fmt.Errorf("seed line %q: %w", l.Name, err)
		}

		line, err := lines.SaveLine(ctx, req)
		if err != nil {
			return result, fmt.Errorf("seed line %q: %w", l.Name, err)
		}
		result.Lines = append(result.Lines, line)
	}

	return result, nil
}
