package models

import "encoding/json"

// LineStations is the ordered list of station ids a line runs through.
// It holds ids only; stations are resolved by the caller.
type LineStations struct {
	ids []int64
}

// NewLineStations returns a list holding the given station ids in order
func NewLineStations(ids ...int64) LineStations {
	return LineStations{ids: append([]int64(nil), ids...)}
}

// Add appends a station to the end of the line
func (s *LineStations) Add(stationID int64) {
	s.ids = append(s.ids, stationID)
}

// Remove drops the first occurrence of a station and reports whether it was present
func (s *LineStations) Remove(stationID int64) bool {
	for i, id := range s.ids {
		if id == stationID {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether the station is on the line
func (s LineStations) Contains(stationID int64) bool {
	for _, id := range s.ids {
		if id == stationID {
			return true
		}
	}
	return false
}

// IDs returns a copy of the station ids in order
func (s LineStations) IDs() []int64 {
	return append([]int64(nil), s.ids...)
}

// Len reports how many stations the line runs through
func (s LineStations) Len() int {
	return len(s.ids)
}

// MarshalJSON encodes the stations as an ordered array of ids
func (s LineStations) MarshalJSON() ([]byte, error) {
	if s.ids == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.ids)
}

// UnmarshalJSON decodes an ordered array of station ids
func (s *LineStations) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &s.ids)
}
