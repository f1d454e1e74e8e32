package models

// Station represents a subway station
type Station struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// StationRequest represents a station creation request
type StationRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// StationResponse represents a station as returned to clients
type StationResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewStationResponse maps a station to its response view
func NewStationResponse(s Station) StationResponse {
	return StationResponse{ID: s.ID, Name: s.Name}
}
