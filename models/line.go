package models

// Line represents a subway line running through an ordered set of stations
type Line struct {
	ID       int64        `json:"id"`
	Name     string       `json:"name"`
	Color    string       `json:"color"`
	Distance int          `json:"distance"`
	Stations LineStations `json:"stations"`
}

// NewLine builds a line that starts with its up and down stations
func NewLine(name, color string, upStationID, downStationID int64, distance int) *Line {
	return &Line{
		Name:     name,
		Color:    color,
		Distance: distance,
		Stations: NewLineStations(upStationID, downStationID),
	}
}

// Rename overwrites the mutable attributes of the line
func (l *Line) Rename(name, color string) {
	l.Name = name
	l.Color = color
}

// LineRequest represents a line creation request
type LineRequest struct {
	Name          string `json:"name" binding:"required,max=20"`
	Color         string `json:"color" binding:"required,max=15"`
	UpStationID   int64  `json:"upStationId" binding:"required"`
	DownStationID int64  `json:"downStationId" binding:"required"`
	Distance      int    `json:"distance" binding:"required,gt=0"`
}

// LineUpdateRequest represents a line modification request.
// Only name and color can change once a line exists.
type LineUpdateRequest struct {
	Name  string `json:"name" binding:"required,max=20"`
	Color string `json:"color" binding:"required,max=15"`
}

// LineResponse represents a line with its stations resolved
type LineResponse struct {
	ID       int64             `json:"id"`
	Name     string            `json:"name"`
	Color    string            `json:"color"`
	Stations []StationResponse `json:"stations"`
}

// NewLineResponse maps a line and its resolved stations to a response view
func NewLineResponse(l *Line, stations []Station) LineResponse {
	views := make([]StationResponse, 0, len(stations))
	for _, s := range stations {
		views = append(views, NewStationResponse(s))
	}

	return LineResponse{
		ID:       l.ID,
		Name:     l.Name,
		Color:    l.Color,
		Stations: views,
	}
}
