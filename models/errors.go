package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every NotFoundError
	ErrNotFound = errors.New("not found")
	// ErrStationInUse is returned when deleting a station a line still runs through
	ErrStationInUse = errors.New("station is used by a line")
)

// NotFoundError reports a missing station or line
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// StationNotFound builds the error for an unknown station id
func StationNotFound(id int64) error {
	return &NotFoundError{Entity: "station", ID: id}
}

// LineNotFound builds the error for an unknown line id
func LineNotFound(id int64) error {
	return &NotFoundError{Entity: "line", ID: id}
}
