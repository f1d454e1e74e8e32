package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JHyunJung/atdd-subway-map/models"
	"github.com/JHyunJung/atdd-subway-map/services"
)

// StationHandler serves /stations
type StationHandler struct {
	stations *services.StationService
}

func NewStationHandler(stations *services.StationService) *StationHandler {
	return &StationHandler{stations: stations}
}

// CreateStation creates a new station
func (h *StationHandler) CreateStation(c *gin.Context) {
	var req models.StationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	station, err := h.stations.CreateStation(c.Request.Context(), req)
	if err != nil {
		respondError(c, "create station", err)
		return
	}

	c.Header("Location", fmt.Sprintf("/stations/%d", station.ID))
	c.JSON(http.StatusCreated, station)
}

// GetStations returns all stations
func (h *StationHandler) GetStations(c *gin.Context) {
	stations, err := h.stations.GetAllStations(c.Request.Context())
	if err != nil {
		respondError(c, "retrieve stations", err)
		return
	}

	c.JSON(http.StatusOK, stations)
}

// GetStation returns one station
func (h *StationHandler) GetStation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	station, err := h.stations.FindStation(c.Request.Context(), id)
	if err != nil {
		respondError(c, "retrieve station", err)
		return
	}

	c.JSON(http.StatusOK, models.NewStationResponse(station))
}

// DeleteStation deletes a station
func (h *StationHandler) DeleteStation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.stations.DeleteStation(c.Request.Context(), id); err != nil {
		respondError(c, "delete station", err)
		return
	}

	c.Status(http.StatusNoContent)
}
