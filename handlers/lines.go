package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JHyunJung/atdd-subway-map/models"
	"github.com/JHyunJung/atdd-subway-map/services"
)

// LineHandler serves /lines
type LineHandler struct {
	lines *services.LineService
}

func NewLineHandler(lines *services.LineService) *LineHandler {
	return &LineHandler{lines: lines}
}

// CreateLine creates a line between two stations
func (h *LineHandler) CreateLine(c *gin.Context) {
	var req models.LineRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	line, err := h.lines.SaveLine(c.Request.Context(), req)
	if err != nil {
		respondError(c, "create line", err)
		return
	}

	c.Header("Location", fmt.Sprintf("/lines/%d", line.ID))
	c.JSON(http.StatusCreated, line)
}

// ShowLines returns all lines in creation order
func (h *LineHandler) ShowLines(c *gin.Context) {
	lines, err := h.lines.FindAllLines(c.Request.Context())
	if err != nil {
		respondError(c, "retrieve lines", err)
		return
	}

	c.JSON(http.StatusOK, lines)
}

// FindLine returns one line
func (h *LineHandler) FindLine(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	line, err := h.lines.FindLine(c.Request.Context(), id)
	if err != nil {
		respondError(c, "retrieve line", err)
		return
	}

	c.JSON(http.StatusOK, line)
}

// UpdateLine changes a line's name and color
func (h *LineHandler) UpdateLine(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.LineUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.lines.UpdateLine(c.Request.Context(), id, req); err != nil {
		respondError(c, "update line", err)
		return
	}

	c.Status(http.StatusOK)
}

// DeleteLine deletes a line
func (h *LineHandler) DeleteLine(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.lines.DeleteLine(c.Request.Context(), id); err != nil {
		respondError(c, "delete line", err)
		return
	}

	c.Status(http.StatusNoContent)
}
