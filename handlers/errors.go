package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JHyunJung/atdd-subway-map/middleware"
	"github.com/JHyunJung/atdd-subway-map/models"
)

// respondError maps domain errors to status codes
func respondError(c *gin.Context, op string, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrStationInUse):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			"op", op, "error", err, "request_id", middleware.GetRequestID(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to %s", op)})
	}
}

// pathID parses the :id path parameter, writing a 400 on failure
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}
