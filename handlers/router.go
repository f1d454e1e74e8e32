package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/JHyunJung/atdd-subway-map/config"
	"github.com/JHyunJung/atdd-subway-map/middleware"
	"github.com/JHyunJung/atdd-subway-map/services"
)

// NewRouter wires the HTTP routes onto a gin engine
func NewRouter(cfg *config.Config, logger *slog.Logger, stations *services.StationService, lines *services.LineService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logging(logger))

	// CORS configuration
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Location", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORSAllowOrigins) == 0 || (len(cfg.CORSAllowOrigins) == 1 && cfg.CORSAllowOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	stationHandler := NewStationHandler(stations)
	lineHandler := NewLineHandler(lines)

	// Station routes
	router.POST("/stations", stationHandler.CreateStation)
	router.GET("/stations", stationHandler.GetStations)
	router.GET("/stations/:id", stationHandler.GetStation)
	router.DELETE("/stations/:id", stationHandler.DeleteStation)

	// Line routes
	router.POST("/lines", lineHandler.CreateLine)
	router.GET("/lines", lineHandler.ShowLines)
	router.GET("/lines/:id", lineHandler.FindLine)
	router.PUT("/lines/:id", lineHandler.UpdateLine)
	router.DELETE("/lines/:id", lineHandler.DeleteLine)

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return router
}
