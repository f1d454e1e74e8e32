package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/JHyunJung/atdd-subway-map/config"
	"github.com/JHyunJung/atdd-subway-map/database"
	"github.com/JHyunJung/atdd-subway-map/logger"
	"github.com/JHyunJung/atdd-subway-map/services"
)

// Execute runs the subway command tree
func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "subway",
		Short:        "Subway station and line management server",
		SilenceUsage: true,
		RunE:         runServe,
	}

	root.AddCommand(newServeCmd(), newMigrateCmd(), newSeedCmd())
	return root
}

// app holds the wired dependencies shared by every command
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	store    database.Store
	stations *services.StationService
	lines    *services.LineService
}

// openApp loads configuration, connects the store and applies migrations
func openApp(ctx context.Context) (*app, error) {
	cfg := config.Load()
	log := logger.Setup(os.Stdout, cfg.LogLevel)
	for _, w := range cfg.Warnings {
		log.Warn(w)
	}

	store, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, err
	}

	stations := services.NewStationService(store)
	return &app{
		cfg:      cfg,
		log:      log,
		store:    store,
		stations: stations,
		lines:    services.NewLineService(store, stations),
	}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.log.Warn("failed to close store", "error", err)
	}
}
