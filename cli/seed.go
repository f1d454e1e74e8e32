package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JHyunJung/atdd-subway-map/services"
)

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create stations and lines from a YAML fixture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("open fixture: %w", err)
			}
			defer f.Close()

			fixture, err := services.ParseFixture(f)
			if err != nil {
				return err
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := services.Seed(cmd.Context(), a.stations, a.lines, fixture)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d stations and %d lines\n",
				len(result.Stations), len(result.Lines))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "fixtures.yaml", "path to the YAML fixture")
	return cmd
}
