package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"packrat/internal/config"
)

// NewSeedCmd creates the seed command.
func NewSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the collection with sample items",
		Long:  "Populate an empty store with the sample collection. A no-op once the seed flag is set.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			engine, st, _, err := openEngine(cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := st.Close(); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: failed to close store: %v\n", err)
				}
			}()

			if err := engine.SeedIfNeeded(context.Background()); err != nil {
				return fmt.Errorf("failed to seed collection: %w", err)
			}

			items, err := engine.List(context.Background(), "")
			if err != nil {
				return err
			}
			fmt.Printf("Collection holds %d item(s)\n", len(items))
			return nil
		},
	}
}
