package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"packrat/internal/config"
	"packrat/internal/export"
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the collection as Dublin Core XML",
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

			items, err := engine.List(context.Background(), "")
			if err != nil {
				return err
			}

			body, err := export.DublinCoreXML(items)
			if err != nil {
				return fmt.Errorf("failed to export: %w", err)
			}

			if outPath == "" {
				fmt.Print(string(body))
				return nil
			}
			if err := os.WriteFile(outPath, body, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			fmt.Printf("Wrote %d item(s) to %s\n", len(items), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (defaults to stdout)")
	return cmd
}
