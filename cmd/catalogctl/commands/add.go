package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"packrat/internal/catalog"
	"packrat/internal/config"
)

// NewAddCmd creates the add command.
func NewAddCmd() *cobra.Command {
	var description string
	var tags []string
	var quantity int
	var category string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an item to the collection",
		Long:  "Add an item. Without --category the item is auto-classified from its name and tags.",
		Args:  cobra.ExactArgs(1),
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

			item, err := engine.Create(context.Background(), catalog.Draft{
				Name:        args[0],
				Description: description,
				Tags:        tags,
				Quantity:    quantity,
				Category:    category,
			})
			if err != nil {
				return fmt.Errorf("failed to add item: %w", err)
			}

			fmt.Printf("Added %s to %s (id %s)\n", item.Name, item.Category, item.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Item description")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Item tags (repeatable)")
	cmd.Flags().IntVarP(&quantity, "quantity", "n", 1, "Item quantity")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Explicit category (skips classification)")
	return cmd
}
