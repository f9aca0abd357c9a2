package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"packrat/internal/aggregate"
	"packrat/internal/config"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	var bySubject bool
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the collection grouped by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			engine, st, classifierCfg, err := openEngine(cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := st.Close(); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: failed to close store: %v\n", err)
				}
			}()

			items, err := engine.List(context.Background(), query)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("No items found")
				return nil
			}

			var strategy aggregate.Strategy = aggregate.ByCategory{}
			if bySubject {
				strategy = aggregate.BySubject{Priority: classifierCfg.SubjectPriority}
			}

			for _, group := range aggregate.Run(items, strategy) {
				fmt.Printf("%s (%d)\n", group.Name, len(group.Items))
				for _, item := range group.Items {
					fmt.Printf("  - %s x%d  [%s]\n", item.Name, item.Quantity, item.ID)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&bySubject, "by-subject", false, "Group by canonical subject instead of category")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter items by name substring")
	return cmd
}
