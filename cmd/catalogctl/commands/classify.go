package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"packrat/internal/classify"
	"packrat/internal/config"
)

// NewClassifyCmd creates the classify command.
func NewClassifyCmd() *cobra.Command {
	var tags []string

	cmd := &cobra.Command{
		Use:   "classify <name>",
		Short: "Show the category the classifier would assign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			classifierCfg := classify.DefaultConfig()
			if cfg.ClassifierConfigPath != "" {
				classifierCfg, err = classify.LoadConfig(cfg.ClassifierConfigPath)
				if err != nil {
					return fmt.Errorf("loading classifier config: %w", err)
				}
			}

			category, confidence := classify.New(classifierCfg).ClassifyWithConfidence(args[0], tags)
			fmt.Printf("%s (confidence %.2f)\n", category, confidence)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Item tags (repeatable)")
	return cmd
}
