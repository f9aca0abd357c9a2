package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"packrat/cmd/catalogctl/commands"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "catalogctl",
		Short: "Administration tool for the Packrat catalog",
		Long:  "CLI tool for seeding, inspecting and exporting the item collection",
	}

	rootCmd.AddCommand(commands.NewSeedCmd())
	rootCmd.AddCommand(commands.NewListCmd())
	rootCmd.AddCommand(commands.NewAddCmd())
	rootCmd.AddCommand(commands.NewClassifyCmd())
	rootCmd.AddCommand(commands.NewExportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
