package main

import (
	"os"

	"github.com/spf13/cobra"

	"eveuniverse/internal/interfaces/cli/load"
	"eveuniverse/internal/interfaces/cli/migrate"
	"eveuniverse/internal/interfaces/cli/purge"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "eveuniverse",
		Short: "Eve Online universe data mirror",
		Long:  `Mirror Eve Online universe reference data from ESI into a local database and keep it fresh.`,
	}

	rootCmd.AddCommand(
		load.NewCommand(),
		migrate.NewCommand(),
		purge.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
