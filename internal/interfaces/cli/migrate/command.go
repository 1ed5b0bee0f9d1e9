// Package migrate implements the CLI command that creates or updates the
// database schema.
package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"eveuniverse/internal/infrastructure/config"
	"eveuniverse/internal/infrastructure/database"
	"eveuniverse/internal/shared/logger"
	"eveuniverse/internal/universe/models"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Long:  `Bring the database schema up to date with the persistence models.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	log.Infow("running schema migration", "environment", env)
	if err := database.Get().AutoMigrate(models.All()...); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}
	log.Infow("schema migration completed")
	return nil
}
