package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Rana718/carga/internal/config"
	"github.com/Rana718/carga/internal/database"
	"github.com/Rana718/carga/internal/log"
	"github.com/Rana718/carga/internal/migration"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Long: `Apply every migration that has not been recorded yet, in file name order.
A recorded migration whose content has changed since it was applied aborts
the command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		adapter, err := connect(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer adapter.Close()

		return applyMigrations(cmd.Context(), cfg, adapter)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

// connect opens the database named by the configured environment variable.
// A missing URL is fatal.
func connect(ctx context.Context, cfg *config.Config) (database.DatabaseAdapter, error) {
	dbURL, err := cfg.GetDatabaseURL()
	if err != nil {
		return nil, err
	}

	provider := cfg.ResolveProvider(dbURL)
	adapter, err := database.NewAdapter(provider)
	if err != nil {
		return nil, err
	}

	if err := adapter.Connect(ctx, dbURL); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := adapter.Ping(ctx); err != nil {
		adapter.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Log.WithField("provider", provider).Debug("connected to database")
	return adapter, nil
}

func applyMigrations(ctx context.Context, cfg *config.Config, adapter database.DatabaseAdapter) error {
	manager, err := migration.NewManager(cfg.MigrationsPath)
	if err != nil {
		return fmt.Errorf("failed to create migration manager: %w", err)
	}

	applied, err := manager.Apply(ctx, adapter)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	if applied == 0 {
		color.Green("✓ Schema is up to date")
	} else {
		color.Green("✓ Applied %d migration(s)", applied)
	}
	return nil
}
