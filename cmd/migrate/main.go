// Command migrate manages the exercise catalog and assessment schema.
//
//	go run ./cmd/migrate up
//	go run ./cmd/migrate down
//	go run ./cmd/migrate version
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"oaknee-backend/internal/shared/config"
	"oaknee-backend/internal/shared/storage/db"
	"oaknee-backend/internal/shared/telemetry"
)

type action func(ctx context.Context, cmd *cobra.Command, sqlDB *sql.DB) error

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply or inspect database migrations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newActionCmd("up", "Apply all pending migrations", func(ctx context.Context, cmd *cobra.Command, sqlDB *sql.DB) error {
			if err := db.RunMigrations(ctx, sqlDB); err != nil {
				return err
			}
			telemetry.Info("migrate.up", nil)
			return nil
		}),
		newActionCmd("down", "Roll back the latest migration", func(ctx context.Context, cmd *cobra.Command, sqlDB *sql.DB) error {
			if err := db.RollbackMigration(ctx, sqlDB); err != nil {
				return err
			}
			telemetry.Info("migrate.down", nil)
			return nil
		}),
		newActionCmd("version", "Print the applied schema version", func(ctx context.Context, cmd *cobra.Command, sqlDB *sql.DB) error {
			v, err := db.MigrationVersion(ctx, sqlDB)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		}),
	)
	return root
}

func newActionCmd(use, short string, run action) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			telemetry.Configure(cfg.LogLevel)
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL is required")
			}
			ctx := cmd.Context()
			sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultOptions(db.ProfileMigrate)))
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer sqlDB.Close()
			return run(ctx, cmd, sqlDB)
		},
	}
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
