package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"blog-service/internal/config"
	"blog-service/internal/logger"
)

func migrateCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	var steps int

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigration(flags, func(m *migrate.Migrate) error { return m.Up() })
		},
	}

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations (all of them unless --steps is set)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigration(flags, func(m *migrate.Migrate) error {
				if steps > 0 {
					return m.Steps(-steps)
				}
				return m.Down()
			})
		},
	}
	down.Flags().IntVar(&steps, "steps", 0, "Number of migrations to roll back")

	cmd.AddCommand(up, down)
	return cmd
}

func runMigration(flags *globalFlags, apply func(*migrate.Migrate) error) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	m, err := newMigrate(cfg)
	if err != nil {
		return err
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			logger.Warn("Failed to close migrator",
				slog.Any("source_error", srcErr),
				slog.Any("database_error", dbErr))
		}
	}()

	if err := apply(m); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("No migrations to apply")
			return nil
		}
		return fmt.Errorf("run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		logger.Info("Migrations rolled back to empty schema")
	case err != nil:
		return fmt.Errorf("read migration version: %w", err)
	default:
		logger.Info("Migrations applied",
			slog.Uint64("version", uint64(version)),
			slog.Bool("dirty", dirty))
	}
	return nil
}

func newMigrate(cfg *config.Config) (*migrate.Migrate, error) {
	path, err := filepath.Abs(cfg.MigrationsPath)
	if err != nil {
		return nil, fmt.Errorf("resolve migrations path: %w", err)
	}

	m, err := migrate.New("file://"+filepath.ToSlash(path), cfg.DatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return m, nil
}
