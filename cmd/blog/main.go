// Package main provides the blog binary: the HTTP server plus the
// maintenance commands that share its configuration.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"blog-service/internal/config"
	"blog-service/internal/logger"
)

const appName = "blog"

// Set at build time with -ldflags "-X main.Version=...".
var (
	Version   = "0.1.0"
	BuildTime = "dev"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
}

func rootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Blog content service",
		Long:          "Serves the /blog pages and manages the posts database.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides LOG_LEVEL")

	cmd.AddCommand(
		serveCmd(flags),
		migrateCmd(flags),
		authorCmd(flags),
		versionCmd(),
	)

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}

// loadConfig reads the configuration and initializes the logger from it.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	cfg, err := config.LoadFile(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}

	logger.Init(cfg.LogLevel, cfg.LogFormat)
	logger.Debug("Configuration loaded",
		slog.String("config_file", flags.configPath),
		slog.String("db_host", cfg.DBHost),
		slog.String("db_name", cfg.DBName))

	return cfg, nil
}
