// Package cli provides the command-line interface for gamepulse.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/okian/gamepulse/internal/adapters/catalog"
	"github.com/okian/gamepulse/internal/config"
	"github.com/okian/gamepulse/pkg/logger"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global config and catalog, loaded once in PersistentPreRunE.
	cfg *config.Config
	cat *catalog.Catalog
)

var rootCmd = &cobra.Command{
	Use:   "gamepulse",
	Short: "Weekly live-service game telemetry digest",
	Long: `Gamepulse turns one scraped telemetry batch (player counts, official
news, press coverage, community posts) into a weekly digest: ranked and
enriched titles, per-title narratives, market highlights, and a
forward-looking release calendar.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		// A missing .env file is fine; env vars may come from anywhere.
		_ = godotenv.Load()

		if err := logger.Init(); err != nil {
			return fmt.Errorf("initialize logging: %w", err)
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		if err := logger.SetLevelString(cfg.LogLevel); err != nil {
			logger.Get().Warn(cmd.Context(), "invalid log_level; falling back to info",
				logger.String("log_level", cfg.LogLevel), logger.Error(err))
			_ = logger.SetLevelString("info")
		}

		cat, err = loadCatalog(cfg.CatalogFile)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		return nil
	},
}

// loadCatalog returns the built-in catalog when no file is configured.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(synthCmd)
}

// writeOutput writes rendered JSON to path, or stdout when path is "-".
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
