// Package config defines process configuration and loading.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - Layer file and environment overrides in Load.
// - External errors are wrapped via this package's error kinds.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// HistoryDir is where per-day digest snapshots are kept.
	HistoryDir string `koanf:"history_dir"`

	// CatalogFile optionally overrides the compiled-in title catalog.
	CatalogFile string `koanf:"catalog_file"`

	// OutputFile is where the digest JSON is written. "-" means stdout.
	OutputFile string `koanf:"output_file"`

	// MetricsAddr exposes /metrics while a run is in flight when non-empty,
	// e.g. ":9090".
	MetricsAddr string `koanf:"metrics_addr"`

	// HorizonMonths is how many future months the release calendar covers.
	HorizonMonths int `koanf:"horizon_months"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		HistoryDir:    "digests/history",
		OutputFile:    "-",
		HorizonMonths: 10,
	}
}
