package testsupport

import (
	"path/filepath"
	"testing"

	"quarry/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per
// test. It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.TargetDir = filepath.Join(base, "target")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.HistoryDB = filepath.Join(base, "history.db")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithThresholdDays overrides the retention threshold on the test config.
func WithThresholdDays(days int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Sorting.ThresholdDays = days
	}
}

// WithWorkers overrides the mover pool size on the test config.
func WithWorkers(n int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Sorting.Workers = n
	}
}
