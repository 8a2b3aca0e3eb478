package config

import (
	"fmt"
	"strings"
)

// Validate checks the configuration for values the engine cannot run
// with.
func (c *Config) Validate() error {
	if c.Sorting.ThresholdDays <= 0 {
		return fmt.Errorf("sorting.threshold_days must be positive, got %d", c.Sorting.ThresholdDays)
	}
	if c.Sorting.Workers < 0 {
		return fmt.Errorf("sorting.workers must not be negative, got %d", c.Sorting.Workers)
	}
	if c.Sorting.JournalName == "" {
		return fmt.Errorf("sorting.journal_name must not be empty")
	}
	if strings.ContainsAny(c.Sorting.JournalName, `/\`) {
		return fmt.Errorf("sorting.journal_name %q must be a bare file name", c.Sorting.JournalName)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
