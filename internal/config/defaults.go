package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Default returns the baseline configuration before any file is
// applied.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:    defaultStateDir("logs"),
			HistoryDB: filepath.Join(defaultStateDir(""), "history.db"),
		},
		Sorting: Sorting{
			ThresholdDays: 90,
			Workers:       0,
			Protected:     []string{".log", ".exe"},
			JournalName:   "quarry.log",
		},
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
	}
}

func defaultStateDir(sub string) string {
	base := ""
	if xdg, ok := os.LookupEnv("XDG_STATE_HOME"); ok && strings.TrimSpace(xdg) != "" {
		base = filepath.Join(xdg, "quarry")
	} else if home, err := os.UserHomeDir(); err == nil {
		base = filepath.Join(home, ".local", "state", "quarry")
	} else {
		base = filepath.Join(os.TempDir(), "quarry")
	}
	if sub == "" {
		return base
	}
	return filepath.Join(base, sub)
}
