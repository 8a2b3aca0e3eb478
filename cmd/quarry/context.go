package main

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"quarry/internal/config"
)

// exitStatus carries a distinct process exit code for run dispositions
// that are not plain failures: cancelled runs and runs that completed
// with skips or per-file errors.
type exitStatus struct {
	code int
	msg  string
}

func (e *exitStatus) Error() string { return e.msg }

const (
	exitCancelled = 2
	exitPartial   = 3
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// resolveTargetDir picks the directory to sort: positional argument,
// then the configured default, then the current working directory.
func resolveTargetDir(cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return config.ExpandPath(args[0])
	}
	if cfg.Paths.TargetDir != "" {
		return cfg.Paths.TargetDir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Abs(wd)
}
