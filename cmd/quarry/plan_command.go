package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"quarry/internal/logging"
	"quarry/internal/plan"
	"quarry/internal/protect"
)

func newPlanCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "plan [directory]",
		Short: "Show what a sort run would do, without touching anything",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			dir, err := resolveTargetDir(cfg, args)
			if err != nil {
				return err
			}
			journalPath := filepath.Join(dir, cfg.Sorting.JournalName)

			executable, _ := os.Executable()
			filter := protect.New(executable, journalPath, cfg.Sorting.Protected)

			p, err := plan.NewBuilder(filter, cfg.Threshold(), logger).Build(dir, time.Now())
			if err != nil {
				return err
			}

			writePlan(cmd.OutOrStdout(), p)
			return nil
		},
	}
}
