package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"quarry/internal/config"
	"quarry/internal/history"
	"quarry/internal/journal"
	"quarry/internal/lockprobe"
	"quarry/internal/logging"
	"quarry/internal/mover"
	"quarry/internal/plan"
	"quarry/internal/protect"
)

func newSortCommand(cctx *commandContext) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "sort [directory]",
		Short: "Plan and execute quarter filing for a directory",
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

			// Best-effort: a tool that cannot resolve its own binary
			// still protects the journal and the deny-list.
			executable, _ := os.Executable()
			filter := protect.New(executable, journalPath, cfg.Sorting.Protected)

			started := time.Now()
			p, err := plan.NewBuilder(filter, cfg.Threshold(), logger).Build(dir, started)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			writeBanner(out, dir, cfg.Sorting.ThresholdDays, journalPath)
			writePlan(out, p)

			if len(p.Moves()) == 0 {
				return nil
			}

			if !confirmProceed(cmd.InOrStdin(), out, assumeYes) {
				logger.Info("run cancelled by user", logging.String("dir", dir))
				return &exitStatus{code: exitCancelled, msg: "Operation cancelled by user."}
			}

			// The barrier: every destination folder exists before the
			// first worker starts.
			if err := mover.EnsureDirectories(dir, p.Labels()); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			j, err := journal.Open(journalPath, logger)
			if err != nil {
				return err
			}
			j.Note("run started: target=%s threshold_days=%d", dir, cfg.Sorting.ThresholdDays)

			outcomes := mover.New(lockprobe.Flock{}, cfg.WorkerCount(), j, logger).Execute(ctx, p)
			tally := mover.Count(outcomes)

			j.Note("run finished: moved=%d skipped_locked=%d skipped_exists=%d cancelled=%d failed=%d",
				tally.Moved, tally.SkippedLocked, tally.SkippedExists, tally.Cancelled, tally.Failed)
			if err := j.Close(); err != nil {
				logger.Warn("journal close failed", logging.Error(err))
			}

			fmt.Fprintln(out)
			writeRunSummary(out, tally, journalPath)

			recordHistory(cmd.Context(), cfg, logger, history.Run{
				StartedAt:     started,
				FinishedAt:    time.Now(),
				TargetDir:     dir,
				ThresholdDays: cfg.Sorting.ThresholdDays,
				Moved:         tally.Moved,
				SkippedLocked: tally.SkippedLocked,
				SkippedExists: tally.SkippedExists,
				Cancelled:     tally.Cancelled,
				Failed:        tally.Failed,
				Status:        runStatus(tally),
			}, outcomes)

			if !tally.Clean() {
				return &exitStatus{code: exitPartial, msg: "Run completed with skipped, cancelled, or failed files."}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func runStatus(tally mover.Tally) string {
	switch {
	case tally.Cancelled > 0:
		return "interrupted"
	case tally.Clean():
		return "success"
	default:
		return "partial"
	}
}

// recordHistory persists the run best-effort; history is an archive,
// never a gate on move correctness.
func recordHistory(ctx context.Context, cfg *config.Config, logger *slog.Logger, run history.Run, outcomes []mover.Outcome) {
	if cfg.Paths.HistoryDB == "" {
		return
	}
	store, err := history.Open(cfg.Paths.HistoryDB)
	if err != nil {
		logger.Warn("history unavailable", logging.Error(err))
		return
	}
	defer store.Close()

	records := make([]history.OutcomeRecord, 0, len(outcomes))
	for _, o := range outcomes {
		rec := history.OutcomeRecord{
			Path:   o.Item.Entry.Path,
			Label:  o.Item.Label.String(),
			Result: o.Result.String(),
		}
		if o.Err != nil {
			rec.Detail = o.Err.Error()
		}
		records = append(records, rec)
	}

	if _, err := store.RecordRun(ctx, run, records); err != nil {
		logger.Warn("history record failed", logging.Error(err))
	}
}
