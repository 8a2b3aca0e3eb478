package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndListRuns(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	started := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)

	id, err := store.RecordRun(ctx, Run{
		StartedAt:     started,
		FinishedAt:    started.Add(2 * time.Second),
		TargetDir:     "/data/inbox",
		ThresholdDays: 90,
		Moved:         2,
		SkippedLocked: 1,
		Status:        "partial",
	}, []OutcomeRecord{
		{Path: "/data/inbox/a.pdf", Label: "Q1-2024", Result: "moved"},
		{Path: "/data/inbox/b.doc", Result: "skipped-locked"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Fatal("expected a generated run id")
	}

	runs, err := store.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(runs))
	}
	run := runs[0]
	if run.ID != id || run.TargetDir != "/data/inbox" || run.Moved != 2 || run.SkippedLocked != 1 {
		t.Errorf("unexpected run: %+v", run)
	}
	if !run.StartedAt.Equal(started) {
		t.Errorf("started_at = %s, want %s", run.StartedAt, started)
	}

	outcomes, err := store.RunOutcomes(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if len(outcomes) != 2 {
		t.Fatalf("outcomes = %d, want 2", len(outcomes))
	}
	if outcomes[0].Label != "Q1-2024" || outcomes[1].Result != "skipped-locked" {
		t.Errorf("unexpected outcomes: %+v", outcomes)
	}
}

func TestRecentRunsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		started := base.AddDate(0, 0, i)
		if _, err := store.RecordRun(ctx, Run{
			StartedAt:     started,
			FinishedAt:    started.Add(time.Second),
			TargetDir:     "/data",
			ThresholdDays: 90,
			Status:        "success",
		}, nil); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := store.RecentRuns(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Fatalf("runs = %d, want 3", len(runs))
	}
	for i := 1; i < len(runs); i++ {
		if runs[i].StartedAt.After(runs[i-1].StartedAt) {
			t.Error("runs not ordered newest first")
		}
	}
}
