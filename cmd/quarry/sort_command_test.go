package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"quarry/internal/testsupport"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	path := filepath.Join(base, "quarry.toml")
	content := `
[paths]
log_dir = "` + filepath.Join(base, "logs") + `"
history_db = "` + filepath.Join(base, "history.db") + `"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCommand(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(in))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSortMovesStaleAndKeepsRecent(t *testing.T) {
	cfgPath := writeTestConfig(t)
	dir := t.TempDir()
	now := time.Now()

	testsupport.WriteFileAged(t, filepath.Join(dir, "old_report_2024.pdf"), "report",
		time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC))
	testsupport.WriteFileAged(t, filepath.Join(dir, "recent_changes.docx"), "notes",
		now.AddDate(0, 0, -10))

	output, err := runCommand(t, "", "sort", dir, "--config", cfgPath, "--yes")
	if err != nil {
		t.Fatalf("sort failed: %v\n%s", err, output)
	}

	if _, err := os.Stat(filepath.Join(dir, "Q1-2024", "old_report_2024.pdf")); err != nil {
		t.Errorf("stale file not filed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "recent_changes.docx")); err != nil {
		t.Errorf("recent file disturbed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "old_report_2024.pdf")); !os.IsNotExist(err) {
		t.Error("stale file still at source after move")
	}

	journal, err := os.ReadFile(filepath.Join(dir, "quarry.log"))
	if err != nil {
		t.Fatalf("journal missing: %v", err)
	}
	if !strings.Contains(string(journal), "moved") {
		t.Errorf("journal lacks move record:\n%s", journal)
	}
}

func TestSortSecondRunIsIdempotent(t *testing.T) {
	cfgPath := writeTestConfig(t)
	dir := t.TempDir()

	testsupport.WriteFileAged(t, filepath.Join(dir, "archive.dat"), "bytes",
		time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC))

	if out, err := runCommand(t, "", "sort", dir, "--config", cfgPath, "--yes"); err != nil {
		t.Fatalf("first run: %v\n%s", err, out)
	}

	// The moved file now lives inside Q3-2024, which is not re-scanned;
	// the second run must find nothing to move.
	output, err := runCommand(t, "", "sort", dir, "--config", cfgPath, "--yes")
	if err != nil {
		t.Fatalf("second run: %v\n%s", err, output)
	}
	if !strings.Contains(output, "0 to move") {
		t.Errorf("second run planned moves:\n%s", output)
	}
	if _, err := os.Stat(filepath.Join(dir, "Q3-2024", "archive.dat")); err != nil {
		t.Errorf("filed file disturbed by second run: %v", err)
	}
}

func TestSortDeclinedLeavesEverything(t *testing.T) {
	cfgPath := writeTestConfig(t)
	dir := t.TempDir()

	testsupport.WriteFileAged(t, filepath.Join(dir, "stale.txt"), "stale",
		time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC))

	_, err := runCommand(t, "n\n", "sort", dir, "--config", cfgPath)
	var status *exitStatus
	if !errors.As(err, &status) || status.code != exitCancelled {
		t.Fatalf("err = %v, want cancelled exit status", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "stale.txt")); err != nil {
		t.Errorf("declined run touched the file: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "Q1-2024")); !os.IsNotExist(err) {
		t.Error("declined run created a quarter folder")
	}
}

func TestSortEmptyDirectorySucceeds(t *testing.T) {
	cfgPath := writeTestConfig(t)
	dir := t.TempDir()

	output, err := runCommand(t, "", "sort", dir, "--config", cfgPath)
	if err != nil {
		t.Fatalf("empty dir run: %v\n%s", err, output)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("empty directory gained entries: %v", entries)
	}
}

func TestSortMissingDirectoryFails(t *testing.T) {
	cfgPath := writeTestConfig(t)
	missing := filepath.Join(t.TempDir(), "absent")

	if _, err := runCommand(t, "", "sort", missing, "--config", cfgPath); err == nil {
		t.Fatal("expected scan error for missing directory")
	}
}

func TestPlanDoesNotMutate(t *testing.T) {
	cfgPath := writeTestConfig(t)
	dir := t.TempDir()

	testsupport.WriteFileAged(t, filepath.Join(dir, "stale.txt"), "stale",
		time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC))

	output, err := runCommand(t, "", "plan", dir, "--config", cfgPath)
	if err != nil {
		t.Fatalf("plan: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Q1-2024") {
		t.Errorf("plan output missing destination:\n%s", output)
	}
	if _, err := os.Stat(filepath.Join(dir, "stale.txt")); err != nil {
		t.Errorf("plan moved a file: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "Q1-2024")); !os.IsNotExist(err) {
		t.Error("plan created a quarter folder")
	}
}

func TestHistoryListsRuns(t *testing.T) {
	cfgPath := writeTestConfig(t)
	dir := t.TempDir()

	testsupport.WriteFileAged(t, filepath.Join(dir, "stale.txt"), "stale",
		time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC))
	if out, err := runCommand(t, "", "sort", dir, "--config", cfgPath, "--yes"); err != nil {
		t.Fatalf("sort: %v\n%s", err, out)
	}

	output, err := runCommand(t, "", "history", "--config", cfgPath)
	if err != nil {
		t.Fatalf("history: %v\n%s", err, output)
	}
	if !strings.Contains(output, dir) || !strings.Contains(output, "success") {
		t.Errorf("history output missing run:\n%s", output)
	}
}
