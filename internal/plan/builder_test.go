package plan

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"quarry/internal/logging"
	"quarry/internal/protect"
	"quarry/internal/quarter"
	"quarry/internal/testsupport"
)

func testBuilder(reserved []string) *Builder {
	filter := protect.New("/opt/quarry", "quarry.log", reserved)
	return NewBuilder(filter, quarter.Days(90), logging.NewNop())
}

func TestBuildClassifiesSnapshot(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	testsupport.WriteFileAged(t, filepath.Join(dir, "old_report_2024.pdf"), "report",
		time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC))
	testsupport.WriteFileAged(t, filepath.Join(dir, "recent_changes.docx"), "notes",
		now.AddDate(0, 0, -10))
	testsupport.WriteFileAged(t, filepath.Join(dir, "quarry.log"), "journal",
		time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC))

	p, err := testBuilder([]string{".log"}).Build(dir, now)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(p.Items))
	}

	byName := make(map[string]Item)
	for _, item := range p.Items {
		byName[item.Entry.Name] = item
	}

	old := byName["old_report_2024.pdf"]
	if old.Decision != Move || old.Label.String() != "Q1-2024" {
		t.Errorf("old_report_2024.pdf: decision=%s label=%s, want move Q1-2024", old.Decision, old.Label)
	}
	if byName["recent_changes.docx"].Decision != Stay {
		t.Error("recent file should stay")
	}
	if byName["quarry.log"].Decision != SkipProtected {
		t.Error("journal should be protected regardless of age")
	}
}

func TestBuildSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	// A quarter folder from a previous run must never be re-classified.
	testsupport.WriteFileAged(t, filepath.Join(dir, "Q1-2024", "old_report_2024.pdf"), "report",
		time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC))

	p, err := testBuilder(nil).Build(dir, now)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Items) != 0 {
		t.Fatalf("items = %d, want 0 (directories excluded)", len(p.Items))
	}
}

func TestBuildEmptyDirectory(t *testing.T) {
	p, err := testBuilder(nil).Build(t.TempDir(), time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Items) != 0 || len(p.Labels()) != 0 {
		t.Error("empty directory should yield an empty plan with no destinations")
	}
}

func TestBuildMissingDirectory(t *testing.T) {
	_, err := testBuilder(nil).Build(filepath.Join(t.TempDir(), "absent"), time.Now())
	if !errors.Is(err, ErrScan) {
		t.Fatalf("err = %v, want ErrScan", err)
	}
}

func TestBuildDeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	stale := time.Date(2024, time.November, 20, 0, 0, 0, 0, time.UTC)

	for _, name := range []string{"b.txt", "a.txt", "c.txt"} {
		testsupport.WriteFileAged(t, filepath.Join(dir, name), name, stale)
	}

	builder := testBuilder(nil)
	first, err := builder.Build(dir, now)
	if err != nil {
		t.Fatal(err)
	}
	second, err := builder.Build(dir, now)
	if err != nil {
		t.Fatal(err)
	}
	if len(first.Items) != len(second.Items) {
		t.Fatal("plans differ in length")
	}
	for i := range first.Items {
		if first.Items[i] != second.Items[i] {
			t.Errorf("item %d differs between identical runs", i)
		}
	}
}

func TestLabelsSortedUnique(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	testsupport.WriteFileAged(t, filepath.Join(dir, "one.txt"), "1",
		time.Date(2024, time.November, 2, 0, 0, 0, 0, time.UTC))
	testsupport.WriteFileAged(t, filepath.Join(dir, "two.txt"), "2",
		time.Date(2024, time.December, 2, 0, 0, 0, 0, time.UTC))
	testsupport.WriteFileAged(t, filepath.Join(dir, "three.txt"), "3",
		time.Date(2024, time.February, 2, 0, 0, 0, 0, time.UTC))

	p, err := testBuilder(nil).Build(dir, now)
	if err != nil {
		t.Fatal(err)
	}

	labels := p.Labels()
	if len(labels) != 2 {
		t.Fatalf("labels = %v, want two unique quarters", labels)
	}
	if labels[0].String() != "Q1-2024" || labels[1].String() != "Q4-2024" {
		t.Errorf("labels = %v, want [Q1-2024 Q4-2024]", labels)
	}
}
