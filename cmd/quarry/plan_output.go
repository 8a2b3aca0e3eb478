package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"quarry/internal/mover"
	"quarry/internal/plan"
)

// writeBanner summarizes what the run will do before the prompt.
func writeBanner(out io.Writer, dir string, thresholdDays int, journalPath string) {
	fmt.Fprintln(out, "quarry - quarterly file filing")
	fmt.Fprintln(out, "==============================")
	fmt.Fprintf(out, "Target directory: %s\n", dir)
	fmt.Fprintln(out, "This run will:")
	fmt.Fprintln(out, "  1. Scan the files at the top level of the target directory")
	fmt.Fprintf(out, "  2. Move files older than %d days into quarter folders (Q1-2024, Q2-2024, ...)\n", thresholdDays)
	fmt.Fprintf(out, "  3. Skip locked files and record every outcome in %s\n", journalPath)
	fmt.Fprintln(out)
}

func writePlan(out io.Writer, p *plan.Plan) {
	if len(p.Items) == 0 {
		fmt.Fprintln(out, "No files found; nothing to do.")
		return
	}

	rows := make([][]string, 0, len(p.Items))
	for _, item := range p.Items {
		dest := ""
		if item.Decision == plan.Move {
			dest = item.Label.String()
		}
		rows = append(rows, []string{
			item.Entry.Name,
			humanize.Bytes(uint64(item.Entry.Size)),
			item.Entry.ModifiedAt.Format("2006-01-02"),
			item.Decision.String(),
			dest,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"File", "Size", "Modified", "Decision", "Destination"},
		rows, 2,
	))

	summary := p.Summary()
	fmt.Fprintf(out, "%d files: %d to move, %d stay, %d protected\n",
		summary.Total, summary.Move, summary.Stay, summary.Protected)
	if len(summary.Labels) > 0 {
		names := make([]string, 0, len(summary.Labels))
		for _, label := range summary.Labels {
			names = append(names, label.String())
		}
		fmt.Fprintf(out, "Destination folders: %s\n", strings.Join(names, ", "))
	}
}

func writeRunSummary(out io.Writer, tally mover.Tally, journalPath string) {
	fmt.Fprintln(out, renderTable(
		[]string{"Result", "Count"},
		[][]string{
			{"Moved", fmt.Sprint(tally.Moved)},
			{"Skipped (locked)", fmt.Sprint(tally.SkippedLocked)},
			{"Skipped (exists)", fmt.Sprint(tally.SkippedExists)},
			{"Cancelled", fmt.Sprint(tally.Cancelled)},
			{"Failed", fmt.Sprint(tally.Failed)},
		}, 2,
	))
	fmt.Fprintf(out, "Details: %s\n", journalPath)
}
