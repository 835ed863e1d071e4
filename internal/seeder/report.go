package seeder

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Reporter prints progress for a human watching the run.
type Reporter struct {
	out io.Writer
}

func NewReporter(w io.Writer) *Reporter {
	return &Reporter{out: w}
}

// StageDone prints one status line per finished stage.
func (r *Reporter) StageDone(sc StageCount, took time.Duration) {
	took = took.Round(time.Millisecond)
	if sc.Rejected == 0 {
		color.New(color.FgGreen).Fprintf(r.out, "✓ %s: %d inserted (%s)\n", sc.Stage, sc.Succeeded, took)
		return
	}
	color.New(color.FgYellow).Fprintf(r.out, "⚠️  %s: %d inserted, %d rejected of %d (%s)\n",
		sc.Stage, sc.Succeeded, sc.Rejected, sc.Attempted, took)
}

// Summary prints the per-stage table followed by the run totals.
func (r *Reporter) Summary(s Summary) {
	fmt.Fprintln(r.out)

	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"Stage", "Attempted", "Succeeded", "Rejected"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, sc := range s.Stages {
		table.Append([]string{
			sc.Stage,
			strconv.FormatInt(sc.Attempted, 10),
			strconv.FormatInt(sc.Succeeded, 10),
			strconv.FormatInt(sc.Rejected, 10),
		})
	}
	table.SetFooter([]string{
		"Total",
		strconv.FormatInt(s.Total, 10),
		strconv.FormatInt(s.Succeeded, 10),
		strconv.FormatInt(s.Rejected, 10),
	})
	table.Render()

	fmt.Fprintln(r.out)
	if s.Rejected == 0 {
		color.New(color.FgGreen).Fprintf(r.out, "🎉 %s\n", s)
	} else {
		color.New(color.FgYellow).Fprintf(r.out, "📊 %s\n", s)
	}
	fmt.Fprintf(r.out, "⏱  finished in %s (run %s)\n", s.Elapsed.Round(time.Millisecond), s.RunID)
}
