package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/cosmichound/multitimer/internal/core/timer"
	"github.com/cosmichound/multitimer/internal/util"
)

// SummaryFormatter writes a short human report of a sequence.
type SummaryFormatter struct {
	out io.Writer
}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter(out io.Writer) *SummaryFormatter {
	return &SummaryFormatter{out: out}
}

// Format writes totals followed by the longest and the overrun timers.
func (f *SummaryFormatter) Format(r *Report) error {
	w := f.out
	title := "Timer Sequence Summary"
	if r.Name != "" {
		title += ": " + r.Name
	}

	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w)

	if len(r.Timers) == 0 {
		fmt.Fprintln(w, "No timers to summarize")
		fmt.Fprintln(w)
		fmt.Fprintln(w, strings.Repeat("=", 60))
		return nil
	}

	t := r.Totals
	fmt.Fprintln(w, "Totals:")
	fmt.Fprintf(w, "  Timers:    %d\n", t.Count)
	fmt.Fprintf(w, "  Target:    %s (%s)\n", timer.FormatTime(t.Target), util.FormatDuration(t.Target))
	fmt.Fprintf(w, "  Spent:     %s (%s of target)\n", timer.FormatTime(t.Elapsed), util.FormatPercent(t.Elapsed, t.Target))
	fmt.Fprintf(w, "  Remaining: %s\n", timer.FormatTime(t.Remaining))
	fmt.Fprintf(w, "  Overrun:   %s across %d timer(s)\n", timer.FormatTime(t.Overrun), t.OverrunCount)
	fmt.Fprintf(w, "  State:     %s\n", r.State)
	fmt.Fprintln(w)

	longest := r.Timers[0]
	for _, row := range r.Timers[1:] {
		if row.Expected > longest.Expected {
			longest = row
		}
	}
	fmt.Fprintf(w, "Longest target: %s (%s)\n", longest.Label, timer.FormatTime(longest.Expected))

	var over []Row
	for _, row := range r.Timers {
		if row.Overrun > 0 {
			over = append(over, row)
		}
	}
	if len(over) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Overrun timers:")
		fmt.Fprintln(w, strings.Repeat("-", 60))
		for _, row := range over {
			fmt.Fprintf(w, "  %d. %-30s +%s\n", row.Position, row.Label, timer.FormatTime(row.Overrun))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	return nil
}
