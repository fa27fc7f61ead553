package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/cosmichound/multitimer/internal/core/timer"
)

type TableFormatter struct {
	out     io.Writer
	headers []string
}

func NewTableFormatter(out io.Writer) *TableFormatter {
	return &TableFormatter{
		out: out,
		headers: []string{
			"#", "Name", "Target", "Spent", "Left", "Overrun", "Status", "ID",
		},
	}
}

func (f *TableFormatter) Format(r *Report) error {
	rows := make([][]string, 0, len(r.Timers))
	for _, row := range r.Timers {
		name := row.Label
		if row.Current {
			name = "● " + name
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", row.Position),
			name,
			timer.FormatTime(row.Expected),
			timer.FormatTime(row.Elapsed),
			timer.FormatTime(row.Remaining),
			timer.FormatTime(row.Overrun),
			row.Status,
			shortID(row.ID),
		})
	}

	total := []string{
		"",
		fmt.Sprintf("Total (%d)", r.Totals.Count),
		timer.FormatTime(r.Totals.Target),
		timer.FormatTime(r.Totals.Elapsed),
		timer.FormatTime(r.Totals.Remaining),
		timer.FormatTime(r.Totals.Overrun),
		"",
		"",
	}

	widths := f.calculateColumnWidths(append(rows, total))

	f.printBorder(widths, "top")
	f.printRow(f.headers, widths)
	f.printBorder(widths, "middle")
	for _, row := range rows {
		f.printRow(row, widths)
	}
	f.printBorder(widths, "middle")
	f.printRow(total, widths)
	f.printBorder(widths, "bottom")

	return nil
}

// calculateColumnWidths determines optimal width for each column based on content
func (f *TableFormatter) calculateColumnWidths(rows [][]string) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i, value := range row {
			if w := runewidth.StringWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// printBorder prints table borders (top, middle, bottom)
func (f *TableFormatter) printBorder(widths []int, borderType string) {
	var left, middle, right string

	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = strings.Repeat("─", width+2) // +2 for padding spaces
	}
	fmt.Fprintln(f.out, left+strings.Join(parts, middle)+right)
}

// printRow prints a row; the name and status columns are left-aligned, the rest right-aligned
func (f *TableFormatter) printRow(values []string, widths []int) {
	var sb strings.Builder
	sb.WriteString("│")
	for i, value := range values {
		sb.WriteString(" ")
		if i == 1 || i == 6 || i == 7 {
			sb.WriteString(runewidth.FillRight(value, widths[i]))
		} else {
			sb.WriteString(runewidth.FillLeft(value, widths[i]))
		}
		sb.WriteString(" │")
	}
	fmt.Fprintln(f.out, sb.String())
}

func shortID(id string) string {
	return timer.ShortID(timer.Timer{ID: id})
}
