package formatter

import (
	"fmt"
	"io"

	"github.com/cosmichound/multitimer/internal/core/sequence"
	"github.com/cosmichound/multitimer/internal/core/session"
	"github.com/cosmichound/multitimer/internal/core/timer"
)

// Report is the printable form of a session or plan
type Report struct {
	Name   string          `json:"name,omitempty"`
	State  string          `json:"state"`
	Timers []Row           `json:"timers"`
	Totals sequence.Totals `json:"totals"`
}

// Row is one timer in a Report
type Row struct {
	Position  int    `json:"position"` // 1-based
	ID        string `json:"id"`
	Label     string `json:"label"`
	Expected  int    `json:"expected_seconds"`
	Elapsed   int    `json:"elapsed_seconds"`
	Remaining int    `json:"remaining_seconds"`
	Overrun   int    `json:"overrun_seconds"`
	Status    string `json:"status"`
	Current   bool   `json:"current"`
}

// Formatter writes a Report in one output format
type Formatter interface {
	Format(r *Report) error
}

// NewReport captures the controller's current state
func NewReport(name string, c *session.Controller) *Report {
	views := c.Views()
	r := &Report{
		Name:   name,
		State:  c.State().String(),
		Timers: make([]Row, 0, len(views)),
		Totals: c.Totals(),
	}
	for _, v := range views {
		r.Timers = append(r.Timers, Row{
			Position:  v.Position + 1,
			ID:        v.ID,
			Label:     timer.Label(v.Timer, v.Position),
			Expected:  v.ExpectedTime,
			Elapsed:   v.ElapsedTime,
			Remaining: timer.Remaining(v.Timer),
			Overrun:   timer.Overrun(v.Timer),
			Status:    string(v.Status),
			Current:   v.IsCurrent,
		})
	}
	return r
}

// New returns the formatter for an output name
func New(output string, w io.Writer) (Formatter, error) {
	switch output {
	case "table", "":
		return NewTableFormatter(w), nil
	case "json":
		return NewJSONFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	case "summary":
		return NewSummaryFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (supported: table, json, csv, summary)", output)
	}
}
