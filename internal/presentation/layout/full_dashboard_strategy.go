package layout

import (
	"fmt"
	"io"
	"strings"

	"github.com/cosmichound/multitimer/internal/core/model"
	"github.com/cosmichound/multitimer/internal/core/session"
	"github.com/cosmichound/multitimer/internal/core/timer"
	"github.com/cosmichound/multitimer/internal/util"
)

// Column widths of the timer table. The name column takes what is left.
const (
	colSelect  = 1
	colPos     = 3
	colClock   = 6
	colLeft    = 7
	colBar     = 12
	colStatus  = 8
	colGaps    = 7
	minNameCol = 8
)

// FullLayoutStrategy implements the full dashboard layout
type FullLayoutStrategy struct {
	BaseStrategy
}

func (s *FullLayoutStrategy) GetName() string {
	return "Full Dashboard"
}

func (s *FullLayoutStrategy) Render(w io.Writer, dash *model.Dashboard, param model.LayoutParam) {
	maxWidth := s.GetSizer().GetMaxWidth(param.Width)
	inner := maxWidth - 4

	s.border(w, "╭", "╮", maxWidth)
	s.header(w, dash, param, inner)
	s.border(w, "├", "┤", maxWidth)
	s.timerTable(w, dash, inner)
	s.border(w, "├", "┤", maxWidth)
	s.totals(w, dash, inner)
	s.border(w, "╰", "╯", maxWidth)
	s.footer(w, dash)
}

func (s *FullLayoutStrategy) header(w io.Writer, dash *model.Dashboard, param model.LayoutParam, inner int) {
	title := "⏱  Multitimer"
	if dash.PlanName != "" {
		title += " · " + dash.PlanName
	}
	right := s.plainStateText(dash.State) + "  " + s.Clock(param)

	titleWidth := inner - util.GetDisplayWidth(right) - 1
	if titleWidth < 0 {
		titleWidth = 0
	}
	left := util.Colorize(util.ColorBold+util.ColorMagenta, s.GetSizer().PadString(title, titleWidth, true))
	coloredRight := s.StateText(dash.State) + "  " + s.Clock(param)

	s.boxLine(w, left+" "+coloredRight)
}

func nameWidth(inner int) int {
	n := inner - (colSelect + colPos + 2*colClock + colLeft + colBar + colStatus + colGaps)
	if n < minNameCol {
		n = minNameCol
	}
	return n
}

func (s *FullLayoutStrategy) timerTable(w io.Writer, dash *model.Dashboard, inner int) {
	sz := s.GetSizer()
	nw := nameWidth(inner)

	heading := strings.Join([]string{
		sz.PadString("", colSelect, true),
		sz.PadString("#", colPos, false),
		sz.PadString("Name", nw, true),
		sz.PadString("Spent", colClock, false),
		sz.PadString("Target", colClock, false),
		sz.PadString("Left", colLeft, false),
		sz.PadString("Progress", colBar, true),
		sz.PadString("Status", colStatus, true),
	}, " ")
	s.boxLine(w, util.Colorize(util.ColorBold, sz.PadString(heading, inner, true)))

	if len(dash.Views) == 0 {
		s.boxLine(w, sz.PadString("No timers yet. Press 'a' to add one.", inner, true))
		return
	}

	for _, v := range dash.Views {
		s.boxLine(w, s.timerRow(v, v.Position == dash.Selected, nw, inner))
	}
}

func (s *FullLayoutStrategy) timerRow(v session.TimerView, selected bool, nw, inner int) string {
	sz := s.GetSizer()

	marker := " "
	if selected {
		marker = ">"
	}
	name := timer.Label(v.Timer, v.Position)
	if v.IsCurrent {
		name = "● " + name
	}

	barColor := util.ColorCyan
	leftColor := util.ColorReset
	if v.IsOverrun {
		barColor = util.ColorRed
		leftColor = util.ColorRed
	}

	cells := []string{
		util.Colorize(util.ColorBold, marker),
		sz.PadString(fmt.Sprintf("%d", v.Position+1), colPos, false),
		sz.PadString(name, nw, true),
		sz.PadString(timer.FormatTime(v.ElapsedTime), colClock, false),
		sz.PadString(timer.FormatTime(v.ExpectedTime), colClock, false),
		util.Colorize(leftColor, sz.PadString(s.TimeLeft(v.Timer), colLeft, false)),
		util.Colorize(barColor, util.CreateProgressBar(v.ElapsedTime, v.ExpectedTime, colBar)),
		s.StatusText(v.Status, colStatus),
	}
	row := strings.Join(cells, " ")

	// Wide terminals leave slack after the status column
	used := colSelect + colPos + nw + 2*colClock + colLeft + colBar + colStatus + colGaps
	if used < inner {
		row += strings.Repeat(" ", inner-used)
	}
	if selected {
		row = util.ColorReverse + row + util.ColorReset
	}
	return row
}

func (s *FullLayoutStrategy) totals(w io.Writer, dash *model.Dashboard, inner int) {
	sz := s.GetSizer()
	t := dash.Totals

	summary := fmt.Sprintf("Σ Spent %s / %s   Left %s   Overrun %s",
		timer.FormatTime(t.Elapsed), timer.FormatTime(t.Target),
		timer.FormatTime(t.Remaining), timer.FormatTime(t.Overrun))
	count := fmt.Sprintf("%d timers", t.Count)
	if t.OverrunCount > 0 {
		count = fmt.Sprintf("%d timers, %d over", t.Count, t.OverrunCount)
	}

	line := sz.PadString(sz.PadString(summary, inner-util.GetDisplayWidth(count)-1, true)+" "+count, inner, true)
	if t.Overrun > 0 {
		line = util.Colorize(util.ColorRed, line)
	}
	s.boxLine(w, line)

	if dash.ReloadPending {
		fmt.Fprintln(w, util.Colorize(util.ColorYellow, "  plan file changed, reset (R) to load it"))
	}
}

func (s *FullLayoutStrategy) footer(w io.Writer, dash *model.Dashboard) {
	hint := " space pause · n next · enter start · a add · e edit · d remove · h help · q quit"
	if dash.State == session.StateIdle && len(dash.Views) > 0 {
		hint = " space start first · enter start selected · a add · h help · q quit"
	}
	fmt.Fprintln(w, util.Colorize(util.ColorGray, hint))
}
