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

// BaseStrategy provides common functionality for all layout strategies
type BaseStrategy struct {
}

// GetSizer returns the shared sizer instance
func (b *BaseStrategy) GetSizer() *Sizer {
	return sharedSizer
}

// Clock returns the header wall clock in the configured zone and format
func (b *BaseStrategy) Clock(param model.LayoutParam) string {
	tp := util.GetTimeProvider()
	return tp.Format(tp.Now(), util.ClockLayout(param.TimeFormat))
}

// boxLine writes "│ content │" where content already has display width inner
func (b *BaseStrategy) boxLine(w io.Writer, content string) {
	fmt.Fprintf(w, "│ %s │\n", content)
}

// border writes a horizontal rule with the given corner runes
func (b *BaseStrategy) border(w io.Writer, left, right string, maxWidth int) {
	fmt.Fprintln(w, left+strings.Repeat("─", maxWidth-2)+right)
}

// TimeLeft renders remaining time, or +overrun once the target has passed
func (b *BaseStrategy) TimeLeft(t timer.Timer) string {
	if t.IsOverrun {
		return "+" + timer.FormatTime(timer.Overrun(t))
	}
	return timer.FormatTime(timer.Remaining(t))
}

// StatusText colors a status label padded to width
func (b *BaseStrategy) StatusText(status session.TimerStatus, width int) string {
	return util.Colorize(util.StatusColor(string(status)), b.GetSizer().PadString(string(status), width, true))
}

// StateText labels the session state for the header
func (b *BaseStrategy) StateText(state session.State) string {
	switch state {
	case session.StateActive:
		return util.Colorize(util.ColorGreen, "▶ running")
	case session.StateSuspended:
		return util.Colorize(util.ColorYellow, "⏸ paused")
	default:
		return util.Colorize(util.ColorGray, "■ idle")
	}
}

// plainStateText is StateText without color, for width math
func (b *BaseStrategy) plainStateText(state session.State) string {
	switch state {
	case session.StateActive:
		return "▶ running"
	case session.StateSuspended:
		return "⏸ paused"
	default:
		return "■ idle"
	}
}
