package layout

import (
	"fmt"
	"io"

	"github.com/cosmichound/multitimer/internal/core/model"
	"github.com/cosmichound/multitimer/internal/core/timer"
	"github.com/cosmichound/multitimer/internal/util"
)

// MinimalLayoutStrategy implements the minimal single-line layout
type MinimalLayoutStrategy struct {
	BaseStrategy
}

func (s *MinimalLayoutStrategy) GetName() string {
	return "Minimal Dashboard"
}

func (s *MinimalLayoutStrategy) Render(w io.Writer, dash *model.Dashboard, param model.LayoutParam) {
	current := "—"
	if v, ok := dash.Current(); ok {
		current = fmt.Sprintf("%d/%d %s %s/%s",
			v.Position+1, len(dash.Views),
			timer.Label(v.Timer, v.Position),
			timer.FormatTime(v.ElapsedTime),
			timer.FormatTime(v.ExpectedTime))
		if v.IsOverrun {
			current = util.Colorize(util.ColorRed, current)
		}
	}

	t := dash.Totals
	line := fmt.Sprintf("⏱ %s | %s | Σ %s/%s | over %s | %s",
		s.StateText(dash.State),
		current,
		timer.FormatTime(t.Elapsed),
		timer.FormatTime(t.Target),
		timer.FormatTime(t.Overrun),
		s.Clock(param))

	fmt.Fprintln(w, line)
}
