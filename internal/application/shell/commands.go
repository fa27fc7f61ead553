package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cosmichound/multitimer/internal/core/timer"
	"github.com/cosmichound/multitimer/internal/presentation/formatter"
	"github.com/cosmichound/multitimer/internal/util"
)

func (s *Shell) fail(err error) {
	fmt.Fprintln(s.out, errText("Error: "+err.Error()))
}

func (s *Shell) usage(text string) {
	fmt.Fprintln(s.out, "Usage: "+text)
}

func (s *Shell) unchanged(what string) {
	fmt.Fprintln(s.out, warnText(what))
}

func (s *Shell) cmdAdd(args []string) {
	expected, name := util.SplitClockPrefix(args)
	t := s.controller.Add(name, expected)
	pos := s.controller.Len() - 1
	fmt.Fprintf(s.out, "%s %s (%s) at #%d [%s]\n", okText("Added"), timer.Label(t, pos), timer.FormatTime(t.ExpectedTime), pos+1, timer.ShortID(t))
}

func (s *Shell) cmdInsert(args []string) {
	if len(args) < 1 {
		s.usage("insert <pos> [target] [name...]")
		return
	}
	pos, err := parsePosition(args[0])
	if err != nil {
		s.fail(err)
		return
	}

	expected, name := util.SplitClockPrefix(args[1:])
	t := s.controller.AddAt(name, expected, &pos)
	at := pos
	if at > s.controller.Len()-1 {
		at = s.controller.Len() - 1
	}
	fmt.Fprintf(s.out, "%s %s (%s) at #%d [%s]\n", okText("Inserted"), timer.Label(t, at), timer.FormatTime(t.ExpectedTime), at+1, timer.ShortID(t))
}

func (s *Shell) cmdRemove(args []string) {
	if len(args) != 1 {
		s.usage("rm <ref>")
		return
	}
	t, idx, err := s.resolve(args[0])
	if err != nil {
		s.fail(err)
		return
	}
	s.controller.Remove(t.ID)
	fmt.Fprintf(s.out, "%s %s\n", okText("Removed"), timer.Label(t, idx))
}

func (s *Shell) cmdStart(args []string) {
	if len(args) != 1 {
		s.usage("start <ref>")
		return
	}
	t, idx, err := s.resolve(args[0])
	if err != nil {
		s.fail(err)
		return
	}
	s.controller.Start(t.ID)
	fmt.Fprintf(s.out, "%s %s\n", okText("Started"), timer.Label(t, idx))
}

func (s *Shell) cmdNext() {
	if !s.controller.AdvanceCurrent() {
		s.unchanged("Nothing is running")
		return
	}
	cur, ok := s.controller.Current()
	if !ok {
		fmt.Fprintln(s.out, okText("Sequence complete"))
		return
	}
	fmt.Fprintf(s.out, "%s %s\n", okText("Started"), timer.Label(cur, s.controller.CurrentIndex()))
}

func (s *Shell) cmdPauseResume() {
	if !s.controller.PauseResume() {
		s.unchanged("No timers; add one first")
		return
	}
	cur, _ := s.controller.Current()
	verb := "Paused"
	if cur.IsRunning {
		verb = "Running"
	}
	fmt.Fprintf(s.out, "%s %s\n", okText(verb), timer.Label(cur, s.controller.CurrentIndex()))
}

func (s *Shell) cmdMove(args []string) {
	if len(args) != 2 {
		s.usage("move <ref> <pos>")
		return
	}
	t, _, err := s.resolve(args[0])
	if err != nil {
		s.fail(err)
		return
	}
	pos, err := parsePosition(args[1])
	if err != nil {
		s.fail(err)
		return
	}
	if !s.controller.MoveTo(t.ID, pos) {
		s.unchanged("Order unchanged")
		return
	}
	s.printOrder()
}

func (s *Shell) cmdStep(args []string, move func(id string) bool, direction, edge string) {
	if len(args) != 1 {
		s.usage(direction + " <ref>")
		return
	}
	t, _, err := s.resolve(args[0])
	if err != nil {
		s.fail(err)
		return
	}
	if !move(t.ID) {
		s.unchanged("Already at the " + edge)
		return
	}
	s.printOrder()
}

func (s *Shell) cmdReorder(args []string) {
	if len(args) != 2 {
		s.usage("reorder <from> <to>")
		return
	}
	from, _, err := s.resolve(args[0])
	if err != nil {
		s.fail(err)
		return
	}
	to, _, err := s.resolve(args[1])
	if err != nil {
		s.fail(err)
		return
	}
	if !s.controller.Reorder(from.ID, to.ID) {
		s.unchanged("Order unchanged")
		return
	}
	s.printOrder()
}

func (s *Shell) cmdOrder(args []string) {
	if len(args) != s.controller.Len() {
		s.usage(fmt.Sprintf("order <ref...> with all %d timers", s.controller.Len()))
		return
	}

	// resolve against the current order before anything moves
	ids := make([]string, 0, len(args))
	for _, ref := range args {
		t, _, err := s.resolve(ref)
		if err != nil {
			s.fail(err)
			return
		}
		ids = append(ids, t.ID)
	}

	if !s.controller.ReorderIDs(ids) {
		s.unchanged("Order unchanged (each timer must appear exactly once)")
		return
	}
	s.printOrder()
}

func (s *Shell) cmdExpected(args []string) {
	if len(args) != 2 {
		s.usage("expected <ref> <target>")
		return
	}
	t, idx, err := s.resolve(args[0])
	if err != nil {
		s.fail(err)
		return
	}
	secs, err := util.ParseClock(args[1])
	if err != nil {
		s.fail(err)
		return
	}
	if secs == t.ExpectedTime || !s.controller.SetExpectedTime(t.ID, secs) {
		s.unchanged(fmt.Sprintf("%s target unchanged", timer.Label(t, idx)))
		return
	}
	fmt.Fprintf(s.out, "%s %s target to %s\n", okText("Set"), timer.Label(t, idx), timer.FormatTime(secs))
}

func (s *Shell) cmdName(args []string) {
	if len(args) < 1 {
		s.usage("name <ref> [text...]")
		return
	}
	t, idx, err := s.resolve(args[0])
	if err != nil {
		s.fail(err)
		return
	}
	name := strings.Join(args[1:], " ")
	s.controller.SetName(t.ID, name)
	t.Name = name
	fmt.Fprintf(s.out, "%s #%d to %s\n", okText("Renamed"), idx+1, timer.Label(t, idx))
}

func (s *Shell) cmdTick(args []string) {
	n := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 {
			s.fail(fmt.Errorf("tick count must be a positive number, got %q", args[0]))
			return
		}
		n = v
	}
	if !s.tick(n) {
		s.unchanged("Nothing is running")
		return
	}
	cur, _ := s.controller.Current()
	fmt.Fprintf(s.out, "%s %s/%s\n", timer.Label(cur, s.controller.CurrentIndex()),
		timer.FormatTime(cur.ElapsedTime), timer.FormatTime(cur.ExpectedTime))
}

func (s *Shell) cmdList() {
	s.format("table")
}

func (s *Shell) cmdStatus() {
	s.format("summary")
}

func (s *Shell) format(output string) {
	f, err := formatter.New(output, s.out)
	if err != nil {
		s.fail(err)
		return
	}
	if err := f.Format(formatter.NewReport(s.planName, s.controller)); err != nil {
		s.fail(err)
	}
}

// printOrder shows the sequence on one line after a reorder
func (s *Shell) printOrder() {
	labels := make([]string, 0, s.controller.Len())
	for i, t := range s.controller.Sequence() {
		labels = append(labels, fmt.Sprintf("%d. %s", i+1, timer.Label(t, i)))
	}
	fmt.Fprintln(s.out, infoText(strings.Join(labels, "  ")))
}
