package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cosmichound/multitimer/internal/core/timer"
)

// resolve finds the timer a user reference points at. A number is a position
// unless it equals a full id; anything else is an exact id or a unique prefix.
func (s *Shell) resolve(ref string) (timer.Timer, int, error) {
	if pos, err := strconv.Atoi(ref); err == nil {
		if t, ok := s.controller.At(pos - 1); ok {
			return t, pos - 1, nil
		}
		if t, i, ok := s.exactID(ref); ok {
			return t, i, nil
		}
		return timer.Timer{}, -1, fmt.Errorf("no timer at position %d", pos)
	}

	var (
		match   timer.Timer
		matchAt = -1
		count   int
	)
	for i, t := range s.controller.Sequence() {
		if t.ID == ref {
			return t, i, nil
		}
		if strings.HasPrefix(t.ID, ref) {
			match, matchAt = t, i
			count++
		}
	}

	switch count {
	case 0:
		return timer.Timer{}, -1, fmt.Errorf("no timer %q", ref)
	case 1:
		return match, matchAt, nil
	default:
		return timer.Timer{}, -1, fmt.Errorf("id prefix %q matches %d timers", ref, count)
	}
}

func (s *Shell) exactID(ref string) (timer.Timer, int, bool) {
	for i, t := range s.controller.Sequence() {
		if t.ID == ref {
			return t, i, true
		}
	}
	return timer.Timer{}, -1, false
}

// parsePosition reads a 1-based position and returns it 0-based
func parsePosition(arg string) (int, error) {
	pos, err := strconv.Atoi(arg)
	if err != nil || pos < 1 {
		return 0, fmt.Errorf("position must be a number from 1, got %q", arg)
	}
	return pos - 1, nil
}
