package run

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cosmichound/multitimer/internal/core/constants"
	"github.com/cosmichound/multitimer/internal/core/model"
	"github.com/cosmichound/multitimer/internal/core/session"
	"github.com/cosmichound/multitimer/internal/core/timer"
	"github.com/cosmichound/multitimer/internal/presentation/interaction"
	"github.com/cosmichound/multitimer/internal/presentation/layout"
	"github.com/cosmichound/multitimer/internal/util"
)

// handleKeyboard applies one key. It returns true when the user asked to quit.
func (o *Orchestrator) handleKeyboard(event interaction.KeyEvent) bool {
	if event.Type == interaction.KeyChar && event.Key == interaction.KeyCtrlC {
		return true
	}

	state := o.stateManager.GetInteractionState()

	// Handle confirm dialog inputs first
	if state.ConfirmDialog != nil {
		o.handleConfirmKey(event, state.ConfirmDialog)
		return false
	}

	if state.Edit != nil {
		o.handleEditKey(event, *state.Edit)
		return false
	}

	switch event.Type {
	case interaction.KeyEscape:
		// If help is shown, close it; otherwise quit
		if state.ShowHelp {
			o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
				s.ShowHelp = false
			})
			return false
		}
		return true
	case interaction.KeyUp:
		o.moveSelection(-1)
	case interaction.KeyDown:
		o.moveSelection(1)
	case interaction.KeyEnter:
		o.startSelected()
	case interaction.KeyChar:
		return o.handleCommandKey(event.Key)
	}

	return false
}

func (o *Orchestrator) handleCommandKey(key rune) bool {
	util.LogDebug("key", util.F("key", string(key)))

	switch key {
	case 'q', 'Q':
		return true
	case ' ', 'p':
		o.pauseResume()
	case 'n':
		o.advance()
	case 's':
		o.startSelected()
	case 'j':
		o.moveSelection(1)
	case 'k':
		o.moveSelection(-1)
	case 'J':
		o.moveSelected(1)
	case 'K':
		o.moveSelected(-1)
	case 'a':
		o.openEdit(model.EditAdd, "", fmt.Sprintf("New timer [target] [name] (default %s)", timer.FormatTime(o.config.DefaultExpected)), "")
	case 'e':
		if t, idx, ok := o.stateManager.SelectedTimer(); ok {
			o.openEdit(model.EditExpected, t.ID, "Target for "+timer.Label(t, idx), timer.FormatTime(t.ExpectedTime))
		}
	case 'N':
		if t, idx, ok := o.stateManager.SelectedTimer(); ok {
			o.openEdit(model.EditName, t.ID, "Name for "+timer.Label(t, idx), t.Name)
		}
	case '+', '=':
		o.adjustExpected(constants.ExpectedAdjustStep)
	case '-', '_':
		o.adjustExpected(-constants.ExpectedAdjustStep)
	case 'd', 'x':
		o.confirmRemove()
	case 'R':
		o.confirm("Reset All", "Stop every timer and clear all elapsed time?", o.resetAll)
	case 'D':
		o.confirm("Delete All", "Remove every timer from the sequence?", o.deleteAll)
	case 't', 'T':
		// Cycle through layout styles
		o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
			s.LayoutStyle = layout.NextStyle(s.LayoutStyle)
		})
	case 'h', 'H', '?':
		o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
			s.ShowHelp = !s.ShowHelp
		})
	}
	return false
}

func (o *Orchestrator) handleConfirmKey(event interaction.KeyEvent, dialog *model.ConfirmDialog) {
	var callback func()
	switch {
	case event.Type == interaction.KeyChar && (event.Key == 'y' || event.Key == 'Y'):
		callback = dialog.OnConfirm
	case event.Type == interaction.KeyEscape,
		event.Type == interaction.KeyChar && (event.Key == 'n' || event.Key == 'N'):
		callback = dialog.OnCancel
	default:
		return // Ignore other keys when dialog is open
	}

	o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
		s.ConfirmDialog = nil
	})
	if callback != nil {
		callback()
	}
	o.display.ClearScreen()
}

func (o *Orchestrator) handleEditKey(event interaction.KeyEvent, edit model.EditPrompt) {
	switch event.Type {
	case interaction.KeyEscape:
		o.closeEdit("")
	case interaction.KeyEnter:
		o.closeEdit(o.commitEdit(edit))
	case interaction.KeyBackspace:
		o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
			if s.Edit != nil && s.Edit.Buffer != "" {
				_, size := utf8.DecodeLastRuneInString(s.Edit.Buffer)
				s.Edit.Buffer = s.Edit.Buffer[:len(s.Edit.Buffer)-size]
			}
		})
	case interaction.KeyChar:
		if !unicode.IsPrint(event.Key) {
			return
		}
		o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
			if s.Edit != nil {
				s.Edit.Buffer += string(event.Key)
			}
		})
	}
}

func (o *Orchestrator) openEdit(kind model.EditKind, id, label, initial string) {
	o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
		s.Edit = &model.EditPrompt{Kind: kind, TimerID: id, Label: label, Buffer: initial}
		s.StatusMessage = ""
	})
}

func (o *Orchestrator) closeEdit(status string) {
	o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
		s.Edit = nil
		s.StatusMessage = status
	})
}

// commitEdit applies the prompt and returns the status line to show
func (o *Orchestrator) commitEdit(edit model.EditPrompt) string {
	switch edit.Kind {
	case model.EditExpected:
		secs, err := util.ParseClock(edit.Buffer)
		if err != nil {
			return fmt.Sprintf("Not a time: %q (use 90, 1:30 or 1m30s)", edit.Buffer)
		}
		o.stateManager.Apply(func(c *session.Controller) bool {
			return c.SetExpectedTime(edit.TimerID, secs)
		})
		util.LogDebug("expected time set", util.F("id", edit.TimerID), util.F("seconds", secs))
		return "Target set to " + timer.FormatTime(secs)

	case model.EditName:
		name := strings.TrimSpace(edit.Buffer)
		o.stateManager.Apply(func(c *session.Controller) bool {
			return c.SetName(edit.TimerID, name)
		})
		return "Renamed"

	case model.EditAdd:
		expected, name := util.SplitClockPrefix(strings.Fields(edit.Buffer))
		var added timer.Timer
		o.stateManager.Apply(func(c *session.Controller) bool {
			added = c.Add(name, expected)
			return true
		})
		n := 0
		o.stateManager.Read(func(c *session.Controller) { n = c.Len() })
		o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
			s.Selected = n - 1
		})
		util.LogDebug("timer added", util.F("id", added.ID))
		return fmt.Sprintf("Added %s (%s)", timer.Label(added, n-1), timer.FormatTime(added.ExpectedTime))
	}
	return ""
}

func (o *Orchestrator) pauseResume() {
	changed := o.stateManager.Apply(func(c *session.Controller) bool {
		return c.PauseResume()
	})
	if !changed {
		o.stateManager.SetStatus("Nothing to start; press 'a' to add a timer")
		return
	}
	o.syncSelectionToCurrent()

	var status string
	o.stateManager.Read(func(c *session.Controller) {
		cur, _ := c.Current()
		verb := "Paused"
		if cur.IsRunning {
			verb = "Running"
		}
		status = fmt.Sprintf("%s %s", verb, timer.Label(cur, c.CurrentIndex()))
	})
	o.stateManager.SetStatus(status)
}

func (o *Orchestrator) advance() {
	changed := o.stateManager.Apply(func(c *session.Controller) bool {
		return c.AdvanceCurrent()
	})
	if !changed {
		o.stateManager.SetStatus("Next only works while a timer is running")
		return
	}
	o.syncSelectionToCurrent()

	status := "Sequence complete"
	o.stateManager.Read(func(c *session.Controller) {
		if cur, ok := c.Current(); ok {
			status = "Started " + timer.Label(cur, c.CurrentIndex())
		}
	})
	if status == "Sequence complete" {
		o.applyPending()
	}
	o.stateManager.SetStatus(status)
}

func (o *Orchestrator) startSelected() {
	t, idx, ok := o.stateManager.SelectedTimer()
	if !ok {
		return
	}
	o.stateManager.Apply(func(c *session.Controller) bool {
		return c.Start(t.ID)
	})
	o.stateManager.SetStatus("Started " + timer.Label(t, idx))
}

func (o *Orchestrator) moveSelection(delta int) {
	o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
		s.Selected += delta
	})
}

// moveSelected reorders the selected timer and keeps it selected
func (o *Orchestrator) moveSelected(delta int) {
	t, _, ok := o.stateManager.SelectedTimer()
	if !ok {
		return
	}
	moved := o.stateManager.Apply(func(c *session.Controller) bool {
		if delta < 0 {
			return c.MoveUp(t.ID)
		}
		return c.MoveDown(t.ID)
	})
	if moved {
		o.moveSelection(delta)
	}
}

func (o *Orchestrator) adjustExpected(delta int) {
	t, _, ok := o.stateManager.SelectedTimer()
	if !ok {
		return
	}
	secs := t.ExpectedTime + delta
	if secs < 0 {
		secs = 0
	}
	o.stateManager.Apply(func(c *session.Controller) bool {
		return c.SetExpectedTime(t.ID, secs)
	})
	o.stateManager.SetStatus("Target " + timer.FormatTime(secs))
}

func (o *Orchestrator) confirmRemove() {
	t, idx, ok := o.stateManager.SelectedTimer()
	if !ok {
		return
	}
	label := timer.Label(t, idx)
	o.confirm("Remove Timer", fmt.Sprintf("Remove %q from the sequence?", label), func() {
		o.stateManager.Apply(func(c *session.Controller) bool {
			return c.Remove(t.ID)
		})
		util.LogDebug("timer removed", util.F("id", t.ID))
		o.stateManager.SetStatus("Removed " + label)
	})
}

func (o *Orchestrator) resetAll() {
	o.stateManager.Apply(func(c *session.Controller) bool {
		c.ResetAll()
		return true
	})
	if o.applyPending() {
		o.stateManager.SetStatus("Reset; loaded the updated plan")
		return
	}
	o.stateManager.SetStatus("All timers reset")
}

func (o *Orchestrator) deleteAll() {
	o.stateManager.Apply(func(c *session.Controller) bool {
		c.DeleteAll()
		return true
	})
	if o.applyPending() {
		o.stateManager.SetStatus("Deleted; loaded the updated plan")
		return
	}
	o.stateManager.SetStatus("All timers deleted")
}

func (o *Orchestrator) confirm(title, message string, onConfirm func()) {
	o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
		s.ConfirmDialog = &model.ConfirmDialog{
			Title:     title,
			Message:   message,
			OnConfirm: onConfirm,
			OnCancel: func() {
				o.stateManager.SetStatus("Cancelled")
			},
		}
	})
}

// syncSelectionToCurrent moves the selection onto the current timer
func (o *Orchestrator) syncSelectionToCurrent() {
	idx := -1
	o.stateManager.Read(func(c *session.Controller) { idx = c.CurrentIndex() })
	if idx < 0 {
		return
	}
	o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
		s.Selected = idx
	})
}
