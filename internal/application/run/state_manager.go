package run

import (
	"sync"

	"github.com/cosmichound/multitimer/internal/core/model"
	"github.com/cosmichound/multitimer/internal/core/session"
	"github.com/cosmichound/multitimer/internal/core/timer"
)

// StateManager guards the session controller and UI state. The event loop
// is the only writer; renders read through it.
type StateManager struct {
	mu sync.RWMutex

	controller *session.Controller

	planName      string
	reloadPending bool

	interactionState model.InteractionState
}

// NewStateManager creates a new StateManager instance
func NewStateManager(controller *session.Controller) *StateManager {
	return &StateManager{
		controller:       controller,
		interactionState: model.InteractionState{},
	}
}

// Apply runs a mutation and keeps the selection inside the sequence
func (sm *StateManager) Apply(fn func(c *session.Controller) bool) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	changed := fn(sm.controller)
	sm.interactionState.ClampSelection(sm.controller.Len())
	return changed
}

// Read gives fn read access to the controller
func (sm *StateManager) Read(fn func(c *session.Controller)) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	fn(sm.controller)
}

// Dashboard snapshots everything a render needs
func (sm *StateManager) Dashboard() *model.Dashboard {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return &model.Dashboard{
		PlanName:      sm.planName,
		State:         sm.controller.State(),
		Views:         sm.controller.Views(),
		Totals:        sm.controller.Totals(),
		Selected:      sm.interactionState.Selected,
		ReloadPending: sm.reloadPending,
	}
}

// SelectedTimer returns the timer under the selection cursor
func (sm *StateManager) SelectedTimer() (timer.Timer, int, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	idx := sm.interactionState.Selected
	t, ok := sm.controller.At(idx)
	return t, idx, ok
}

// GetInteractionState returns current interaction state
func (sm *StateManager) GetInteractionState() model.InteractionState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	// Return a copy of the state
	return sm.interactionState
}

// UpdateInteractionState updates specific fields of interaction state
func (sm *StateManager) UpdateInteractionState(updateFunc func(*model.InteractionState)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	updateFunc(&sm.interactionState)
	sm.interactionState.ClampSelection(sm.controller.Len())
}

// SetStatus shows a one-line message under the dashboard
func (sm *StateManager) SetStatus(message string) {
	sm.UpdateInteractionState(func(s *model.InteractionState) {
		s.StatusMessage = message
	})
}

// SetPlanName sets the header title
func (sm *StateManager) SetPlanName(name string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.planName = name
}

// SetReloadPending marks that a changed plan is waiting for an idle session
func (sm *StateManager) SetReloadPending(pending bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.reloadPending = pending
}

// ReloadPending reports whether a plan change is waiting
func (sm *StateManager) ReloadPending() bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.reloadPending
}
