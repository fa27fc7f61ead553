package run

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmichound/multitimer/internal/core/model"
	"github.com/cosmichound/multitimer/internal/core/session"
)

func TestStateManagerClampsSelection(t *testing.T) {
	sm := NewStateManager(session.NewController())
	sm.Apply(func(c *session.Controller) bool {
		c.Add("a", 10)
		c.Add("b", 20)
		return true
	})

	sm.UpdateInteractionState(func(s *model.InteractionState) { s.Selected = 5 })
	assert.Equal(t, 1, sm.GetInteractionState().Selected)

	sel, idx, ok := sm.SelectedTimer()
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "b", sel.Name)

	sm.Apply(func(c *session.Controller) bool {
		return c.Remove(sel.ID)
	})
	assert.Equal(t, 0, sm.GetInteractionState().Selected)

	sm.Apply(func(c *session.Controller) bool {
		c.DeleteAll()
		return true
	})
	_, _, ok = sm.SelectedTimer()
	assert.False(t, ok)
}

func TestStateManagerDashboard(t *testing.T) {
	sm := NewStateManager(session.NewController())
	sm.SetPlanName("morning")
	sm.SetReloadPending(true)
	sm.Apply(func(c *session.Controller) bool {
		c.Add("", 30)
		return c.PauseResume()
	})

	dash := sm.Dashboard()
	assert.Equal(t, "morning", dash.PlanName)
	assert.Equal(t, session.StateActive, dash.State)
	assert.True(t, dash.ReloadPending)
	require.Len(t, dash.Views, 1)
	assert.True(t, dash.Views[0].IsCurrent)
	assert.Equal(t, 30, dash.Totals.Target)
	assert.True(t, sm.ReloadPending())
}

func TestStateManagerSetStatus(t *testing.T) {
	sm := NewStateManager(session.NewController())
	sm.SetStatus("hello")
	assert.Equal(t, "hello", sm.GetInteractionState().StatusMessage)
}
