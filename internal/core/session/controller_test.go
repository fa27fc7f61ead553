package session

import (
	"fmt"
	"testing"

	"github.com/cosmichound/multitimer/internal/core/sequence"
	"github.com/cosmichound/multitimer/internal/core/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seqIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("t%d", n)
	}
}

// newTestController returns a controller holding timers t1..tn with the given targets
func newTestController(t *testing.T, expected ...int) *Controller {
	t.Helper()
	c := NewController(WithIDGenerator(seqIDs()))
	for _, e := range expected {
		c.Add("", e)
	}
	require.Equal(t, len(expected), c.Len())
	return c
}

func runningIDs(c *Controller) []string {
	var ids []string
	for _, tm := range c.Sequence() {
		if tm.IsRunning {
			ids = append(ids, tm.ID)
		}
	}
	return ids
}

// assertInvariants checks the single-runner and overrun invariants
func assertInvariants(t *testing.T, c *Controller) {
	t.Helper()
	running := runningIDs(c)
	assert.LessOrEqual(t, len(running), 1, "at most one timer may run")
	if len(running) == 1 {
		cur, ok := c.Current()
		require.True(t, ok, "a running timer must be current")
		assert.Equal(t, running[0], cur.ID)
	}
	for _, tm := range c.Sequence() {
		assert.Equal(t, tm.ElapsedTime > tm.ExpectedTime, tm.IsOverrun, "overrun flag for %s", tm.ID)
	}
}

func TestNewControllerIsIdle(t *testing.T) {
	c := NewController()
	assert.Equal(t, StateIdle, c.State())
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, -1, c.CurrentIndex())
	_, ok := c.Current()
	assert.False(t, ok)
}

func TestAdd(t *testing.T) {
	c := NewController(WithIDGenerator(seqIDs()), WithDefaultExpected(90))

	a := c.Add("Warm-up", 30)
	b := c.Add("", -1)

	assert.Equal(t, "t1", a.ID)
	assert.Equal(t, timer.Timer{ID: "t2", ExpectedTime: 90}, b)
	assert.Equal(t, []string{"t1", "t2"}, sequence.IDs(c.Sequence()))
}

func TestAddDefaultsToSixtySeconds(t *testing.T) {
	c := NewController()
	tm := c.Add("", -1)
	assert.Equal(t, 60, tm.ExpectedTime)
	assert.NotEmpty(t, tm.ID)
}

func TestAddUsesUniqueIDs(t *testing.T) {
	c := NewController()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		tm := c.Add("", 10)
		assert.False(t, seen[tm.ID], "id reused: %s", tm.ID)
		seen[tm.ID] = true
	}
}

func TestAddAt(t *testing.T) {
	c := newTestController(t, 30, 60)
	pos := 1
	c.AddAt("", 45, &pos)
	assert.Equal(t, []string{"t1", "t3", "t2"}, sequence.IDs(c.Sequence()))
}

func TestStartStopsOthers(t *testing.T) {
	c := newTestController(t, 30, 60)

	require.True(t, c.Start("t2"))
	assert.Equal(t, []string{"t2"}, runningIDs(c))
	assert.Equal(t, StateActive, c.State())

	// Starting A while B is running stops B
	require.True(t, c.Start("t1"))
	assert.Equal(t, []string{"t1"}, runningIDs(c))
	cur, _ := c.Current()
	assert.Equal(t, "t1", cur.ID)
	assertInvariants(t, c)
}

func TestStartUnknownIsNoOp(t *testing.T) {
	c := newTestController(t, 30)
	before := c.Sequence()
	assert.False(t, c.Start("nope"))
	assert.Equal(t, before, c.Sequence())
	assert.Equal(t, StateIdle, c.State())
}

func TestStartFromSuspended(t *testing.T) {
	c := newTestController(t, 30, 60)
	c.Start("t1")
	c.PauseResume()
	require.Equal(t, StateSuspended, c.State())

	c.Start("t2")
	assert.Equal(t, StateActive, c.State())
	assert.Equal(t, []string{"t2"}, runningIDs(c))
}

func TestAdvance(t *testing.T) {
	c := newTestController(t, 30, 60, 45)
	c.Start("t1")
	c.Tick(5)

	require.True(t, c.Advance("t1"))
	cur, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "t2", cur.ID)
	assert.Equal(t, []string{"t2"}, runningIDs(c))

	first, _ := c.At(0)
	assert.Equal(t, 5, first.ElapsedTime, "previous timer keeps its elapsed time")
	assert.False(t, first.IsRunning)

	require.True(t, c.Advance("t2"))
	require.True(t, c.Advance("t3"))
	assert.Equal(t, StateIdle, c.State())
	assert.Empty(t, runningIDs(c))
}

func TestAdvanceRequiresActiveCurrent(t *testing.T) {
	c := newTestController(t, 30, 60)

	assert.False(t, c.Advance("t1"), "idle")

	c.Start("t1")
	assert.False(t, c.Advance("t2"), "not the current timer")

	c.PauseResume()
	assert.False(t, c.Advance("t1"), "suspended")
	assert.Equal(t, StateSuspended, c.State())
}

func TestAdvanceCurrent(t *testing.T) {
	c := newTestController(t, 30, 60)
	assert.False(t, c.AdvanceCurrent())

	c.Start("t1")
	assert.True(t, c.AdvanceCurrent())
	cur, _ := c.Current()
	assert.Equal(t, "t2", cur.ID)
}

func TestPauseResume(t *testing.T) {
	c := newTestController(t, 30, 60)

	// Idle -> Active on the first timer
	require.True(t, c.PauseResume())
	cur, _ := c.Current()
	assert.Equal(t, "t1", cur.ID)
	assert.Equal(t, StateActive, c.State())

	// Active -> Suspended
	require.True(t, c.PauseResume())
	assert.Equal(t, StateSuspended, c.State())
	assert.Empty(t, runningIDs(c))

	// Suspended -> Active
	require.True(t, c.PauseResume())
	assert.Equal(t, StateActive, c.State())
	assert.Equal(t, []string{"t1"}, runningIDs(c))
}

func TestPauseResumeEmpty(t *testing.T) {
	c := NewController()
	assert.False(t, c.PauseResume())
	assert.Equal(t, StateIdle, c.State())
}

func TestResetAll(t *testing.T) {
	c := newTestController(t, 2, 60)
	c.SetName("t1", "Named")
	c.Start("t1")
	c.Tick(5)

	c.ResetAll()
	assert.Equal(t, StateIdle, c.State())
	for _, tm := range c.Sequence() {
		assert.False(t, tm.IsRunning)
		assert.Equal(t, 0, tm.ElapsedTime)
		assert.False(t, tm.IsOverrun)
	}
	first, _ := c.At(0)
	assert.Equal(t, "Named", first.Name)
	assert.Equal(t, 2, first.ExpectedTime)
}

func TestDeleteAll(t *testing.T) {
	c := newTestController(t, 30, 60)
	c.Start("t2")
	c.DeleteAll()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, StateIdle, c.State())
}

func TestRemove(t *testing.T) {
	t.Run("removing current clears cursor", func(t *testing.T) {
		c := newTestController(t, 30, 60, 45)
		c.Start("t2")
		require.True(t, c.Remove("t2"))
		assert.Equal(t, StateIdle, c.State())
		assert.Empty(t, runningIDs(c))
	})

	t.Run("removing another timer keeps cursor", func(t *testing.T) {
		c := newTestController(t, 30, 60, 45)
		c.Start("t3")
		require.True(t, c.Remove("t1"))
		cur, ok := c.Current()
		require.True(t, ok)
		assert.Equal(t, "t3", cur.ID)
		assert.Equal(t, 1, c.CurrentIndex())
		assert.Equal(t, StateActive, c.State())
	})

	t.Run("position matching id text does not matter", func(t *testing.T) {
		// ids that look like indexes must not be confused with positions
		n := -1
		c := NewController(WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("%d", n)
		}))
		c.Add("", 10) // id "0"
		c.Add("", 10) // id "1"
		c.Add("", 10) // id "2"
		c.MoveTo("2", 0)
		c.Start("1")

		require.True(t, c.Remove("2"))
		cur, ok := c.Current()
		require.True(t, ok)
		assert.Equal(t, "1", cur.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		c := newTestController(t, 30)
		c.Start("t1")
		assert.False(t, c.Remove("nope"))
		assert.Equal(t, 1, c.Len())
		assert.Equal(t, StateActive, c.State())
	})
}

func TestReorder(t *testing.T) {
	c := newTestController(t, 10, 20, 30)

	require.True(t, c.Reorder("t3", "t1"))
	assert.Equal(t, []string{"t3", "t1", "t2"}, sequence.IDs(c.Sequence()))

	require.True(t, c.Reorder("t3", "t2"))
	assert.Equal(t, []string{"t1", "t2", "t3"}, sequence.IDs(c.Sequence()))

	assert.False(t, c.Reorder("t1", "t1"))
	assert.False(t, c.Reorder("nope", "t1"))
	assert.False(t, c.Reorder("t1", "nope"))
	assert.Equal(t, []string{"t1", "t2", "t3"}, sequence.IDs(c.Sequence()))
}

func TestReorderIDs(t *testing.T) {
	c := newTestController(t, 10, 20, 30)

	assert.False(t, c.ReorderIDs([]string{"t1", "t2"}))
	assert.False(t, c.ReorderIDs([]string{"t1", "t2", "t3"}))
	require.True(t, c.ReorderIDs([]string{"t2", "t3", "t1"}))
	assert.Equal(t, []string{"t2", "t3", "t1"}, sequence.IDs(c.Sequence()))
}

func TestReorderKeepsCursor(t *testing.T) {
	c := newTestController(t, 10, 20, 30)
	c.Start("t1")
	c.MoveTo("t1", 2)

	cur, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "t1", cur.ID)
	assert.Equal(t, 2, c.CurrentIndex())

	// No successor after moving the current timer to the end
	require.True(t, c.Advance("t1"))
	assert.Equal(t, StateIdle, c.State())
}

func TestMoveUpDown(t *testing.T) {
	c := newTestController(t, 10, 20, 30)

	assert.False(t, c.MoveUp("t1"), "already first")
	assert.False(t, c.MoveDown("t3"), "already last")
	assert.False(t, c.MoveUp("nope"))
	assert.False(t, c.MoveDown("nope"))

	require.True(t, c.MoveDown("t1"))
	assert.Equal(t, []string{"t2", "t1", "t3"}, sequence.IDs(c.Sequence()))

	require.True(t, c.MoveUp("t3"))
	assert.Equal(t, []string{"t2", "t3", "t1"}, sequence.IDs(c.Sequence()))
}

func TestSetExpectedTime(t *testing.T) {
	c := newTestController(t, 60)
	c.Start("t1")
	c.Tick(45)

	require.True(t, c.SetExpectedTime("t1", 30))
	cur, _ := c.Current()
	assert.Equal(t, 30, cur.ExpectedTime)
	assert.True(t, cur.IsOverrun)

	assert.False(t, c.SetExpectedTime("t1", -1))
	assert.False(t, c.SetExpectedTime("nope", 10))
	assertInvariants(t, c)
}

func TestSetName(t *testing.T) {
	c := newTestController(t, 60)
	require.True(t, c.SetName("t1", "Stretch"))
	tm, _ := c.At(0)
	assert.Equal(t, "Stretch", tm.Name)
	assert.False(t, c.SetName("nope", "x"))
}

func TestTick(t *testing.T) {
	c := newTestController(t, 2, 60)

	assert.False(t, c.Tick(1), "idle sessions do not tick")

	c.Start("t1")
	for i := 0; i < 3; i++ {
		assert.True(t, c.Tick(1))
	}
	cur, _ := c.Current()
	assert.Equal(t, 3, cur.ElapsedTime)
	assert.True(t, cur.IsOverrun)

	second, _ := c.At(1)
	assert.Equal(t, 0, second.ElapsedTime)

	c.PauseResume()
	assert.False(t, c.Tick(1), "suspended sessions do not tick")
	cur, _ = c.Current()
	assert.Equal(t, 3, cur.ElapsedTime)
	assertInvariants(t, c)
}

func TestTotals(t *testing.T) {
	c := newTestController(t, 2, 10)
	c.Start("t1")
	c.Tick(5)

	totals := c.Totals()
	assert.Equal(t, 12, totals.Target)
	assert.Equal(t, 5, totals.Elapsed)
	assert.Equal(t, 3, totals.Overrun)
}

func TestLoad(t *testing.T) {
	c := newTestController(t, 10)
	c.Start("t1")

	c.Load(sequence.Sequence{
		timer.New("x", 5, "X"),
		timer.Start(timer.New("y", 5, "Y")),
	})
	assert.Equal(t, StateIdle, c.State())
	assert.Equal(t, []string{"x", "y"}, sequence.IDs(c.Sequence()))
	assert.Empty(t, runningIDs(c))
}

func TestSequenceReturnsCopy(t *testing.T) {
	c := newTestController(t, 10)
	seq := c.Sequence()
	seq[0].Name = "mutated"
	tm, _ := c.At(0)
	assert.Empty(t, tm.Name)
}

func TestViews(t *testing.T) {
	c := newTestController(t, 2, 10, 10, 10)
	c.Start("t1")
	c.Tick(3)
	c.Advance("t1")
	c.Tick(1)
	c.Advance("t2")
	c.PauseResume()

	views := c.Views()
	require.Len(t, views, 4)
	assert.Equal(t, StatusOverrun, views[0].Status)
	assert.Equal(t, StatusFinished, views[1].Status)
	assert.Equal(t, StatusPaused, views[2].Status)
	assert.True(t, views[2].IsCurrent)
	assert.Equal(t, StatusPending, views[3].Status)
	assert.Equal(t, 3, views[3].Position)

	c.PauseResume()
	assert.Equal(t, StatusRunning, c.Views()[2].Status)

	c.Advance("t3")
	c.Advance("t4")
	views = c.Views()
	assert.Equal(t, StatusFinished, views[1].Status, "idle with elapsed time")
	assert.Equal(t, StatusPending, views[3].Status, "idle without elapsed time")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "active", StateActive.String())
	assert.Equal(t, "suspended", StateSuspended.String())
	assert.Equal(t, "unknown", State(9).String())
}

func TestInvariantsAcrossScenario(t *testing.T) {
	c := newTestController(t, 3, 3, 3)
	steps := []func(){
		func() { c.PauseResume() },
		func() { c.Tick(1) },
		func() { c.Start("t3") },
		func() { c.Tick(4) },
		func() { c.Start("t2") },
		func() { c.PauseResume() },
		func() { c.Reorder("t1", "t3") },
		func() { c.Start("t1") },
		func() { c.AdvanceCurrent() },
		func() { c.Remove("t1") },
		func() { c.Tick(2) },
		func() { c.ResetAll() },
	}
	for _, step := range steps {
		step()
		assertInvariants(t, c)
	}
}
