// Package session owns the running state of a timer sequence: the ordered
// timers plus the cursor that marks the current one. Every mutation goes
// through the pure functions in the timer and sequence packages.
//
// At most one timer is running at any time, and when one is running it is
// the current timer. The Controller keeps that true across all operations.
//
// A Controller is not safe for concurrent use; callers serialize access.
package session

import (
	"slices"

	"github.com/google/uuid"

	"github.com/cosmichound/multitimer/internal/core/constants"
	"github.com/cosmichound/multitimer/internal/core/sequence"
	"github.com/cosmichound/multitimer/internal/core/timer"
)

// IDGenerator produces unique timer ids
type IDGenerator func() string

// Controller holds one session's sequence and run cursor
type Controller struct {
	seq             sequence.Sequence
	current         *string
	newID           IDGenerator
	defaultExpected int
}

// Option configures a Controller
type Option func(*Controller)

// WithIDGenerator replaces the default UUID generator
func WithIDGenerator(gen IDGenerator) Option {
	return func(c *Controller) {
		c.newID = gen
	}
}

// WithDefaultExpected sets the target used for timers added without one
func WithDefaultExpected(seconds int) Option {
	return func(c *Controller) {
		if seconds >= 0 {
			c.defaultExpected = seconds
		}
	}
}

// NewController creates an empty, idle session
func NewController(opts ...Option) *Controller {
	c := &Controller{
		seq:             sequence.Sequence{},
		newID:           uuid.NewString,
		defaultExpected: constants.DefaultExpectedSeconds,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add appends a new timer. A negative expected time uses the default.
func (c *Controller) Add(name string, expected int) timer.Timer {
	return c.AddAt(name, expected, nil)
}

// AddAt inserts a new timer at position (nil appends)
func (c *Controller) AddAt(name string, expected int, position *int) timer.Timer {
	if expected < 0 {
		expected = c.defaultExpected
	}
	t := timer.New(c.newID(), expected, name)
	c.seq = sequence.Insert(c.seq, t, position)
	return t
}

// Remove deletes the timer with id. The cursor is cleared only when the
// removed timer was the current one.
func (c *Controller) Remove(id string) bool {
	idx := sequence.IndexOf(c.seq, id)
	if idx == -1 {
		return false
	}
	if idx == c.CurrentIndex() {
		c.current = nil
	}
	c.seq = sequence.Remove(c.seq, id)
	return true
}

// Start makes id the current timer and runs it, stopping anything else
func (c *Controller) Start(id string) bool {
	if sequence.IndexOf(c.seq, id) == -1 {
		return false
	}
	c.seq = sequence.Map(c.seq, func(t timer.Timer) timer.Timer {
		if t.ID == id {
			return timer.Start(t)
		}
		return timer.Stop(t)
	})
	c.setCurrent(id)
	return true
}

// Advance stops the running current timer and starts its successor. With no
// successor the session becomes idle. It only acts when id is the current
// timer and the session is active.
func (c *Controller) Advance(id string) bool {
	if c.State() != StateActive || *c.current != id {
		return false
	}

	cur, _ := sequence.Find(c.seq, id)
	c.seq = sequence.Replace(c.seq, timer.Stop(cur))

	next, ok := sequence.NextAfter(c.seq, c.current)
	if !ok {
		c.current = nil
		return true
	}
	return c.Start(next.ID)
}

// AdvanceCurrent is Advance applied to whatever timer is current
func (c *Controller) AdvanceCurrent() bool {
	if c.current == nil {
		return false
	}
	return c.Advance(*c.current)
}

// PauseResume toggles the current timer. When idle it starts the first timer.
func (c *Controller) PauseResume() bool {
	cur, ok := c.Current()
	if !ok {
		first, ok := sequence.NextAfter(c.seq, nil)
		if !ok {
			return false
		}
		return c.Start(first.ID)
	}

	if cur.IsRunning {
		c.seq = sequence.Replace(c.seq, timer.Stop(cur))
	} else {
		c.seq = sequence.Replace(c.seq, timer.Start(cur))
	}
	return true
}

// ResetAll resets every timer and clears the cursor
func (c *Controller) ResetAll() {
	c.seq = sequence.Map(c.seq, timer.Reset)
	c.current = nil
}

// DeleteAll removes every timer and clears the cursor
func (c *Controller) DeleteAll() {
	c.seq = sequence.Sequence{}
	c.current = nil
}

// Reorder moves fromID into the slot currently held by toID
func (c *Controller) Reorder(fromID, toID string) bool {
	to := sequence.IndexOf(c.seq, toID)
	if to == -1 {
		return false
	}
	return c.MoveTo(fromID, to)
}

// ReorderIDs applies a full permutation of the timer ids
func (c *Controller) ReorderIDs(ids []string) bool {
	reordered := sequence.Reorder(c.seq, ids)
	if slices.Equal(sequence.IDs(reordered), sequence.IDs(c.seq)) {
		return false
	}
	c.seq = reordered
	return true
}

// MoveTo moves id to position
func (c *Controller) MoveTo(id string, position int) bool {
	before := sequence.IndexOf(c.seq, id)
	c.seq = sequence.MoveTo(c.seq, id, position)
	return before != -1 && before != sequence.IndexOf(c.seq, id)
}

// MoveUp swaps id with its predecessor
func (c *Controller) MoveUp(id string) bool {
	idx := sequence.IndexOf(c.seq, id)
	if idx <= 0 {
		return false
	}
	return c.MoveTo(id, idx-1)
}

// MoveDown swaps id with its successor
func (c *Controller) MoveDown(id string) bool {
	idx := sequence.IndexOf(c.seq, id)
	if idx == -1 || idx >= len(c.seq)-1 {
		return false
	}
	return c.MoveTo(id, idx+1)
}

// SetExpectedTime edits a timer's target. Negative values are ignored.
func (c *Controller) SetExpectedTime(id string, seconds int) bool {
	if seconds < 0 {
		return false
	}
	t, ok := sequence.Find(c.seq, id)
	if !ok {
		return false
	}
	c.seq = sequence.Replace(c.seq, timer.WithExpectedTime(t, seconds))
	return true
}

// SetName edits a timer's label
func (c *Controller) SetName(id, name string) bool {
	t, ok := sequence.Find(c.seq, id)
	if !ok {
		return false
	}
	c.seq = sequence.Replace(c.seq, timer.WithName(t, name))
	return true
}

// Tick advances the running timer by delta seconds
func (c *Controller) Tick(delta int) bool {
	cur, ok := c.Current()
	if !ok || !cur.IsRunning {
		return false
	}
	c.seq = sequence.Replace(c.seq, timer.Tick(cur, delta))
	return true
}

// Load replaces the sequence and clears the cursor
func (c *Controller) Load(seq sequence.Sequence) {
	c.seq = sequence.Map(seq, timer.Stop)
	c.current = nil
}

// Sequence returns a copy of the timers in order
func (c *Controller) Sequence() sequence.Sequence {
	out := make(sequence.Sequence, len(c.seq))
	copy(out, c.seq)
	return out
}

// Len returns the number of timers
func (c *Controller) Len() int {
	return len(c.seq)
}

// At returns the timer at a 0-based position
func (c *Controller) At(position int) (timer.Timer, bool) {
	if position < 0 || position >= len(c.seq) {
		return timer.Timer{}, false
	}
	return c.seq[position], true
}

// Current returns the current timer, if any
func (c *Controller) Current() (timer.Timer, bool) {
	if c.current == nil {
		return timer.Timer{}, false
	}
	return sequence.Find(c.seq, *c.current)
}

// CurrentIndex returns the position of the current timer, or -1
func (c *Controller) CurrentIndex() int {
	if c.current == nil {
		return -1
	}
	return sequence.IndexOf(c.seq, *c.current)
}

// State derives Idle/Active/Suspended from the cursor
func (c *Controller) State() State {
	cur, ok := c.Current()
	switch {
	case !ok:
		return StateIdle
	case cur.IsRunning:
		return StateActive
	default:
		return StateSuspended
	}
}

// Totals aggregates the whole sequence
func (c *Controller) Totals() sequence.Totals {
	return sequence.Sum(c.seq)
}

// Views returns render-ready timers with status
func (c *Controller) Views() []TimerView {
	curIdx := c.CurrentIndex()
	views := make([]TimerView, len(c.seq))
	for i, t := range c.seq {
		views[i] = TimerView{
			Timer:     t,
			Position:  i,
			IsCurrent: i == curIdx,
			Status:    statusOf(t, i, curIdx),
		}
	}
	return views
}

func (c *Controller) setCurrent(id string) {
	c.current = &id
}

func statusOf(t timer.Timer, position, curIdx int) TimerStatus {
	switch {
	case position == curIdx && t.IsRunning:
		return StatusRunning
	case position == curIdx:
		return StatusPaused
	case t.IsOverrun:
		return StatusOverrun
	case curIdx != -1 && position < curIdx:
		return StatusFinished
	case curIdx == -1 && t.ElapsedTime > 0:
		return StatusFinished
	default:
		return StatusPending
	}
}
