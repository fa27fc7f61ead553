package timer

import "fmt"

// Timer is a single count-up interval with a target duration.
// All transitions in this package take a Timer by value and return a new one.
type Timer struct {
	ID           string `json:"id"`
	Name         string `json:"name,omitempty"`
	ExpectedTime int    `json:"expected_time"` // seconds
	ElapsedTime  int    `json:"elapsed_time"`  // seconds
	IsRunning    bool   `json:"is_running"`
	IsOverrun    bool   `json:"is_overrun"`
}

// New creates a stopped timer with no elapsed time
func New(id string, expected int, name string) Timer {
	if expected < 0 {
		expected = 0
	}
	return Timer{
		ID:           id,
		Name:         name,
		ExpectedTime: expected,
	}
}

// Start marks the timer as running
func Start(t Timer) Timer {
	t.IsRunning = true
	return t
}

// Stop marks the timer as not running
func Stop(t Timer) Timer {
	t.IsRunning = false
	return t
}

// Reset stops the timer and clears its elapsed time.
// ID, Name and ExpectedTime are kept.
func Reset(t Timer) Timer {
	t.IsRunning = false
	t.ElapsedTime = 0
	t.IsOverrun = false
	return t
}

// Tick adds delta seconds to a running timer. A stopped timer is returned as is.
func Tick(t Timer, delta int) Timer {
	if !t.IsRunning {
		return t
	}
	t.ElapsedTime += delta
	t.IsOverrun = IsOverrun(t)
	return t
}

// IsOverrun reports whether the elapsed time is strictly past the target
func IsOverrun(t Timer) bool {
	return t.ElapsedTime > t.ExpectedTime
}

// WithExpectedTime changes the target. The overrun flag follows the new target.
func WithExpectedTime(t Timer, expected int) Timer {
	t.ExpectedTime = expected
	t.IsOverrun = IsOverrun(t)
	return t
}

// WithName relabels the timer
func WithName(t Timer, name string) Timer {
	t.Name = name
	return t
}

// Remaining returns the seconds left before the target is reached
func Remaining(t Timer) int {
	if t.ElapsedTime >= t.ExpectedTime {
		return 0
	}
	return t.ExpectedTime - t.ElapsedTime
}

// Overrun returns the seconds spent past the target
func Overrun(t Timer) int {
	if t.ElapsedTime <= t.ExpectedTime {
		return 0
	}
	return t.ElapsedTime - t.ExpectedTime
}

// Label returns the display name, falling back to "Timer N" for the 0-based position
func Label(t Timer, position int) string {
	if t.Name != "" {
		return t.Name
	}
	return fmt.Sprintf("Timer %d", position+1)
}

// ShortID returns the first 8 characters of the id
func ShortID(t Timer) string {
	if len(t.ID) <= 8 {
		return t.ID
	}
	return t.ID[:8]
}
