package session

import "github.com/cosmichound/multitimer/internal/core/timer"

// State describes what the session is doing right now
type State int

const (
	// StateIdle means no timer is current
	StateIdle State = iota
	// StateActive means the current timer is running
	StateActive
	// StateSuspended means there is a current timer but it is paused
	StateSuspended
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateSuspended:
		return "suspended"
	default:
		return "unknown"
	}
}

// TimerStatus is the display status of a timer within the session
type TimerStatus string

const (
	StatusPending  TimerStatus = "pending"
	StatusRunning  TimerStatus = "running"
	StatusPaused   TimerStatus = "paused"
	StatusFinished TimerStatus = "finished"
	StatusOverrun  TimerStatus = "overrun"
)

// TimerView pairs a timer with its position and status for rendering
type TimerView struct {
	timer.Timer
	Position  int
	IsCurrent bool
	Status    TimerStatus
}
