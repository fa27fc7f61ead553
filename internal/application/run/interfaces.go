package run

import (
	"github.com/cosmichound/multitimer/internal/core/model"
	"github.com/cosmichound/multitimer/internal/data/plan"
	"github.com/cosmichound/multitimer/internal/presentation/interaction"
)

// DisplayController handles terminal display operations
type DisplayController interface {
	// EnterAlternateScreen switches to alternate terminal screen
	EnterAlternateScreen()
	// ExitAlternateScreen returns to normal terminal screen
	ExitAlternateScreen()
	// ClearScreen clears the terminal screen
	ClearScreen()
	// RenderWithState renders the dashboard with the given interaction state
	RenderWithState(dash *model.Dashboard, state model.InteractionState)
}

// InputHandler processes keyboard and other input events
type InputHandler interface {
	// Events returns a channel of keyboard events
	Events() <-chan interaction.KeyEvent
	// Close cleans up input handler resources
	Close() error
}

// PlanMonitor watches the plan file for changes
type PlanMonitor interface {
	// Events returns a channel of file change events
	Events() <-chan plan.Event
	// Close stops monitoring and cleans up resources
	Close() error
}
