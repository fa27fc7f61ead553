package run

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cosmichound/multitimer/internal/core/constants"
	"github.com/cosmichound/multitimer/internal/core/model"
	"github.com/cosmichound/multitimer/internal/core/session"
	"github.com/cosmichound/multitimer/internal/data/plan"
	"github.com/cosmichound/multitimer/internal/presentation/display"
	"github.com/cosmichound/multitimer/internal/presentation/interaction"
	"github.com/cosmichound/multitimer/internal/presentation/layout"
	"github.com/cosmichound/multitimer/internal/util"
)

// Orchestrator coordinates all components for the run command
type Orchestrator struct {
	config       *Config
	stateManager *StateManager

	// UI components
	display  DisplayController
	keyboard InputHandler

	// Plan watching
	watcher     PlanMonitor
	pendingPlan *plan.Plan

	// Tick source; replaced in tests
	tickInterval time.Duration
}

// Option customizes an Orchestrator
type Option func(*Orchestrator)

// WithDisplay replaces the terminal display
func WithDisplay(d DisplayController) Option {
	return func(o *Orchestrator) { o.display = d }
}

// WithInput replaces the raw-mode keyboard
func WithInput(in InputHandler) Option {
	return func(o *Orchestrator) { o.keyboard = in }
}

// WithPlanMonitor replaces the fsnotify plan watcher
func WithPlanMonitor(m PlanMonitor) Option {
	return func(o *Orchestrator) { o.watcher = m }
}

// WithTickInterval changes how often one second of timer time is added
func WithTickInterval(d time.Duration) Option {
	return func(o *Orchestrator) { o.tickInterval = d }
}

// NewOrchestrator creates a new Orchestrator instance
func NewOrchestrator(config *Config, opts ...Option) (*Orchestrator, error) {
	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	controller := session.NewController(session.WithDefaultExpected(config.DefaultExpected))
	stateManager := NewStateManager(controller)
	stateManager.UpdateInteractionState(func(s *model.InteractionState) {
		s.LayoutStyle = layout.StyleFromName(config.Layout)
	})

	o := &Orchestrator{
		config:       config,
		stateManager: stateManager,
		tickInterval: constants.TickInterval,
	}
	for _, opt := range opts {
		opt(o)
	}

	if config.PlanPath != "" {
		p, err := plan.Load(config.PlanPath)
		if err != nil {
			return nil, err
		}
		o.applyPlan(p)
	}

	if o.display == nil {
		o.display = display.NewTerminalDisplay(&display.DisplayConfig{
			Timezone:   config.Timezone,
			TimeFormat: config.TimeFormat,
		})
	}

	return o, nil
}

// StateManager exposes the session state, mainly for tests
func (o *Orchestrator) StateManager() *StateManager {
	return o.stateManager
}

// Run starts the orchestrator main loop
func (o *Orchestrator) Run(ctx context.Context) error {
	util.LogInfo("Starting multitimer", util.F("plan", o.config.PlanPath))

	// Ensure cleanup on exit
	defer o.Close()

	// Initialize global time provider with configured timezone
	if err := util.InitializeTimeProvider(o.config.Timezone); err != nil {
		return fmt.Errorf("failed to initialize timezone: %w", err)
	}

	if o.keyboard == nil {
		keyboard, err := interaction.NewKeyboardReader()
		if err != nil {
			return fmt.Errorf("failed to initialize keyboard: %w", err)
		}
		o.keyboard = keyboard
	}
	defer o.keyboard.Close()

	if err := o.startWatcher(); err != nil {
		return fmt.Errorf("failed to start plan watcher: %w", err)
	}

	o.display.EnterAlternateScreen()
	defer o.display.ExitAlternateScreen()

	tickTicker := time.NewTicker(o.tickInterval)
	defer tickTicker.Stop()

	uiTicker := time.NewTicker(time.Duration(float64(time.Second) / o.config.UIRefreshRate))
	defer uiTicker.Stop()

	o.updateDisplay()

	for {
		select {
		case <-ctx.Done():
			util.LogInfo("Shutting down multitimer")
			return nil

		case <-tickTicker.C:
			o.stateManager.Apply(func(c *session.Controller) bool {
				return c.Tick(constants.TickDeltaSeconds)
			})

		case <-uiTicker.C:
			o.updateDisplay()

		case event, ok := <-o.watcherEvents():
			if !ok {
				o.watcher = nil
				continue
			}
			o.handlePlanChange(event)
			o.updateDisplay()

		case keyEvent, ok := <-o.keyboard.Events():
			if !ok {
				return nil
			}
			if o.handleKeyboard(keyEvent) {
				util.LogInfo("Quit requested")
				return nil
			}
			o.updateDisplay()
		}
	}
}

// watcherEvents returns nil when not watching; a nil channel never fires
func (o *Orchestrator) watcherEvents() <-chan plan.Event {
	if o.watcher == nil {
		return nil
	}
	return o.watcher.Events()
}

// updateDisplay updates the terminal display
func (o *Orchestrator) updateDisplay() {
	o.display.RenderWithState(o.stateManager.Dashboard(), o.stateManager.GetInteractionState())
}

// startWatcher initializes the plan watcher when --watch is set
func (o *Orchestrator) startWatcher() error {
	if !o.config.Watch || o.watcher != nil {
		return nil
	}
	watcher, err := plan.NewWatcher(o.config.PlanPath)
	if err != nil {
		return err
	}
	o.watcher = watcher
	util.LogInfo("Watching plan file", util.F("path", watcher.Path()))
	return nil
}

// handlePlanChange reloads the plan. A busy session keeps running and the
// new plan waits until the session is idle.
func (o *Orchestrator) handlePlanChange(event plan.Event) {
	util.LogDebug("plan changed", util.F("path", event.Path), util.F("op", event.Operation))

	p, err := plan.Load(o.config.PlanPath)
	if err != nil {
		util.LogWarn("plan reload failed", util.F("error", err.Error()))
		o.stateManager.SetStatus(fmt.Sprintf("Plan reload failed: %v", err))
		return
	}

	idle := false
	o.stateManager.Read(func(c *session.Controller) {
		idle = c.State() == session.StateIdle
	})
	if !idle {
		o.pendingPlan = p
		o.stateManager.SetReloadPending(true)
		o.stateManager.SetStatus("Plan changed; it will load when the session is idle")
		return
	}

	o.applyPlan(p)
	o.stateManager.SetStatus(fmt.Sprintf("Plan reloaded: %d timers", len(p.Timers)))
}

// applyPending loads a plan that arrived while the session was busy
func (o *Orchestrator) applyPending() bool {
	if o.pendingPlan == nil {
		return false
	}
	o.applyPlan(o.pendingPlan)
	return true
}

func (o *Orchestrator) applyPlan(p *plan.Plan) {
	seq := p.Build(o.config.DefaultExpected, uuid.NewString)
	o.stateManager.Apply(func(c *session.Controller) bool {
		c.Load(seq)
		return true
	})
	o.stateManager.SetPlanName(p.Name)
	o.stateManager.SetReloadPending(false)
	o.pendingPlan = nil
	util.LogInfo("plan applied", util.F("name", p.Name), util.F("timers", len(seq)))
}

// Close cleans up all resources
func (o *Orchestrator) Close() error {
	if o.watcher != nil {
		if err := o.watcher.Close(); err != nil {
			return fmt.Errorf("failed to close plan watcher: %w", err)
		}
		o.watcher = nil
	}
	return nil
}
