package run

import (
	"sync"

	"github.com/cosmichound/multitimer/internal/core/model"
	"github.com/cosmichound/multitimer/internal/data/plan"
	"github.com/cosmichound/multitimer/internal/presentation/interaction"
)

type fakeDisplay struct {
	mu      sync.Mutex
	renders int
	entered bool
	exited  bool
	last    *model.Dashboard
}

func (d *fakeDisplay) EnterAlternateScreen() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entered = true
}

func (d *fakeDisplay) ExitAlternateScreen() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.exited = true
}

func (d *fakeDisplay) ClearScreen() {}

func (d *fakeDisplay) RenderWithState(dash *model.Dashboard, _ model.InteractionState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.renders++
	d.last = dash
}

func (d *fakeDisplay) renderCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.renders
}

type fakeInput struct {
	events chan interaction.KeyEvent
	closed bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{events: make(chan interaction.KeyEvent, 16)}
}

func (f *fakeInput) Events() <-chan interaction.KeyEvent { return f.events }

func (f *fakeInput) Close() error {
	f.closed = true
	return nil
}

func (f *fakeInput) press(keys ...rune) {
	for _, k := range keys {
		f.events <- interaction.KeyEvent{Key: k, Type: interaction.KeyChar}
	}
}

type fakeMonitor struct {
	events chan plan.Event
	closed bool
}

func (m *fakeMonitor) Events() <-chan plan.Event { return m.events }

func (m *fakeMonitor) Close() error {
	m.closed = true
	return nil
}

func char(r rune) interaction.KeyEvent {
	return interaction.KeyEvent{Key: r, Type: interaction.KeyChar}
}

func key(t interaction.KeyType) interaction.KeyEvent {
	return interaction.KeyEvent{Type: t}
}
