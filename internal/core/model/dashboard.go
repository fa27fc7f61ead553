package model

import (
	"github.com/cosmichound/multitimer/internal/core/sequence"
	"github.com/cosmichound/multitimer/internal/core/session"
)

// Dashboard is one render's worth of session data
type Dashboard struct {
	PlanName      string
	State         session.State
	Views         []session.TimerView
	Totals        sequence.Totals
	Selected      int
	ReloadPending bool // plan changed on disk while the session was busy
}

// Current returns the current timer view, if any
func (d *Dashboard) Current() (session.TimerView, bool) {
	for _, v := range d.Views {
		if v.IsCurrent {
			return v, true
		}
	}
	return session.TimerView{}, false
}

// LayoutParam carries display settings into a layout strategy
type LayoutParam struct {
	Timezone   string
	TimeFormat string
	Width      int // 0 means detect from the terminal
}
