package run

import (
	"fmt"

	"github.com/cosmichound/multitimer/internal/core/constants"
	"github.com/cosmichound/multitimer/internal/util"
)

// Config contains configuration for the run command
type Config struct {
	// Plan file used to seed the session; empty starts with no timers
	PlanPath string
	Watch    bool

	// Target for timers added without one, in seconds
	DefaultExpected int

	// Display settings
	Timezone   string
	TimeFormat string
	Layout     string

	// UI refreshes per second
	UIRefreshRate float64
}

// Validate fills defaults and checks ranges
func (c *Config) Validate() error {
	if c.DefaultExpected < 0 {
		return fmt.Errorf("default expected time must not be negative, got %d", c.DefaultExpected)
	}
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	if c.TimeFormat == "" {
		c.TimeFormat = "24h"
	}
	if c.Layout == "" {
		c.Layout = "full"
	}
	if c.UIRefreshRate == 0 {
		c.UIRefreshRate = constants.DefaultRefreshPerSecond
	}
	if c.UIRefreshRate < constants.MinRefreshPerSecond || c.UIRefreshRate > constants.MaxRefreshPerSecond {
		return fmt.Errorf("refresh rate must be between %.1f and %.1f, got %.2f",
			constants.MinRefreshPerSecond, constants.MaxRefreshPerSecond, c.UIRefreshRate)
	}
	if c.Watch && c.PlanPath == "" {
		return fmt.Errorf("--watch needs a plan file")
	}
	return util.ValidateTimezone(c.Timezone)
}
