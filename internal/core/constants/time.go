package constants

import "time"

const (
	// Timer defaults
	DefaultExpectedSeconds = 60
	DefaultExpected        = DefaultExpectedSeconds * time.Second

	// Ticking is coarse: one second of elapsed time per tick
	TickInterval     = 1 * time.Second
	TickDeltaSeconds = 1

	// Display refresh bounds (Hz)
	MinRefreshPerSecond     = 0.1
	MaxRefreshPerSecond     = 20.0
	DefaultRefreshPerSecond = 2.0

	// Step used by the +/- keys when adjusting an expected time
	ExpectedAdjustStep = 15
)
