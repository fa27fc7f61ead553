package sequence

import "github.com/cosmichound/multitimer/internal/core/timer"

// Totals are derived from a sequence on demand and never stored
type Totals struct {
	Count        int `json:"count"`
	Target       int `json:"target"`
	Elapsed      int `json:"elapsed"`
	Overrun      int `json:"overrun"`
	Remaining    int `json:"remaining"`
	OverrunCount int `json:"overrun_count"`
}

// Sum computes the aggregate target, elapsed and overrun seconds
func Sum(seq Sequence) Totals {
	totals := Totals{Count: len(seq)}
	for _, t := range seq {
		totals.Target += t.ExpectedTime
		totals.Elapsed += t.ElapsedTime
		totals.Overrun += timer.Overrun(t)
		totals.Remaining += timer.Remaining(t)
		if t.IsOverrun {
			totals.OverrunCount++
		}
	}
	return totals
}
