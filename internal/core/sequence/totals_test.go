package sequence

import (
	"testing"

	"github.com/cosmichound/multitimer/internal/core/timer"
	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	tests := []struct {
		name     string
		seq      Sequence
		expected Totals
	}{
		{
			name:     "empty",
			seq:      Sequence{},
			expected: Totals{},
		},
		{
			name: "no overrun",
			seq: Sequence{
				{ID: "A", ExpectedTime: 30, ElapsedTime: 10},
				{ID: "B", ExpectedTime: 60},
			},
			expected: Totals{Count: 2, Target: 90, Elapsed: 10, Remaining: 80},
		},
		{
			name: "overrun only counts the excess",
			seq: Sequence{
				{ID: "A", ExpectedTime: 30, ElapsedTime: 45, IsOverrun: true},
				{ID: "B", ExpectedTime: 60, ElapsedTime: 60},
				{ID: "C", ExpectedTime: 10, ElapsedTime: 5},
			},
			expected: Totals{Count: 3, Target: 100, Elapsed: 110, Overrun: 15, Remaining: 5, OverrunCount: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sum(tt.seq))
		})
	}
}

func TestSumAfterTicks(t *testing.T) {
	a := timer.Start(timer.New("A", 2, ""))
	for i := 0; i < 5; i++ {
		a = timer.Tick(a, 1)
	}
	totals := Sum(Sequence{a, timer.New("B", 10, "")})
	assert.Equal(t, 12, totals.Target)
	assert.Equal(t, 5, totals.Elapsed)
	assert.Equal(t, 3, totals.Overrun)
	assert.Equal(t, 1, totals.OverrunCount)
}
