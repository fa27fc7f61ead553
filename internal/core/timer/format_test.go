package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected string
	}{
		{name: "zero", input: 0, expected: "00:00"},
		{name: "seconds only", input: 5, expected: "00:05"},
		{name: "one minute five", input: 65, expected: "01:05"},
		{name: "exactly ten minutes", input: 600, expected: "10:00"},
		{name: "just under an hour", input: 3599, expected: "59:59"},
		{name: "no hour rollover", input: 3600, expected: "60:00"},
		{name: "three digit minutes", input: 6000, expected: "100:00"},
		{name: "negative clamps", input: -3, expected: "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTime(tt.input))
		})
	}
}
