package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{name: "plain seconds", input: "90", expected: 90},
		{name: "zero", input: "0", expected: 0},
		{name: "surrounding space", input: "  45 ", expected: 45},
		{name: "minutes and seconds", input: "1:30", expected: 90},
		{name: "padded minutes", input: "05:00", expected: 300},
		{name: "minutes past sixty", input: "75:00", expected: 4500},
		{name: "hours minutes seconds", input: "1:02:03", expected: 3723},
		{name: "go duration", input: "1m30s", expected: 90},
		{name: "go duration hours", input: "2h", expected: 7200},
		{name: "fractional seconds truncate", input: "1.9s", expected: 1},
		{name: "empty", input: "", wantErr: true},
		{name: "negative seconds", input: "-5", wantErr: true},
		{name: "negative duration", input: "-1m", wantErr: true},
		{name: "seconds field too large", input: "1:75", wantErr: true},
		{name: "too many fields", input: "1:2:3:4", wantErr: true},
		{name: "garbage", input: "soon", wantErr: true},
		{name: "garbage in field", input: "1:xx", wantErr: true},
		{name: "largest clock", input: "596523:14:07", expected: MaxClockSeconds},
		{name: "clock one past largest", input: "596523:14:08", wantErr: true},
		{name: "huge minutes wrap", input: "153722867280912930:59", wantErr: true},
		{name: "huge minutes", input: "999999999999999999:00", wantErr: true},
		{name: "seconds past largest", input: "2147483648", wantErr: true},
		{name: "duration past largest", input: "1000000h", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidClock)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int
		expected string
	}{
		{name: "zero", seconds: 0, expected: "0s"},
		{name: "negative clamps", seconds: -10, expected: "0s"},
		{name: "seconds only", seconds: 42, expected: "42s"},
		{name: "minutes", seconds: 250, expected: "4m 10s"},
		{name: "exact minute", seconds: 60, expected: "1m 00s"},
		{name: "hours", seconds: 3900, expected: "1h 05m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.seconds))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "0%", FormatPercent(5, 0))
	assert.Equal(t, "50%", FormatPercent(30, 60))
	assert.Equal(t, "150%", FormatPercent(90, 60))
}

func TestSplitClockPrefix(t *testing.T) {
	tests := []struct {
		name     string
		words    []string
		wantSecs int
		wantName string
	}{
		{"empty", nil, -1, ""},
		{"target only", []string{"90"}, 90, ""},
		{"target and name", []string{"5m", "deep", "work"}, 300, "deep work"},
		{"name only", []string{"review", "PRs"}, -1, "review PRs"},
		{"negative is a name", []string{"-5", "x"}, -1, "-5 x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secs, name := SplitClockPrefix(tt.words)
			assert.Equal(t, tt.wantSecs, secs)
			assert.Equal(t, tt.wantName, name)
		})
	}
}
