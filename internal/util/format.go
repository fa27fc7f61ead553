package util

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidClock is returned by ParseClock for input it cannot read
var ErrInvalidClock = errors.New("invalid time value")

// MaxClockSeconds is the largest duration ParseClock accepts
const MaxClockSeconds = math.MaxInt32

// ParseClock reads a user-entered duration as whole seconds. It accepts
// plain seconds ("90"), MM:SS or H:MM:SS ("1:30"), and Go durations ("1m30s").
func ParseClock(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidClock)
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("%w: %q is negative", ErrInvalidClock, s)
		}
		if n > MaxClockSeconds {
			return 0, fmt.Errorf("%w: %q is too large", ErrInvalidClock, s)
		}
		return n, nil
	}

	if strings.Contains(s, ":") {
		return parseColon(s)
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidClock, s)
	}
	if d/time.Second > MaxClockSeconds {
		return 0, fmt.Errorf("%w: %q is too large", ErrInvalidClock, s)
	}
	return int(d / time.Second), nil
}

func parseColon(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	total := 0
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
		}
		// Every field after the first is base 60
		if i > 0 && n >= 60 {
			return 0, fmt.Errorf("%w: %q has a field over 59", ErrInvalidClock, s)
		}
		if total > (MaxClockSeconds-n)/60 {
			return 0, fmt.Errorf("%w: %q is too large", ErrInvalidClock, s)
		}
		total = total*60 + n
	}
	return total, nil
}

// SplitClockPrefix reads "[target] [name...]" from already split words.
// A first word that is not a time belongs to the name. A missing target is
// returned as -1 so callers can apply their default.
func SplitClockPrefix(words []string) (int, string) {
	if len(words) == 0 {
		return -1, ""
	}
	if secs, err := ParseClock(words[0]); err == nil {
		return secs, strings.Join(words[1:], " ")
	}
	return -1, strings.Join(words, " ")
}

// FormatDuration renders seconds as a compact human string, e.g. "1h 05m" or "4m 10s"
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	d := time.Duration(seconds) * time.Second
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %02dm", hours, minutes)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %02ds", minutes, secs)
	}
	return fmt.Sprintf("%ds", secs)
}

// FormatPercent renders part/whole as an integer percentage. A zero whole is 0%.
func FormatPercent(part, whole int) string {
	if whole <= 0 {
		return "0%"
	}
	return fmt.Sprintf("%d%%", part*100/whole)
}
