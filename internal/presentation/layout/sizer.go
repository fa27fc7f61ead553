package layout

import (
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Package-level singleton Sizer instance
var sharedSizer = &Sizer{}

type Sizer struct {
}

// PadString pads a string to a specific display width. Longer strings are truncated.
func (i Sizer) PadString(s string, width int, leftAlign bool) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		return runewidth.Truncate(s, width, "…")
	}
	if leftAlign {
		return runewidth.FillRight(s, width)
	}
	return runewidth.FillLeft(s, width)
}

// GetMaxWidth returns the box width, honoring an explicit width
func (i Sizer) GetMaxWidth(explicit int) int {
	if explicit > 0 {
		return explicit
	}

	// Get terminal width with fallback
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth < 60 {
		termWidth = 82 // Default fallback
	}

	maxWidth := termWidth - 2
	if maxWidth > 120 {
		maxWidth = 120
	}
	return maxWidth
}
