// Package termtest replays terminal output onto a virtual screen so tests can
// assert on what a user would actually see after cursor moves and clears.
package termtest

import (
	"regexp"
	"strings"
)

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

// StripANSI removes all CSI escape sequences from s
func StripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// Screen is a fixed-size grid of runes with a cursor
type Screen struct {
	rows, cols int
	cells      [][]rune
	x, y       int
	altScreen  bool
}

// NewScreen creates a blank screen
func NewScreen(rows, cols int) *Screen {
	s := &Screen{rows: rows, cols: cols, cells: make([][]rune, rows)}
	for i := range s.cells {
		s.cells[i] = blankRow(cols)
	}
	return s
}

// Replay parses output into a fresh 40x140 screen
func Replay(output string) *Screen {
	s := NewScreen(40, 140)
	s.Write([]byte(output))
	return s
}

// Write implements io.Writer so a display can render straight into a Screen
func (s *Screen) Write(p []byte) (int, error) {
	runes := []rune(string(p))
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; {
		case r == '\x1b' && i+1 < len(runes) && runes[i+1] == '[':
			i = s.csi(runes, i+2)
		case r == '\r':
			s.x = 0
		case r == '\n':
			s.x = 0
			s.lineFeed()
		default:
			s.put(r)
		}
	}
	return len(p), nil
}

// csi handles one control sequence starting after "ESC[" and returns the
// index of its final byte
func (s *Screen) csi(runes []rune, i int) int {
	private := false
	var params []int
	current, seen := 0, false

	for ; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '?':
			private = true
		case r >= '0' && r <= '9':
			current = current*10 + int(r-'0')
			seen = true
		case r == ';':
			params = append(params, current)
			current, seen = 0, false
		default:
			if seen {
				params = append(params, current)
			}
			s.command(r, params, private)
			return i
		}
	}
	return i
}

func param(params []int, idx, def int) int {
	if idx < len(params) && params[idx] > 0 {
		return params[idx]
	}
	return def
}

func (s *Screen) command(cmd rune, params []int, private bool) {
	switch cmd {
	case 'h', 'l':
		if private && param(params, 0, 0) == 1049 {
			s.altScreen = cmd == 'h'
			s.clearAll()
		}
	case 'H', 'f':
		s.y = min(param(params, 0, 1), s.rows) - 1
		s.x = min(param(params, 1, 1), s.cols) - 1
	case 'J':
		switch param(params, 0, 0) {
		case 2, 3:
			s.clearAll()
		default:
			s.clearLineFrom(s.y, s.x)
			for y := s.y + 1; y < s.rows; y++ {
				s.cells[y] = blankRow(s.cols)
			}
		}
	case 'K':
		s.clearLineFrom(s.y, s.x)
	case 'A':
		s.y = max(0, s.y-param(params, 0, 1))
	case 'B':
		s.y = min(s.rows-1, s.y+param(params, 0, 1))
	}
	// 'm' and anything else only change attributes
}

func (s *Screen) put(r rune) {
	if s.x >= s.cols {
		return
	}
	s.cells[s.y][s.x] = r
	s.x++
}

func (s *Screen) lineFeed() {
	if s.y < s.rows-1 {
		s.y++
		return
	}
	copy(s.cells, s.cells[1:])
	s.cells[s.rows-1] = blankRow(s.cols)
}

func (s *Screen) clearAll() {
	for y := range s.cells {
		s.cells[y] = blankRow(s.cols)
	}
}

func (s *Screen) clearLineFrom(y, x int) {
	for ; x < s.cols; x++ {
		s.cells[y][x] = ' '
	}
}

func blankRow(cols int) []rune {
	row := make([]rune, cols)
	for i := range row {
		row[i] = ' '
	}
	return row
}

// Line returns row y without trailing blanks
func (s *Screen) Line(y int) string {
	if y < 0 || y >= s.rows {
		return ""
	}
	return strings.TrimRight(string(s.cells[y]), " ")
}

// Lines returns every row up to the last non-blank one
func (s *Screen) Lines() []string {
	lines := make([]string, s.rows)
	last := -1
	for y := range s.cells {
		lines[y] = s.Line(y)
		if lines[y] != "" {
			last = y
		}
	}
	return lines[:last+1]
}

// String joins Lines with newlines
func (s *Screen) String() string {
	return strings.Join(s.Lines(), "\n")
}

// Contains reports whether any row contains text
func (s *Screen) Contains(text string) bool {
	for _, line := range s.Lines() {
		if strings.Contains(line, text) {
			return true
		}
	}
	return false
}

// AltScreen reports whether the alternate screen is active
func (s *Screen) AltScreen() bool {
	return s.altScreen
}
