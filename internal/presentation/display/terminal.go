package display

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cosmichound/multitimer/internal/core/model"
	"github.com/cosmichound/multitimer/internal/presentation/layout"
	"github.com/cosmichound/multitimer/internal/util"
)

// DisplayConfig holds display settings
type DisplayConfig struct {
	Timezone   string
	TimeFormat string
	Width      int // 0 detects the terminal width
}

type TerminalDisplay struct {
	config            *DisplayConfig
	out               io.Writer
	inAlternateScreen bool
	lastLayoutStyle   int
	isFirstRender     bool
	currentMode       model.DisplayMode
}

// NewTerminalDisplay writes to stdout
func NewTerminalDisplay(config *DisplayConfig) *TerminalDisplay {
	return NewTerminalDisplayWithWriter(config, os.Stdout)
}

// NewTerminalDisplayWithWriter writes to out
func NewTerminalDisplayWithWriter(config *DisplayConfig, out io.Writer) *TerminalDisplay {
	if config == nil {
		config = &DisplayConfig{}
	}
	return &TerminalDisplay{
		config:        config,
		out:           out,
		isFirstRender: true,
		currentMode:   model.ModeNormal,
	}
}

// EnterAlternateScreen switches to alternate screen buffer
func (td *TerminalDisplay) EnterAlternateScreen() {
	if td.inAlternateScreen {
		return
	}
	fmt.Fprint(td.out, util.EnterAltScreen+util.ClearScreen+util.ClearScrollback+util.MoveCursorHome+util.HideCursor)
	td.inAlternateScreen = true
	td.isFirstRender = true
	// Console logs would tear the frame
	util.MuteConsole(true)
}

// ExitAlternateScreen returns to normal screen buffer
func (td *TerminalDisplay) ExitAlternateScreen() {
	if !td.inAlternateScreen {
		return
	}
	fmt.Fprint(td.out, util.ClearScreen+util.MoveCursorHome+util.ShowCursor+util.ExitAltScreen)
	td.inAlternateScreen = false
	util.MuteConsole(false)
}

// ClearScreen clears the alternate screen buffer
func (td *TerminalDisplay) ClearScreen() {
	if td.inAlternateScreen {
		fmt.Fprint(td.out, util.ClearScreen+util.MoveCursorHome)
	}
}

// RenderWithState draws one frame. The frame is built in memory and written
// with a single call so the terminal never shows a half-drawn screen.
func (td *TerminalDisplay) RenderWithState(dash *model.Dashboard, state model.InteractionState) {
	var frame bytes.Buffer

	newMode := model.DetermineDisplayMode(state)
	if td.isFirstRender || newMode != td.currentMode || td.lastLayoutStyle != state.LayoutStyle {
		frame.WriteString(util.ClearScreen)
		td.isFirstRender = false
		td.currentMode = newMode
		td.lastLayoutStyle = state.LayoutStyle
	}
	frame.WriteString(util.MoveCursorHome)

	switch newMode {
	case model.ModeDialog:
		td.renderConfirmDialog(&frame, state.ConfirmDialog)
	case model.ModeHelp:
		td.renderHelp(&frame)
	default:
		param := model.LayoutParam{
			Timezone:   td.config.Timezone,
			TimeFormat: td.config.TimeFormat,
			Width:      td.config.Width,
		}
		layout.GetLayoutStrategy(state.LayoutStyle).Render(&lineClearer{w: &frame}, dash, param)

		if state.Edit != nil {
			td.renderEditPrompt(&frame, state.Edit)
		} else if state.StatusMessage != "" {
			td.renderStatusMessage(&frame, state.StatusMessage)
		}
	}

	// Clear leftovers from a longer previous frame
	frame.WriteString("\033[J")
	td.out.Write(frame.Bytes())
}

func (td *TerminalDisplay) renderHelp(w io.Writer) {
	lines := []string{
		util.FormatHeaderTitle("Multitimer - Help"),
		strings.Repeat("═", 72),
		"",
		util.FormatOverviewTitle("Running"),
		"  space/p    - Pause or resume (starts the first timer when idle)",
		"  n          - Finish the current timer and start the next",
		"  enter/s    - Start the selected timer",
		"  R          - Reset all timers",
		"",
		util.FormatOverviewTitle("Editing"),
		"  j/k, ↓/↑   - Move the selection",
		"  J/K        - Move the selected timer down/up",
		"  a          - Add a timer",
		"  e          - Edit the selected timer's target",
		"  +/-        - Adjust the selected target by 15 seconds",
		"  N          - Rename the selected timer",
		"  d/x        - Remove the selected timer",
		"  D          - Delete all timers",
		"",
		util.FormatOverviewTitle("View"),
		"  t          - Toggle layout (Full → Minimal)",
		"  h/?        - Show this help",
		"  q/Esc/^C   - Quit (Esc closes help first)",
		"",
		strings.Repeat("═", 72),
		"Press 'h' to return...",
	}
	for _, line := range lines {
		fmt.Fprintln(w, line+util.ClearLineFromCursor)
	}
}

func (td *TerminalDisplay) renderConfirmDialog(w io.Writer, dialog *model.ConfirmDialog) {
	boxWidth := 60
	padding := strings.Repeat(" ", 10)

	fmt.Fprint(w, "\n\n\n")
	fmt.Fprintf(w, "%s╔%s╗\n", padding, strings.Repeat("═", boxWidth-2))
	fmt.Fprintf(w, "%s║%s║\n", padding, util.CenterText(dialog.Title, boxWidth-2))
	fmt.Fprintf(w, "%s╠%s╣\n", padding, strings.Repeat("═", boxWidth-2))
	fmt.Fprintf(w, "%s║%s║\n", padding, strings.Repeat(" ", boxWidth-2))
	for _, line := range wrapText(dialog.Message, boxWidth-4) {
		fmt.Fprintf(w, "%s║ %s ║\n", padding, util.PadRight(line, boxWidth-4))
	}
	fmt.Fprintf(w, "%s║%s║\n", padding, strings.Repeat(" ", boxWidth-2))
	fmt.Fprintf(w, "%s║%s║\n", padding, util.CenterText("(Y)es / (N)o", boxWidth-2))
	fmt.Fprintf(w, "%s╚%s╝\n", padding, strings.Repeat("═", boxWidth-2))
}

func (td *TerminalDisplay) renderEditPrompt(w io.Writer, edit *model.EditPrompt) {
	fmt.Fprintf(w, "\n  %s %s%s█%s\n", util.Colorize(util.ColorBold, edit.Label+":"), edit.Buffer, util.ColorCyan, util.ColorReset)
	fmt.Fprintln(w, util.Colorize(util.ColorGray, "  enter to save · esc to cancel"))
}

func (td *TerminalDisplay) renderStatusMessage(w io.Writer, message string) {
	fmt.Fprintf(w, "\n  Status: %s%s\n", message, util.ClearLineFromCursor)
}

// lineClearer appends a clear-to-end-of-line before every newline so that
// a shorter line fully replaces the one drawn in the previous frame.
type lineClearer struct {
	w io.Writer
}

func (lc *lineClearer) Write(p []byte) (int, error) {
	_, err := lc.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte(util.ClearLineFromCursor+"\n")))
	return len(p), err
}

// wrapText wraps text to fit within the specified width
func wrapText(text string, width int) []string {
	if text == "" {
		return []string{}
	}

	if util.GetDisplayWidth(text) <= width {
		return []string{text}
	}

	var lines []string
	currentLine := ""

	for _, word := range strings.Fields(text) {
		if currentLine == "" {
			currentLine = word
		} else if util.GetDisplayWidth(currentLine)+1+util.GetDisplayWidth(word) <= width {
			currentLine += " " + word
		} else {
			lines = append(lines, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}
