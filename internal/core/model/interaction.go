package model

// InteractionState represents the current UI interaction state
type InteractionState struct {
	ShowHelp      bool
	LayoutStyle   int    // 0: Full Dashboard, 1: Minimal
	StatusMessage string // Status message to display
	Selected      int    // 0-based row the cursor keys act on
	ConfirmDialog *ConfirmDialog
	Edit          *EditPrompt
}

// ConfirmDialog represents a confirmation dialog
type ConfirmDialog struct {
	Title     string
	Message   string
	OnConfirm func()
	OnCancel  func()
}

// EditKind selects what an EditPrompt changes
type EditKind int

const (
	EditExpected EditKind = iota
	EditName
	EditAdd
)

// EditPrompt is an in-progress line edit on the live view
type EditPrompt struct {
	Kind    EditKind
	TimerID string // empty for EditAdd
	Label   string
	Buffer  string
}

// DisplayMode represents the current display mode for proper transition handling
type DisplayMode int

const (
	ModeNormal DisplayMode = iota
	ModeHelp
	ModeDialog
)

// DetermineDisplayMode picks the mode for a state. Dialog wins over help.
func DetermineDisplayMode(state InteractionState) DisplayMode {
	if state.ConfirmDialog != nil {
		return ModeDialog
	}
	if state.ShowHelp {
		return ModeHelp
	}
	return ModeNormal
}

// ClampSelection keeps Selected inside [0, n). With no rows it is 0.
func (s *InteractionState) ClampSelection(n int) {
	if s.Selected >= n {
		s.Selected = n - 1
	}
	if s.Selected < 0 {
		s.Selected = 0
	}
}
