// Package shell provides the line-oriented interactive interface. Each line
// is one command against a session controller; the optional live ticker
// advances the running timer in the background.
package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/cosmichound/multitimer/internal/core/constants"
	"github.com/cosmichound/multitimer/internal/core/session"
	"github.com/cosmichound/multitimer/internal/core/timer"
	"github.com/cosmichound/multitimer/internal/util"
)

var (
	okText   = color.New(color.FgGreen).SprintFunc()
	warnText = color.New(color.FgYellow).SprintFunc()
	errText  = color.New(color.FgRed).SprintFunc()
	infoText = color.New(color.FgCyan).SprintFunc()
)

// Shell runs commands against one session
type Shell struct {
	mu         sync.Mutex
	controller *session.Controller
	planName   string
	out        io.Writer
	in         io.Reader

	historyFile  string
	tickInterval time.Duration
}

// Option configures a Shell
type Option func(*Shell)

// WithOutput sends command output to w instead of the readline terminal
func WithOutput(w io.Writer) Option {
	return func(s *Shell) { s.out = w }
}

// WithInput reads commands from r instead of stdin
func WithInput(r io.Reader) Option {
	return func(s *Shell) { s.in = r }
}

// WithPlanName sets the title used by ls and status
func WithPlanName(name string) Option {
	return func(s *Shell) { s.planName = name }
}

// WithHistoryFile keeps readline history across runs
func WithHistoryFile(path string) Option {
	return func(s *Shell) { s.historyFile = path }
}

// WithTickInterval changes how often the live ticker adds one second
func WithTickInterval(d time.Duration) Option {
	return func(s *Shell) { s.tickInterval = d }
}

// New creates a shell for controller
func New(controller *session.Controller, opts ...Option) *Shell {
	s := &Shell{
		controller:   controller,
		in:           os.Stdin,
		tickInterval: constants.TickInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run reads commands until quit, EOF or ctx is done. With live set the
// running timer ticks in the background.
func (s *Shell) Run(ctx context.Context, live bool) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "timer> ",
		HistoryFile:       s.historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "quit",
		HistorySearchFold: true,
		Stdin:             readline.NewCancelableStdin(s.in),
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	closeReadline := sync.OnceFunc(func() { rl.Close() })
	defer closeReadline()

	if s.out == nil {
		s.out = rl.Stdout()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Unblock Readline when ctx is cancelled
	go func() {
		<-ctx.Done()
		closeReadline()
	}()

	if live {
		go s.runTicker(ctx)
	}

	util.LogInfo("Starting shell", util.F("live", live))
	fmt.Fprintln(s.out, infoText("Multitimer shell. Type 'help' for commands."))

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			// EOF
			return nil
		}

		if s.Execute(line) {
			return nil
		}
	}
}

// Execute runs one command line. It returns true when the line asks to quit.
func (s *Shell) Execute(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	s.mu.Lock()
	defer s.mu.Unlock()

	util.LogDebug("shell command", util.F("cmd", cmd), util.F("args", len(args)))

	switch cmd {
	case "help", "?":
		s.printHelp()
	case "add", "a":
		s.cmdAdd(args)
	case "insert", "i":
		s.cmdInsert(args)
	case "rm", "remove":
		s.cmdRemove(args)
	case "start":
		s.cmdStart(args)
	case "next", "n":
		s.cmdNext()
	case "pause", "resume", "toggle", "p":
		s.cmdPauseResume()
	case "reset":
		s.controller.ResetAll()
		fmt.Fprintln(s.out, okText("All timers reset"))
	case "clear":
		s.controller.DeleteAll()
		fmt.Fprintln(s.out, okText("All timers deleted"))
	case "move", "mv":
		s.cmdMove(args)
	case "up":
		s.cmdStep(args, s.controller.MoveUp, "up", "top")
	case "down":
		s.cmdStep(args, s.controller.MoveDown, "down", "bottom")
	case "reorder":
		s.cmdReorder(args)
	case "order":
		s.cmdOrder(args)
	case "expected", "target":
		s.cmdExpected(args)
	case "name", "rename":
		s.cmdName(args)
	case "tick":
		s.cmdTick(args)
	case "ls", "list":
		s.cmdList()
	case "status", "st":
		s.cmdStatus()
	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Bye")
		return true
	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

// runTicker adds one second to the running timer per interval until ctx ends
func (s *Shell) runTicker(ctx context.Context) {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			s.tick(constants.TickDeltaSeconds)
			s.mu.Unlock()
		}
	}
}

// tick advances the running timer and reports when it crosses its target.
// Callers hold mu.
func (s *Shell) tick(delta int) bool {
	before, _ := s.controller.Current()
	if !s.controller.Tick(delta) {
		return false
	}
	after, _ := s.controller.Current()
	if after.IsOverrun && !before.IsOverrun {
		label := timer.Label(after, s.controller.CurrentIndex())
		fmt.Fprintln(s.out, warnText(fmt.Sprintf("%s is over its %s target", label, timer.FormatTime(after.ExpectedTime))))
		util.LogInfo("timer overrun", util.F("id", after.ID))
	}
	return true
}

func (s *Shell) printHelp() {
	fmt.Fprint(s.out, `
Timers:
  add [target] [name...]          - Append a timer (target like 90, 1:30 or 5m)
  insert <pos> [target] [name...] - Insert a timer at a 1-based position
  rm <ref>                        - Remove a timer
  expected <ref> <target>         - Change a timer's target
  name <ref> [text...]            - Rename a timer (no text clears the name)

Running:
  start <ref>                     - Run a timer, stopping any other
  pause | resume | toggle         - Pause or resume; starts the first timer when idle
  next                            - Finish the running timer and start the next
  tick [n]                        - Add n seconds (default 1) to the running timer
  reset                           - Zero every timer and go idle
  clear                           - Delete every timer

Order:
  move <ref> <pos>                - Move a timer to a 1-based position
  up <ref> | down <ref>           - Swap with the neighbour
  reorder <from> <to>             - Move a timer into another timer's slot
  order <ref...>                  - Give the full order

Output:
  ls                              - List timers
  status                          - Summary with totals
  help                            - Show this help
  quit                            - Leave the shell

A <ref> is a 1-based position, a timer id or a unique id prefix.
`)
}
