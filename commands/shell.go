package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cosmichound/multitimer/internal/application/shell"
	"github.com/cosmichound/multitimer/internal/config"
	"github.com/cosmichound/multitimer/internal/core/session"
	"github.com/cosmichound/multitimer/internal/data/plan"
)

var shellLive bool

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Drive the timer sequence from a command prompt",
	Long: `Starts an interactive prompt with history. Each line is one command, for
example 'add 5m warm up', 'start 1', 'next' or 'ls'. Type 'help' for the list.

Without --live the clock only moves with the 'tick' command.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)

	shellCmd.Flags().BoolVar(&shellLive, "live", false,
		"Tick the running timer once per second in the background")
}

// newShell builds a shell, seeded from the plan file when one is set
func newShell() (*shell.Shell, error) {
	defaultExpected := settings.DefaultExpectedSeconds()
	controller := session.NewController(session.WithDefaultExpected(defaultExpected))

	opts := []shell.Option{
		shell.WithHistoryFile(filepath.Join(config.HomeDir(), "shell_history")),
	}

	if path := resolvePlanPath(nil); path != "" {
		p, err := plan.Load(path)
		if err != nil {
			return nil, err
		}
		controller.Load(p.Build(defaultExpected, uuid.NewString))
		opts = append(opts, shell.WithPlanName(p.Name))
	}

	return shell.New(controller, opts...), nil
}

func runShell(cmd *cobra.Command, args []string) error {
	if err := ensureDir(config.HomeDir()); err != nil {
		return fmt.Errorf("failed to create %s: %w", config.HomeDir(), err)
	}

	sh, err := newShell()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer stop()

	return sh.Run(ctx, shellLive)
}
