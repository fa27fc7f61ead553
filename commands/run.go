package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cosmichound/multitimer/internal/application/run"
)

var (
	// Display related flags
	runTimezone         string
	runTimeFormat       string
	runLayout           string
	runRefreshPerSecond float64

	// Session flags
	runWatch           bool
	runDefaultExpected string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the timer sequence on a live dashboard",
	Long: `Shows the timer sequence full-screen and drives it from the keyboard.

Press space to start, n for the next timer and ? for every key. Timers tick once
per second; the running timer turns red once it passes its target.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Display flags
	runCmd.Flags().StringVar(&runTimezone, "timezone", "Local",
		"Timezone for the header clock (e.g., Asia/Shanghai, UTC)")
	runCmd.Flags().StringVar(&runTimeFormat, "time-format", "24h",
		"Time format (12h or 24h)")
	runCmd.Flags().StringVar(&runLayout, "layout", "full",
		"Dashboard layout (full, minimal)")
	runCmd.Flags().Float64Var(&runRefreshPerSecond, "refresh-per-second", 2,
		"Display refresh rate (0.1-20 Hz)")

	// Session flags
	runCmd.Flags().BoolVar(&runWatch, "watch", false,
		"Reload the plan file when it changes")
	runCmd.Flags().StringVar(&runDefaultExpected, "default-expected", "60s",
		"Target for timers without one (e.g., 90, 1:30, 5m)")
}

func newRunConfig() *run.Config {
	return &run.Config{
		PlanPath:        resolvePlanPath(nil),
		Watch:           runWatch,
		DefaultExpected: settings.DefaultExpectedSeconds(),
		Timezone:        settings.Timezone,
		TimeFormat:      settings.TimeFormat,
		Layout:          settings.Layout,
		UIRefreshRate:   settings.RefreshPerSecond,
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("run needs an interactive terminal; try 'shell' or 'plan' instead")
	}

	orchestrator, err := run.NewOrchestrator(newRunConfig())
	if err != nil {
		return err
	}

	// Set up signal handling
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return orchestrator.Run(ctx)
}
