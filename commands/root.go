package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cosmichound/multitimer/internal/config"
	"github.com/cosmichound/multitimer/internal/util"
)

var (
	// Logging related
	debug     bool
	logFormat string

	// Input files
	configFile string
	planFile   string

	// Resolved in PersistentPreRunE
	settings *config.Settings

	rootCmd = &cobra.Command{
		Use:   "go-multitimer [command]",
		Short: "Sequential timers in the terminal",
		Long: `go-multitimer runs an ordered list of count-up timers, each with a target
time. Starting the next timer stops the previous one, and timers that run past
their target are flagged as overrun.

Examples:
  go-multitimer run                                  # Live dashboard with no timers
  go-multitimer run -f workout.yaml                  # Load a plan file
  go-multitimer run -f workout.yaml --watch          # Reload the plan when it changes
  go-multitimer shell --live                         # Line-oriented shell with a ticking clock
  go-multitimer plan workout.yaml -o json            # Print a plan as JSON`,
		SilenceUsage:       true,
		PersistentPreRunE:  setup,
		PersistentPostRunE: teardown,
	}
)

// flag name -> settings key, for flags that override the settings file
var flagKeys = map[string]string{
	"plan":               config.KeyPlan,
	"log-format":         config.KeyLogFormat,
	"timezone":           config.KeyTimezone,
	"time-format":        config.KeyTimeFormat,
	"layout":             config.KeyLayout,
	"refresh-per-second": config.KeyRefreshPerSecond,
	"default-expected":   config.KeyDefaultExpected,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"Settings file (default ~/.go-multitimer/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&planFile, "plan", "f", "",
		"Plan file to load (yaml, toml or json)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"Log format (text, json)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

// setup resolves settings (defaults < file < env < flags) and starts logging
func setup(cmd *cobra.Command, args []string) error {
	if configFile != "" {
		configFile = expandPath(configFile)
	}
	v := config.NewViper(configFile)
	if err := bindFlags(v, cmd); err != nil {
		return err
	}

	s, err := config.Load(v)
	if err != nil {
		return err
	}
	settings = s

	// Determine log level based on debug flag
	logLevel := settings.LogLevel
	if debug {
		logLevel = "debug"
	}

	logFile := config.DefaultLogFile()
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	if err := util.InitLogger(util.LoggerOptions{
		Level:   logLevel,
		File:    logFile,
		Format:  util.ParseLogFormat(settings.LogFormat),
		Console: debug,
	}); err != nil {
		return err
	}

	util.LogDebug("settings resolved",
		util.F("command", cmd.Name()),
		util.F("config", v.ConfigFileUsed()),
		util.F("plan", settings.Plan))
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	return util.CloseLogger()
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", name, err)
		}
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// resolvePlanPath prefers an explicit argument over --plan and settings
func resolvePlanPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return expandPath(args[0])
	}
	if settings != nil && settings.Plan != "" {
		return expandPath(settings.Plan)
	}
	return ""
}
