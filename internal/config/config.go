// Package config loads user settings from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/cosmichound/multitimer/internal/core/constants"
	"github.com/cosmichound/multitimer/internal/util"
)

// Setting keys, shared by the config file, env vars and flag bindings
const (
	KeyDefaultExpected  = "default_expected"
	KeyRefreshPerSecond = "refresh_per_second"
	KeyTimezone         = "timezone"
	KeyTimeFormat       = "time_format"
	KeyLayout           = "layout"
	KeyLogLevel         = "log_level"
	KeyLogFormat        = "log_format"
	KeyPlan             = "plan"

	EnvPrefix = "MULTITIMER"
)

// Settings is the resolved user configuration
type Settings struct {
	DefaultExpected  time.Duration
	RefreshPerSecond float64
	Timezone         string
	TimeFormat       string
	Layout           string
	LogLevel         string
	LogFormat        string
	Plan             string
}

// HomeDir returns ~/.go-multitimer
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".go-multitimer"
	}
	return filepath.Join(home, ".go-multitimer")
}

// DefaultLogFile returns the log file path under HomeDir
func DefaultLogFile() string {
	return filepath.Join(HomeDir(), "logs", "app.log")
}

// NewViper returns a viper instance with defaults and env binding set up.
// configFile may be empty, in which case config.yaml under HomeDir is
// used when present.
func NewViper(configFile string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(HomeDir())
	}
	return v
}

// SetDefaults registers the built-in values
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDefaultExpected, constants.DefaultExpected)
	v.SetDefault(KeyRefreshPerSecond, constants.DefaultRefreshPerSecond)
	v.SetDefault(KeyTimezone, "Local")
	v.SetDefault(KeyTimeFormat, "24h")
	v.SetDefault(KeyLayout, "full")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, string(util.FormatText))
	v.SetDefault(KeyPlan, "")
}

// Load reads the config file, if any, and resolves Settings.
// A missing default config file is not an error; an explicit one is.
func Load(v *viper.Viper) (*Settings, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		util.LogDebug("no config file found, using defaults")
	} else {
		util.LogDebug("config loaded", util.F("file", v.ConfigFileUsed()))
	}

	expected, err := durationValue(v, KeyDefaultExpected)
	if err != nil {
		return nil, err
	}

	s := &Settings{
		DefaultExpected:  expected,
		RefreshPerSecond: v.GetFloat64(KeyRefreshPerSecond),
		Timezone:         v.GetString(KeyTimezone),
		TimeFormat:       v.GetString(KeyTimeFormat),
		Layout:           v.GetString(KeyLayout),
		LogLevel:         v.GetString(KeyLogLevel),
		LogFormat:        v.GetString(KeyLogFormat),
		Plan:             v.GetString(KeyPlan),
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// durationValue accepts the same spellings as plan files: a Go duration,
// MM:SS or whole seconds.
func durationValue(v *viper.Viper, key string) (time.Duration, error) {
	switch raw := v.Get(key).(type) {
	case time.Duration:
		return raw, nil
	case int:
		return time.Duration(raw) * time.Second, nil
	case int64:
		return time.Duration(raw) * time.Second, nil
	case float64:
		return time.Duration(raw) * time.Second, nil
	default:
		secs, err := util.ParseClock(fmt.Sprint(raw))
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", key, err)
		}
		return time.Duration(secs) * time.Second, nil
	}
}

// Validate checks ranges and enumerations
func (s *Settings) Validate() error {
	if s.DefaultExpected < 0 {
		return fmt.Errorf("%s must not be negative, got %s", KeyDefaultExpected, s.DefaultExpected)
	}
	if s.RefreshPerSecond < constants.MinRefreshPerSecond || s.RefreshPerSecond > constants.MaxRefreshPerSecond {
		return fmt.Errorf("%s must be between %.1f and %.1f, got %.2f",
			KeyRefreshPerSecond, constants.MinRefreshPerSecond, constants.MaxRefreshPerSecond, s.RefreshPerSecond)
	}
	if err := util.ValidateTimezone(s.Timezone); err != nil {
		return err
	}
	if s.TimeFormat != "12h" && s.TimeFormat != "24h" {
		return fmt.Errorf("%s must be 12h or 24h, got %q", KeyTimeFormat, s.TimeFormat)
	}
	if s.Layout != "full" && s.Layout != "minimal" {
		return fmt.Errorf("%s must be full or minimal, got %q", KeyLayout, s.Layout)
	}
	if s.LogFormat != string(util.FormatText) && s.LogFormat != string(util.FormatJSON) {
		return fmt.Errorf("%s must be text or json, got %q", KeyLogFormat, s.LogFormat)
	}
	return nil
}

// DefaultExpectedSeconds returns the default target in whole seconds
func (s *Settings) DefaultExpectedSeconds() int {
	return int(s.DefaultExpected / time.Second)
}
