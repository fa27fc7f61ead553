package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	s, err := Load(NewViper(""))
	require.NoError(t, err)

	assert.Equal(t, 60*time.Second, s.DefaultExpected)
	assert.Equal(t, 60, s.DefaultExpectedSeconds())
	assert.Equal(t, 2.0, s.RefreshPerSecond)
	assert.Equal(t, "Local", s.Timezone)
	assert.Equal(t, "24h", s.TimeFormat)
	assert.Equal(t, "full", s.Layout)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "text", s.LogFormat)
	assert.Empty(t, s.Plan)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
default_expected: 2m30s
refresh_per_second: 4
timezone: UTC
time_format: 12h
layout: minimal
log_format: json
plan: /tmp/plan.yaml
`)

	s, err := Load(NewViper(path))
	require.NoError(t, err)

	assert.Equal(t, 150*time.Second, s.DefaultExpected)
	assert.Equal(t, 4.0, s.RefreshPerSecond)
	assert.Equal(t, "UTC", s.Timezone)
	assert.Equal(t, "12h", s.TimeFormat)
	assert.Equal(t, "minimal", s.Layout)
	assert.Equal(t, "json", s.LogFormat)
	assert.Equal(t, "/tmp/plan.yaml", s.Plan)
}

func TestLoad_ExpectedSpellings(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{name: "seconds", value: "90", expected: 90 * time.Second},
		{name: "clock", value: `"1:30"`, expected: 90 * time.Second},
		{name: "duration", value: "5m", expected: 5 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Load(NewViper(writeConfig(t, "default_expected: "+tt.value+"\n")))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s.DefaultExpected)
		})
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "layout: full\n")
	t.Setenv("MULTITIMER_LAYOUT", "minimal")

	s, err := Load(NewViper(path))
	require.NoError(t, err)
	assert.Equal(t, "minimal", s.Layout)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "refresh too high", content: "refresh_per_second: 50\n"},
		{name: "bad timezone", content: "timezone: Mars/Base\n"},
		{name: "bad layout", content: "layout: huge\n"},
		{name: "bad time format", content: "time_format: 36h\n"},
		{name: "bad expected", content: "default_expected: later\n"},
		{name: "bad log format", content: "log_format: xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(NewViper(writeConfig(t, tt.content)))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(NewViper(filepath.Join(t.TempDir(), "nope.yaml")))
	assert.Error(t, err)
}
