// Package fixtures writes plan files for tests in every supported encoding.
package fixtures

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

// Timer is one plan entry. Expected may be an int (seconds), a string
// ("1:30", "5m") or nil to leave it out.
type Timer struct {
	Name     string      `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty"`
	Expected interface{} `yaml:"expected,omitempty" toml:"expected,omitempty" json:"expected,omitempty"`
}

// Plan mirrors the on-disk plan layout
type Plan struct {
	Name   string  `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty"`
	Timers []Timer `yaml:"timers" toml:"timers" json:"timers"`
}

// Workout is a three-timer plan using every expected-time spelling
func Workout() Plan {
	return Plan{
		Name: "Workout",
		Timers: []Timer{
			{Name: "Warm-up", Expected: "5m"},
			{Name: "Intervals", Expected: 90},
			{Name: "Stretch", Expected: "2:30"},
			{Name: "Cool-down"},
		},
	}
}

// PlanGenerator writes plans under a base directory
type PlanGenerator struct {
	baseDir string
}

// NewPlanGenerator creates a generator rooted at baseDir
func NewPlanGenerator(baseDir string) *PlanGenerator {
	return &PlanGenerator{baseDir: baseDir}
}

// GetBaseDir returns the directory files are written to
func (g *PlanGenerator) GetBaseDir() string {
	return g.baseDir
}

// Write encodes p by the extension of fileName and returns the full path
func (g *PlanGenerator) Write(fileName string, p Plan) (string, error) {
	data, err := Encode(p, filepath.Ext(fileName))
	if err != nil {
		return "", err
	}
	return g.WriteRaw(fileName, string(data))
}

// WriteRaw writes content as is, for malformed-input tests
func (g *PlanGenerator) WriteRaw(fileName, content string) (string, error) {
	if err := os.MkdirAll(g.baseDir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(g.baseDir, fileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// Encode renders p for a file extension (.yaml, .yml, .toml, .json)
func Encode(p Plan, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return yaml.Marshal(p)
	case ".toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(p); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case ".json":
		return sonic.ConfigStd.MarshalIndent(p, "", "  ")
	default:
		return nil, fmt.Errorf("no encoder for %q", ext)
	}
}
