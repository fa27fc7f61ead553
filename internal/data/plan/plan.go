// Package plan reads sequence definitions from YAML, TOML or JSON files and
// watches them for edits. A plan only carries names and expected times;
// run state is never written back.
package plan

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"

	"github.com/cosmichound/multitimer/internal/core/sequence"
	"github.com/cosmichound/multitimer/internal/core/timer"
	"github.com/cosmichound/multitimer/internal/util"
)

var (
	// ErrUnsupportedFormat is returned for file extensions with no decoder
	ErrUnsupportedFormat = errors.New("unsupported plan format")
	// ErrInvalidExpected is returned when an expected time is negative or unreadable
	ErrInvalidExpected = errors.New("invalid expected time")
)

// Format identifies a plan file encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Plan is a named list of timer definitions
type Plan struct {
	Name   string  `yaml:"name" toml:"name" json:"name"`
	Timers []Entry `yaml:"timers" toml:"timers" json:"timers"`
}

// Entry defines one timer
type Entry struct {
	Name     string   `yaml:"name" toml:"name" json:"name"`
	Expected Expected `yaml:"expected" toml:"expected" json:"expected"`
}

// Expected keeps the raw spelling of an expected time until validation.
// It accepts integers and strings from every format.
type Expected struct {
	Raw string
	Set bool
}

// UnmarshalYAML implements yaml.Unmarshaler
func (e *Expected) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected must be a scalar", value.Line)
	}
	if value.Tag == "!!null" {
		return nil
	}
	e.Raw, e.Set = value.Value, true
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler
func (e *Expected) UnmarshalTOML(data interface{}) error {
	switch v := data.(type) {
	case int64:
		e.Raw = strconv.FormatInt(v, 10)
	case float64:
		e.Raw = wholeSeconds(v)
	case string:
		e.Raw = v
	default:
		return fmt.Errorf("expected must be a number or string, got %T", data)
	}
	e.Set = true
	return nil
}

// UnmarshalJSON implements json.Unmarshaler
func (e *Expected) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	switch {
	case raw == "null":
		return nil
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := sonic.UnmarshalString(raw, &s); err != nil {
			return err
		}
		e.Raw = s
	default:
		// JSON numbers may carry a fraction; keep whole seconds
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			raw = wholeSeconds(f)
		}
		e.Raw = raw
	}
	e.Set = true
	return nil
}

// wholeSeconds truncates f. Values outside the clock range keep their float
// spelling so that ParseClock rejects them.
func wholeSeconds(f float64) string {
	if math.IsNaN(f) || f > util.MaxClockSeconds || f < -util.MaxClockSeconds {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatInt(int64(f), 10)
}

// Seconds resolves the expected time, falling back to def when unset
func (e Expected) Seconds(def int) (int, error) {
	if !e.Set {
		return def, nil
	}
	secs, err := util.ParseClock(e.Raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidExpected, err)
	}
	return secs, nil
}

// FormatFromPath picks a decoder from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and validates a plan file
func Load(path string) (*Plan, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan %s: %w", path, err)
	}

	p, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan %s: %w", path, err)
	}

	util.LogDebug("plan loaded", util.F("path", path), util.F("timers", len(p.Timers)))
	return p, nil
}

// Parse decodes and validates plan data
func Parse(data []byte, format Format) (*Plan, error) {
	var p Plan
	var err error

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &p)
	case FormatTOML:
		_, err = toml.Decode(string(data), &p)
	case FormatJSON:
		err = sonic.Unmarshal(data, &p)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", format, err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks every expected time
func (p *Plan) Validate() error {
	for i, entry := range p.Timers {
		if _, err := entry.Expected.Seconds(0); err != nil {
			return fmt.Errorf("timer %d: %w", i+1, err)
		}
	}
	return nil
}

// Build turns the plan into a fresh sequence with new ids
func (p *Plan) Build(defaultExpected int, newID func() string) sequence.Sequence {
	seq := make(sequence.Sequence, 0, len(p.Timers))
	for _, entry := range p.Timers {
		secs, err := entry.Expected.Seconds(defaultExpected)
		if err != nil {
			// Validate already rejected these; fall back rather than drop the timer
			secs = defaultExpected
		}
		seq = sequence.Insert(seq, timer.New(newID(), secs, entry.Name), nil)
	}
	return seq
}
