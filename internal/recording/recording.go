// Package recording loads already-fetched combat recordings from disk.
//
// A recording is a fight header plus its raw events:
//
//	{"fight": {"id": 1, "start": 0, "end": 60000, "player": 1, "job": "DNC", "actors": [...]},
//	 "events": [{"timestamp": 1000, "type": "cast", "sourceID": 1, "abilityID": 15989}, ...]}
//
// JSON and YAML are both accepted; the format follows the file extension.
// Unknown fields are rejected so typos surface early.
package recording

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/NamelessFaceless/xivanalysis/internal/event"
)

// Format is a recording encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Recording is one encounter as read from disk.
type Recording struct {
	Fight  event.Fight   `json:"fight" yaml:"fight"`
	Events []event.Event `json:"events" yaml:"events"`

	// Raw is the file content, used to fingerprint the input.
	Raw []byte `json:"-" yaml:"-"`

	// Path is where the recording was loaded from, if anywhere.
	Path string `json:"-" yaml:"-"`
}

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported recording extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// Load reads and parses the recording at path.
func Load(path string) (*Recording, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recording: %w", err)
	}

	rec, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	rec.Path = path
	return rec, nil
}

// Parse decodes a recording and checks its header.
func Parse(data []byte, format Format) (*Recording, error) {
	var rec Recording
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&rec); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported recording format %q", format)
	}

	if err := validateFight(rec.Fight); err != nil {
		return nil, fmt.Errorf("invalid recording: %w", err)
	}
	rec.Raw = data
	return &rec, nil
}

// validateFight checks the header only. Event problems are data errors,
// reported by the analysis rather than rejected here.
func validateFight(f event.Fight) error {
	if f.PlayerID == 0 {
		return fmt.Errorf("fight.player is required")
	}
	if f.Job == "" {
		return fmt.Errorf("fight.job is required")
	}
	if f.End < f.Start {
		return fmt.Errorf("fight.end (%d) is before fight.start (%d)", f.End, f.Start)
	}

	seen := make(map[int64]bool, len(f.Actors))
	for i, a := range f.Actors {
		if a.ID == 0 {
			return fmt.Errorf("fight.actors[%d]: id is required", i)
		}
		if seen[a.ID] {
			return fmt.Errorf("fight.actors[%d]: duplicate actor id %d", i, a.ID)
		}
		seen[a.ID] = true
	}
	return nil
}
