package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/NamelessFaceless/xivanalysis/internal/event"
	"github.com/NamelessFaceless/xivanalysis/internal/recording"
)

// Scenario defines one analysis check.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Job overrides the recording's job.
	Job string `yaml:"job,omitempty"`

	// Recording is a recording file path, relative to the scenario file.
	// Mutually exclusive with Fight/Events.
	Recording string `yaml:"recording,omitempty"`

	// Fight and Events inline a recording.
	Fight  *event.Fight  `yaml:"fight,omitempty"`
	Events []event.Event `yaml:"events,omitempty"`

	// PolicyDir holds CUE tables replacing the defaults, relative to the
	// scenario file.
	PolicyDir string `yaml:"policy_dir,omitempty"`

	// Assertions validate the report.
	Assertions []Assertion `yaml:"assertions"`
}

// Assertion validates one property of the report.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// ID is the suggestion id (suggestion, no_suggestion).
	ID string `yaml:"id,omitempty"`

	// Severity is the expected suggestion severity (suggestion).
	Severity string `yaml:"severity,omitempty"`

	// Value is the expected suggestion value, or the final fixed-point
	// series value (series_final).
	Value *int64 `yaml:"value,omitempty"`

	// Module names the contributing module (series_final, cooldown_uses).
	Module string `yaml:"module,omitempty"`

	// Row is the cooldown row name (cooldown_uses).
	Row string `yaml:"row,omitempty"`

	// Uses are the expected elapsed times of a cooldown row.
	Uses []int64 `yaml:"uses,omitempty"`

	// Count is the expected number (fabricated, data_errors, handler_errors).
	Count *int `yaml:"count,omitempty"`

	// Modules is an expected relative init order (module_order).
	Modules []string `yaml:"modules,omitempty"`
}

// Assertion type constants.
const (
	AssertSuggestion    = "suggestion"
	AssertNoSuggestion  = "no_suggestion"
	AssertSeriesFinal   = "series_final"
	AssertCooldownUses  = "cooldown_uses"
	AssertFabricated    = "fabricated"
	AssertDataErrors    = "data_errors"
	AssertHandlerErrors = "handler_errors"
	AssertModuleOrder   = "module_order"
)

// LoadScenario reads and parses a scenario YAML file. Relative recording
// and policy paths are resolved against the scenario's directory.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assertion:" vs "assertions:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	base := filepath.Dir(path)
	if scenario.Recording != "" && !filepath.IsAbs(scenario.Recording) {
		scenario.Recording = filepath.Join(base, scenario.Recording)
	}
	if scenario.PolicyDir != "" && !filepath.IsAbs(scenario.PolicyDir) {
		scenario.PolicyDir = filepath.Join(base, scenario.PolicyDir)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// LoadDir loads every *.yaml scenario in dir, sorted by file name.
func LoadDir(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenario files found in %s", dir)
	}

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(p), err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// load returns the scenario's recording.
func (s *Scenario) load() (*recording.Recording, error) {
	if s.Recording != "" {
		return recording.Load(s.Recording)
	}
	return &recording.Recording{Fight: *s.Fight, Events: s.Events}, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	inline := s.Fight != nil || len(s.Events) > 0
	switch {
	case s.Recording != "" && inline:
		return fmt.Errorf("recording and inline fight/events are mutually exclusive")
	case s.Recording == "" && s.Fight == nil:
		return fmt.Errorf("recording or inline fight is required")
	case s.Recording != "":
		if _, err := os.Stat(s.Recording); os.IsNotExist(err) {
			return fmt.Errorf("recording file not found: %s", s.Recording)
		}
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, assertion := range s.Assertions {
		i, assertion := i, assertion
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertSuggestion, AssertNoSuggestion:
		if a.ID == "" {
			return fmt.Errorf("assertions[%d]: id is required for %s", index, a.Type)
		}
	case AssertSeriesFinal:
		if a.Module == "" {
			return fmt.Errorf("assertions[%d]: module is required for series_final", index)
		}
		if a.Value == nil {
			return fmt.Errorf("assertions[%d]: value is required for series_final", index)
		}
	case AssertCooldownUses:
		if a.Row == "" {
			return fmt.Errorf("assertions[%d]: row is required for cooldown_uses", index)
		}
	case AssertFabricated, AssertDataErrors, AssertHandlerErrors:
		if a.Count == nil {
			return fmt.Errorf("assertions[%d]: count is required for %s", index, a.Type)
		}
		if *a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for %s", index, a.Type)
		}
	case AssertModuleOrder:
		if len(a.Modules) < 2 {
			return fmt.Errorf("assertions[%d]: module_order needs at least two modules", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
