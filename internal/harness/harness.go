package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/NamelessFaceless/xivanalysis/internal/analysis"
	"github.com/NamelessFaceless/xivanalysis/internal/policy"
	"github.com/NamelessFaceless/xivanalysis/internal/report"
)

// Result is the outcome of a scenario.
type Result struct {
	// Pass indicates every assertion held.
	Pass bool `json:"pass"`

	// Errors contains assertion failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Report is the sealed report the assertions ran against.
	Report *report.Report `json:"report"`
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Run analyses the scenario's recording and evaluates its assertions.
//
// An error means the scenario could not run at all (bad recording, bad
// policy, unsupported job). Failed assertions are reported in the Result.
func Run(scenario *Scenario) (*Result, error) {
	rec, err := scenario.load()
	if err != nil {
		return nil, fmt.Errorf("failed to load recording: %w", err)
	}

	tables, err := policy.Load(scenario.PolicyDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	res, err := analysis.Analyze(rec, analysis.Options{
		Job:    scenario.Job,
		Tables: tables,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to analyse: %w", err)
	}

	result := &Result{Pass: true, Errors: []string{}, Report: res.Report}
	for _, msg := range EvaluateAssertions(res.Report, scenario.Assertions) {
		result.AddError(msg)
	}
	return result, nil
}
