package harness

import (
	"fmt"
	"slices"
	"strings"

	"github.com/NamelessFaceless/xivanalysis/internal/modules/core"
	"github.com/NamelessFaceless/xivanalysis/internal/report"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s", e.Actual)
	return buf.String()
}

// EvaluateAssertions runs every assertion against the report and returns
// the failure messages, in assertion order.
func EvaluateAssertions(rep *report.Report, assertions []Assertion) []string {
	var failures []string
	for i, a := range assertions {
		if err := evaluate(rep, a); err != nil {
			failures = append(failures, fmt.Sprintf("assertions[%d]: %v", i, err))
		}
	}
	return failures
}

func evaluate(rep *report.Report, a Assertion) error {
	switch a.Type {
	case AssertSuggestion:
		return assertSuggestion(rep, a)
	case AssertNoSuggestion:
		if s, ok := rep.SuggestionFor(a.ID); ok {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("no suggestion %s", a.ID),
				Actual:   fmt.Sprintf("%s suggestion with value %d", s.Severity, s.Value),
			}
		}
		return nil
	case AssertSeriesFinal:
		return assertSeriesFinal(rep, a)
	case AssertCooldownUses:
		return assertCooldownUses(rep, a)
	case AssertFabricated:
		return assertCount(a, int(rep.Fabricated))
	case AssertDataErrors:
		return assertCount(a, len(rep.DataErrors))
	case AssertHandlerErrors:
		return assertCount(a, len(rep.HandlerErrors))
	case AssertModuleOrder:
		return assertModuleOrder(rep.Modules, a)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

func assertSuggestion(rep *report.Report, a Assertion) error {
	s, ok := rep.SuggestionFor(a.ID)
	if !ok {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("suggestion %s", a.ID),
			Actual:   fmt.Sprintf("not in report (have %d suggestions)", len(rep.Suggestions)),
		}
	}
	if a.Severity != "" && string(s.Severity) != a.Severity {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("%s severity %s", a.ID, a.Severity),
			Actual:   string(s.Severity),
		}
	}
	if a.Value != nil && s.Value != *a.Value {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("%s value %d", a.ID, *a.Value),
			Actual:   fmt.Sprintf("%d", s.Value),
		}
	}
	return nil
}

func assertSeriesFinal(rep *report.Report, a Assertion) error {
	series, ok := rep.SeriesFor(a.Module)
	if !ok || len(series.Points) == 0 {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("series from %s", a.Module),
			Actual:   "no points",
		}
	}
	last := series.Points[len(series.Points)-1]
	if last.Value != *a.Value {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("%s ends at %d", a.Module, *a.Value),
			Actual:   fmt.Sprintf("%d at %dms", last.Value, last.Elapsed),
		}
	}
	return nil
}

func assertCooldownUses(rep *report.Report, a Assertion) error {
	module := a.Module
	if module == "" {
		module = core.HandleCooldowns
	}

	for _, table := range rep.Cooldowns {
		if table.Module != module {
			continue
		}
		for _, row := range table.Rows {
			if row.Name != a.Row {
				continue
			}
			if !slices.Equal(row.Uses, a.Uses) {
				return &AssertionError{
					Type:     a.Type,
					Expected: fmt.Sprintf("%s uses %v", a.Row, a.Uses),
					Actual:   fmt.Sprintf("%v", row.Uses),
				}
			}
			return nil
		}
	}
	return &AssertionError{
		Type:     a.Type,
		Expected: fmt.Sprintf("row %s in %s table", a.Row, module),
		Actual:   "row not found",
	}
}

func assertCount(a Assertion, actual int) error {
	if actual != *a.Count {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("%d", *a.Count),
			Actual:   fmt.Sprintf("%d", actual),
		}
	}
	return nil
}

// assertModuleOrder checks the modules appear in the given relative order.
// Other modules may appear in between.
func assertModuleOrder(order []string, a Assertion) error {
	prev := -1
	for _, m := range a.Modules {
		pos := slices.Index(order, m)
		if pos < 0 {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("modules present: %v", a.Modules),
				Actual:   fmt.Sprintf("missing module: %s", m),
			}
		}
		if pos <= prev {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("modules in order: %v", a.Modules),
				Actual:   fmt.Sprintf("init order was %v", order),
			}
		}
		prev = pos
	}
	return nil
}
