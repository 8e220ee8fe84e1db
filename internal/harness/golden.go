package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/NamelessFaceless/xivanalysis/internal/report"
)

// RunWithGolden runs a scenario and compares its report against
// testdata/golden/{scenario.Name}.golden. Assertion failures fail the test.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	for _, msg := range result.Errors {
		t.Error(msg)
	}

	return AssertGolden(t, scenario.Name, result.Report)
}

// AssertGolden compares the canonical JSON of rep against a golden file.
func AssertGolden(t *testing.T, name string, rep *report.Report) error {
	t.Helper()

	canonical, err := report.MarshalCanonical(rep)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, canonical)

	return nil
}
