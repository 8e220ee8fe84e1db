package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NamelessFaceless/xivanalysis/internal/report"
)

func loadScenario(t *testing.T, name string) *Scenario {
	t.Helper()
	s, err := LoadScenario(filepath.Join("testdata", "scenarios", name+".yaml"))
	require.NoError(t, err)
	return s
}

// writeScenario writes a scenario file next to the shared recordings.
func writeScenario(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_Scenarios(t *testing.T) {
	scenarios, err := LoadDir(filepath.Join("testdata", "scenarios"))
	require.NoError(t, err)
	require.Len(t, scenarios, 3)

	for _, s := range scenarios {
		s := s
		t.Run(s.Name, func(t *testing.T) {
			result, err := Run(s)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

func TestRunWithGolden_MonkCooldowns(t *testing.T) {
	s := loadScenario(t, "mnk_cooldowns")
	require.NoError(t, RunWithGolden(t, s))
}

func TestRun_ReportIsSealed(t *testing.T) {
	result, err := Run(loadScenario(t, "mnk_cooldowns"))
	require.NoError(t, err)

	id, err := report.ComputeID(result.Report)
	require.NoError(t, err)
	assert.Equal(t, id, result.Report.ID)
}

func TestRun_FailingAssertions(t *testing.T) {
	s := loadScenario(t, "mnk_cooldowns")
	count := 3
	value := int64(1)
	s.Assertions = []Assertion{
		{Type: AssertCooldownUses, Row: "Fists", Uses: []int64{1000}},
		{Type: AssertCooldownUses, Row: "Sprint"},
		{Type: AssertFabricated, Count: &count},
		{Type: AssertSuggestion, ID: "dnc.esprit.overcap"},
		{Type: AssertSeriesFinal, Module: "espritgauge", Value: &value},
		{Type: AssertModuleOrder, Modules: []string{"cooldowns", "precastAction"}},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 6)
	assert.Contains(t, result.Errors[0], "Fists uses [1000]")
	assert.Contains(t, result.Errors[1], "row not found")
	assert.Contains(t, result.Errors[2], "Expected: 3")
	assert.Contains(t, result.Errors[3], "not in report")
	assert.Contains(t, result.Errors[4], "no points")
	assert.Contains(t, result.Errors[5], "modules in order")
}

func TestRun_NoSuggestionFails(t *testing.T) {
	s := loadScenario(t, "dnc_overcap")
	s.Assertions = []Assertion{{Type: AssertNoSuggestion, ID: "dnc.esprit.overcap"}}

	result, err := Run(s)
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "minor suggestion with value 1")
}

func TestRun_UnsupportedJob(t *testing.T) {
	s := loadScenario(t, "mnk_cooldowns")
	s.Job = "BLU"

	_, err := Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported job")
}

func TestLoadScenario_ResolvesPaths(t *testing.T) {
	s := loadScenario(t, "mnk_policy_dir")

	assert.Equal(t, filepath.Join("testdata", "recordings", "mnk.json"), s.Recording)
	assert.Equal(t, filepath.Join("testdata", "policy"), s.PolicyDir)
}

func TestLoadScenario_UnknownField(t *testing.T) {
	path := writeScenario(t, `
name: typo
description: misspelled assertions key
fight: {id: 1, player: 1, job: DNC, end: 1000}
assertion:
  - type: fabricated
    count: 0
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "missing name",
			content: "description: d\nfight: {player: 1, job: DNC}\nassertions: [{type: fabricated, count: 0}]\n",
			want:    "name is required",
		},
		{
			name:    "missing description",
			content: "name: n\nfight: {player: 1, job: DNC}\nassertions: [{type: fabricated, count: 0}]\n",
			want:    "description is required",
		},
		{
			name:    "no recording",
			content: "name: n\ndescription: d\nassertions: [{type: fabricated, count: 0}]\n",
			want:    "recording or inline fight is required",
		},
		{
			name:    "both recordings",
			content: "name: n\ndescription: d\nrecording: x.json\nfight: {player: 1, job: DNC}\nassertions: [{type: fabricated, count: 0}]\n",
			want:    "mutually exclusive",
		},
		{
			name:    "missing recording file",
			content: "name: n\ndescription: d\nrecording: nope.json\nassertions: [{type: fabricated, count: 0}]\n",
			want:    "recording file not found",
		},
		{
			name:    "no assertions",
			content: "name: n\ndescription: d\nfight: {player: 1, job: DNC}\n",
			want:    "assertions list is required",
		},
		{
			name:    "unknown assertion",
			content: "name: n\ndescription: d\nfight: {player: 1, job: DNC}\nassertions: [{type: vibes}]\n",
			want:    `unknown assertion type "vibes"`,
		},
		{
			name:    "count required",
			content: "name: n\ndescription: d\nfight: {player: 1, job: DNC}\nassertions: [{type: data_errors}]\n",
			want:    "count is required",
		},
		{
			name:    "negative count",
			content: "name: n\ndescription: d\nfight: {player: 1, job: DNC}\nassertions: [{type: data_errors, count: -1}]\n",
			want:    "count must be non-negative",
		},
		{
			name:    "series value required",
			content: "name: n\ndescription: d\nfight: {player: 1, job: DNC}\nassertions: [{type: series_final, module: espritgauge}]\n",
			want:    "value is required",
		},
		{
			name:    "short module order",
			content: "name: n\ndescription: d\nfight: {player: 1, job: DNC}\nassertions: [{type: module_order, modules: [a]}]\n",
			want:    "at least two modules",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadDir_Empty(t *testing.T) {
	_, err := LoadDir(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no scenario files")
}

func TestAssertionError_Format(t *testing.T) {
	err := &AssertionError{Type: AssertFabricated, Expected: "2", Actual: "0"}
	assert.Equal(t, "Assertion failed: fabricated\n  Expected: 2\n  Actual: 0", err.Error())
}
