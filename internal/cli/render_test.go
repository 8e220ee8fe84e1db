package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NamelessFaceless/xivanalysis/internal/report"
	"github.com/NamelessFaceless/xivanalysis/internal/store"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "0:00"},
		{999, "0:00"},
		{1000, "0:01"},
		{65000, "1:05"},
		{600000, "10:00"},
		{-2500, "-0:02"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatElapsed(tt.ms), "%d ms", tt.ms)
	}
}

func TestFormatPoint(t *testing.T) {
	assert.Equal(t, "50.00", formatPoint(5000, 100))
	assert.Equal(t, "7", formatPoint(7, 1))
	assert.Equal(t, "7", formatPoint(7, 0))
	assert.Equal(t, "7/10", formatPoint(7, 10))
}

func TestRenderReport(t *testing.T) {
	rep := &report.Report{
		ID:         "abc123",
		Fight:      report.FightSummary{ID: 4, Name: "Striking Dummy", Job: "DNC", PlayerID: 1, Duration: 60000},
		Modules:    []string{"combatants", "espritgauge"},
		Fabricated: 2,
		Suggestions: []report.Suggestion{{
			ID:       "dnc.esprit.overcap",
			Severity: report.SeverityMinor,
			Value:    1,
			Content:  "Use Saber Dance before Esprit caps.",
			Why:      "1 Saber Dance lost to overcapped Esprit.",
		}},
		Series: []report.Series{{
			Module: "espritgauge",
			Label:  "Esprit",
			Scale:  100,
			Max:    10000,
			Points: []report.Point{{Elapsed: 0, Value: 0}, {Elapsed: 1000, Value: 10000}, {Elapsed: 2000, Value: 5000}},
		}},
		Cooldowns: []report.Cooldowns{{
			Module: "cooldowns",
			Rows:   []report.CooldownRow{{Name: "Devilment", Actions: []int64{16011}, Uses: []int64{5000, 125000}}},
		}},
		DataErrors:    []report.DataError{{Seq: 6, Type: "bogus", Field: "type", Message: "unknown event type"}},
		HandlerErrors: []report.HandlerError{{Module: "espritgauge", Seq: 3, Type: "cast", Message: "boom"}},
	}

	buf := &bytes.Buffer{}
	renderReport(buf, rep)
	out := buf.String()

	assert.Contains(t, out, "Striking Dummy #4: DNC, player 1, 1:00")
	assert.Contains(t, out, "report abc123")
	assert.Contains(t, out, "modules combatants → espritgauge")
	assert.Contains(t, out, "2 event(s) fabricated")
	assert.Contains(t, out, "[MINOR]")
	assert.Contains(t, out, "1 Saber Dance lost to overcapped Esprit.")
	assert.Contains(t, out, "3 samples, peak 100.00, final 50.00 of 100.00")
	assert.Contains(t, out, "Devilment")
	assert.Contains(t, out, "0:05 2:05")
	assert.Contains(t, out, "event 6 (bogus): type: unknown event type")
	assert.Contains(t, out, "espritgauge at event 3 (cast): boom")
}

func TestRenderReport_Minimal(t *testing.T) {
	buf := &bytes.Buffer{}
	renderReport(buf, &report.Report{ID: "x", Fight: report.FightSummary{ID: 1, Job: "MNK"}})

	out := buf.String()
	assert.Contains(t, out, "fight #1: MNK")
	assert.NotContains(t, out, "Suggestions")
	assert.NotContains(t, out, "Data errors")
	assert.NotContains(t, out, "fabricated")
}

func TestRenderEntries(t *testing.T) {
	buf := &bytes.Buffer{}
	renderEntries(buf, nil)
	assert.Contains(t, buf.String(), "No reports archived.")

	buf.Reset()
	renderEntries(buf, []store.Entry{{
		ReportID:    "83e5cd07973aa66fa03c230b",
		Job:         "MNK",
		FightID:     9,
		FightName:   "Striking Dummy",
		Duration:    30000,
		Suggestions: 0,
	}})
	out := buf.String()
	assert.Contains(t, out, "83e5cd07973a ")
	assert.Contains(t, out, "fight 9")
	assert.Contains(t, out, "0:30")
	assert.Contains(t, out, "0 suggestion(s)")
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abc", shortID("abc"))
	assert.Equal(t, "0123456789ab", shortID("0123456789abcdef"))
}
