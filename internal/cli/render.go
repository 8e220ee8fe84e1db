package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/NamelessFaceless/xivanalysis/internal/gauge"
	"github.com/NamelessFaceless/xivanalysis/internal/report"
	"github.com/NamelessFaceless/xivanalysis/internal/store"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))

	severityStyles = map[report.Severity]lipgloss.Style{
		report.SeverityMinor:  lipgloss.NewStyle().Foreground(lipgloss.Color("#3399FF")),
		report.SeverityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAA00")).Bold(true),
		report.SeverityMajor:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true),
		report.SeverityMorbid: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#AA0000")).Bold(true),
	}
)

// formatElapsed renders ms as m:ss.
func formatElapsed(ms int64) string {
	sign := ""
	if ms < 0 {
		sign = "-"
		ms = -ms
	}
	s := ms / 1000
	return fmt.Sprintf("%s%d:%02d", sign, s/60, s%60)
}

// formatPoint renders a fixed-point series value.
func formatPoint(v, scale int64) string {
	if scale == gauge.Scale {
		return gauge.Value(v).String()
	}
	if scale <= 1 {
		return fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("%d/%d", v, scale)
}

// renderReport writes a human-readable report.
func renderReport(w io.Writer, rep *report.Report) {
	f := rep.Fight
	name := f.Name
	if name == "" {
		name = "fight"
	}
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s #%d: %s, player %d, %s", name, f.ID, f.Job, f.PlayerID, formatElapsed(f.Duration))))
	fmt.Fprintln(w, mutedStyle.Render("report "+rep.ID))
	fmt.Fprintln(w, mutedStyle.Render("modules "+strings.Join(rep.Modules, " → ")))
	if rep.Fabricated > 0 {
		fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d event(s) fabricated during normalisation", rep.Fabricated)))
	}

	if len(rep.Suggestions) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headingStyle.Render("Suggestions"))
		for _, s := range rep.Suggestions {
			label := severityStyles[s.Severity].Render(fmt.Sprintf("[%s]", strings.ToUpper(string(s.Severity))))
			fmt.Fprintf(w, "  %s %s\n", label, s.Why)
			if s.Content != "" {
				fmt.Fprintf(w, "    %s\n", mutedStyle.Render(s.Content))
			}
		}
	}

	for _, series := range rep.Series {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headingStyle.Render(series.Label))
		peak := int64(0)
		for _, p := range series.Points {
			peak = max(peak, p.Value)
		}
		final := int64(0)
		if n := len(series.Points); n > 0 {
			final = series.Points[n-1].Value
		}
		fmt.Fprintf(w, "  %d samples, peak %s, final %s", len(series.Points), formatPoint(peak, series.Scale), formatPoint(final, series.Scale))
		if series.Max > 0 {
			fmt.Fprintf(w, " of %s", formatPoint(series.Max, series.Scale))
		}
		fmt.Fprintln(w)
	}

	for _, table := range rep.Cooldowns {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headingStyle.Render("Cooldowns"))
		width := 0
		for _, row := range table.Rows {
			width = max(width, len(row.Name))
		}
		for _, row := range table.Rows {
			uses := make([]string, len(row.Uses))
			for i, u := range row.Uses {
				uses[i] = formatElapsed(u)
			}
			fmt.Fprintf(w, "  %-*s %2d  %s\n", width, row.Name, len(row.Uses), mutedStyle.Render(strings.Join(uses, " ")))
		}
	}

	if len(rep.DataErrors) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headingStyle.Render("Data errors"))
		for _, de := range rep.DataErrors {
			fmt.Fprintf(w, "  %s\n", errorStyle.Render(fmt.Sprintf("event %d (%s): %s: %s", de.Seq, de.Type, de.Field, de.Message)))
		}
	}
	if len(rep.HandlerErrors) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headingStyle.Render("Module failures"))
		for _, he := range rep.HandlerErrors {
			fmt.Fprintf(w, "  %s\n", errorStyle.Render(fmt.Sprintf("%s at event %d (%s): %s", he.Module, he.Seq, he.Type, he.Message)))
		}
	}
}

// renderEntries writes an archive listing.
func renderEntries(w io.Writer, entries []store.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No reports archived.")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s  %-4s fight %-6d %s  %d suggestion(s)  %s\n",
			shortID(e.ReportID), e.Job, e.FightID, formatElapsed(e.Duration), e.Suggestions, mutedStyle.Render(e.FightName))
	}
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
