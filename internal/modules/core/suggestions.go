package core

import (
	"slices"
	"sort"

	"github.com/NamelessFaceless/xivanalysis/internal/module"
	"github.com/NamelessFaceless/xivanalysis/internal/report"
)

// Suggestions collects feedback from other modules.
type Suggestions struct {
	items []report.Suggestion
}

// SuggestionsDescriptor describes the suggestions module.
func SuggestionsDescriptor() module.Descriptor {
	return module.Descriptor{
		Handle: HandleSuggestions,
		New: func(module.Host) (any, error) {
			return &Suggestions{}, nil
		},
	}
}

// Add records a suggestion.
func (s *Suggestions) Add(sg report.Suggestion) {
	s.items = append(s.items, sg)
}

// AddTiered resolves ts and records it. Returns false when the value falls
// below every tier and nothing was recorded.
func (s *Suggestions) AddTiered(ts TieredSuggestion) bool {
	sg, ok := ts.Resolve()
	if ok {
		s.Add(sg)
	}
	return ok
}

// All returns the recorded suggestions in the order they were added.
func (s *Suggestions) All() []report.Suggestion {
	return slices.Clone(s.items)
}

// Contribute adds the suggestions to the report, most severe first.
func (s *Suggestions) Contribute(r *report.Report) {
	sorted := slices.Clone(s.items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Severity.Rank() > sorted[j].Severity.Rank()
	})
	for _, sg := range sorted {
		r.AddSuggestion(sg)
	}
}

// TieredSuggestion picks its severity by comparing Value against ascending
// thresholds.
type TieredSuggestion struct {
	ID      string
	Content string
	Why     string
	Value   int64

	// Tiers maps a threshold to the severity used when Value reaches it.
	Tiers map[int64]report.Severity
}

// Resolve returns the suggestion at the highest tier whose threshold is at
// most Value. Returns false when Value is below every threshold.
func (t TieredSuggestion) Resolve() (report.Suggestion, bool) {
	thresholds := make([]int64, 0, len(t.Tiers))
	for th := range t.Tiers {
		thresholds = append(thresholds, th)
	}
	slices.Sort(thresholds)

	var severity report.Severity
	for _, th := range thresholds {
		if t.Value < th {
			break
		}
		severity = t.Tiers[th]
	}
	if severity == "" {
		return report.Suggestion{}, false
	}

	return report.Suggestion{
		ID:       t.ID,
		Severity: severity,
		Value:    t.Value,
		Content:  t.Content,
		Why:      t.Why,
	}, true
}
