package report

// Severity ranks how much a suggestion matters.
type Severity string

const (
	SeverityMinor  Severity = "minor"
	SeverityMedium Severity = "medium"
	SeverityMajor  Severity = "major"
	SeverityMorbid Severity = "morbid"
)

var severityRank = map[Severity]int{
	SeverityMinor:  1,
	SeverityMedium: 2,
	SeverityMajor:  3,
	SeverityMorbid: 4,
}

// Rank orders severities; unknown severities rank 0.
func (s Severity) Rank() int {
	return severityRank[s]
}

// Valid reports whether s is a declared severity.
func (s Severity) Valid() bool {
	return s.Rank() > 0
}

// Suggestion is a single piece of feedback for the analysed player.
type Suggestion struct {
	ID       string   `json:"id"`
	Severity Severity `json:"severity"`
	Value    int64    `json:"value"`
	Content  string   `json:"content,omitempty"`
	Why      string   `json:"why"`
}

// Point is one sample of a series. Value is fixed-point, see Series.Scale.
type Point struct {
	Elapsed int64 `json:"elapsed"`
	Value   int64 `json:"value"`
}

// Series is a module's time series for the rendering collaborator.
// The real value of a point is Value/Scale.
type Series struct {
	Module string  `json:"module"`
	Label  string  `json:"label"`
	Scale  int64   `json:"scale"`
	Max    int64   `json:"max,omitempty"`
	Points []Point `json:"points,omitempty"`
}

// CooldownRow is one entry of a cooldown table, in policy order.
type CooldownRow struct {
	Name    string  `json:"name"`
	Actions []int64 `json:"actions"`
	Uses    []int64 `json:"uses,omitempty"` // Elapsed ms of each use
}

// Cooldowns is the cooldown usage table of a fight.
type Cooldowns struct {
	Module string        `json:"module"`
	Rows   []CooldownRow `json:"rows,omitempty"`
}

// DataError records a malformed event excluded from analysis.
type DataError struct {
	Seq     int64  `json:"seq"`
	Type    string `json:"type"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// HandlerError records a hook handler that failed during dispatch.
type HandlerError struct {
	Module  string `json:"module"`
	Seq     int64  `json:"seq"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// FightSummary identifies the analysed encounter.
type FightSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name,omitempty"`
	Job      string `json:"job"`
	PlayerID int64  `json:"player"`
	Duration int64  `json:"duration"`
}

// Report is the full output of one analysis.
type Report struct {
	ID            string         `json:"id,omitempty"`
	Fight         FightSummary   `json:"fight"`
	Modules       []string       `json:"modules"`
	Fabricated    int64          `json:"fabricated"`
	Suggestions   []Suggestion   `json:"suggestions,omitempty"`
	Series        []Series       `json:"series,omitempty"`
	Cooldowns     []Cooldowns    `json:"cooldowns,omitempty"`
	DataErrors    []DataError    `json:"data_errors,omitempty"`
	HandlerErrors []HandlerError `json:"handler_errors,omitempty"`
}

// AddSuggestion appends a suggestion.
func (r *Report) AddSuggestion(s Suggestion) {
	r.Suggestions = append(r.Suggestions, s)
}

// AddSeries appends a series.
func (r *Report) AddSeries(s Series) {
	r.Series = append(r.Series, s)
}

// AddCooldowns appends a cooldown table.
func (r *Report) AddCooldowns(c Cooldowns) {
	r.Cooldowns = append(r.Cooldowns, c)
}

// SeriesFor returns the series a module contributed, if any.
func (r *Report) SeriesFor(module string) (Series, bool) {
	for _, s := range r.Series {
		if s.Module == module {
			return s, true
		}
	}
	return Series{}, false
}

// SuggestionFor returns the suggestion with the given id, if any.
func (r *Report) SuggestionFor(id string) (Suggestion, bool) {
	for _, s := range r.Suggestions {
		if s.ID == id {
			return s, true
		}
	}
	return Suggestion{}, false
}
