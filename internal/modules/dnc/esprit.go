package dnc

import (
	"github.com/NamelessFaceless/xivanalysis/internal/data"
	"github.com/NamelessFaceless/xivanalysis/internal/event"
	"github.com/NamelessFaceless/xivanalysis/internal/gauge"
	"github.com/NamelessFaceless/xivanalysis/internal/module"
	"github.com/NamelessFaceless/xivanalysis/internal/modules/core"
	"github.com/NamelessFaceless/xivanalysis/internal/report"
)

// HandleEsprit is the Esprit gauge module handle.
const HandleEsprit = "espritgauge"

// SuggestionOvercap identifies the overcap suggestion.
const SuggestionOvercap = "dnc.esprit.overcap"

// EspritGauge estimates the Esprit gauge from damage, Saber Dance casts,
// Improvisation and deaths, and suggests when overcapping cost Saber Dances.
type EspritGauge struct {
	combatants  *core.Combatants
	suggestions *core.Suggestions
	clock       module.Clock

	gauge     *gauge.Gauge
	generated gauge.Value

	improvisationStart int64
}

// EspritDescriptor describes the espritgauge module.
func EspritDescriptor() module.Descriptor {
	return module.Descriptor{
		Handle:       HandleEsprit,
		Dependencies: []string{core.HandleCombatants, core.HandleSuggestions},
		New:          newEsprit,
	}
}

func newEsprit(h module.Host) (any, error) {
	combatants, err := module.Get[*core.Combatants](h, core.HandleCombatants)
	if err != nil {
		return nil, err
	}
	suggestions, err := module.Get[*core.Suggestions](h, core.HandleSuggestions)
	if err != nil {
		return nil, err
	}

	g := &EspritGauge{
		combatants:         combatants,
		suggestions:        suggestions,
		clock:              h.Clock(),
		gauge:              gauge.New(gauge.Units(maxEsprit)),
		improvisationStart: h.Fight().Start,
	}

	byPlayer := module.Filter{By: module.RolePlayer}
	hooks := []struct {
		typ     event.Type
		filter  module.Filter
		handler module.Handler
	}{
		{event.TypeDamage, byPlayer, g.onDamage},
		{event.TypeCast, module.Filter{By: module.RolePlayer, AbilityID: data.SaberDance.ID}, g.onConsume},
		{event.TypeApplyStatus, module.Filter{By: module.RolePlayer, AbilityID: data.ImprovisationStatus.ID}, g.onImprovisationStart},
		{event.TypeRemoveStatus, module.Filter{By: module.RolePlayer, AbilityID: data.ImprovisationStatus.ID}, g.onImprovisationEnd},
		{event.TypeDeath, module.Filter{To: module.RolePlayer}, g.onDeath},
		{event.TypeComplete, module.Filter{}, g.onComplete},
	}
	for _, hk := range hooks {
		if _, err := h.AddHook(hk.typ, hk.filter, hk.handler); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// generation returns the Esprit a hit of action generates given the
// player's current statuses. Technical Finish and Esprit are mutually
// exclusive generation modes; Technical Finish wins.
func (g *EspritGauge) generation(action int64) gauge.Value {
	multiplier, ok := generationMultipliers[action]
	if !ok {
		return 0
	}
	base := gauge.Units(multiplier * generationAmount)

	var amount gauge.Value
	switch {
	case g.combatants.SelectedHasStatus(data.TechnicalFinishStatus.ID):
		others := int64(g.combatants.PartySize() - 1)
		amount += gauge.Percent(base, ratePercentParty) * gauge.Value(max(others, 0))
		if !finishes[action] {
			amount += gauge.Percent(base, ratePercentSelf)
		}
	case g.combatants.SelectedHasStatus(data.Esprit.ID):
		amount += gauge.Percent(base, ratePercentSelf)
		if g.combatants.SelectedHasStatus(data.ClosedPositionStatus.ID) {
			amount += gauge.Percent(base, ratePercentParty)
		}
	}
	return amount
}

func (g *EspritGauge) onDamage(e event.Event) error {
	if e.Amount == 0 {
		return nil
	}
	amount := g.generation(e.AbilityID)
	g.generated += amount
	if amount > 0 {
		g.gauge.Add(g.clock.Elapsed(), amount)
	}
	return nil
}

func (g *EspritGauge) onConsume(event.Event) error {
	g.gauge.Spend(g.clock.Elapsed(), gauge.Units(saberDanceCost))
	return nil
}

func (g *EspritGauge) onImprovisationStart(e event.Event) error {
	g.improvisationStart = e.Timestamp
	return nil
}

// Ticks may land anywhere inside the buff, so at least one is credited, and
// every party member is assumed to be in range.
func (g *EspritGauge) onImprovisationEnd(e event.Event) error {
	ticks := gauge.Ticks(e.Timestamp-g.improvisationStart, tickFrequency, maxImprovTicks)
	g.gauge.Add(g.clock.Elapsed(), gauge.Value(ticks)*gauge.Units(generationAmount))
	return nil
}

func (g *EspritGauge) onDeath(event.Event) error {
	g.gauge.Reset(g.clock.Elapsed())
	return nil
}

func (g *EspritGauge) onComplete(event.Event) error {
	missed := g.MissedSaberDances()
	g.suggestions.AddTiered(core.TieredSuggestion{
		ID:      SuggestionOvercap,
		Content: overcapContent(),
		Why:     overcapWhy(missed),
		Value:   missed,
		Tiers: map[int64]report.Severity{
			1:  report.SeverityMinor,
			5:  report.SeverityMedium,
			10: report.SeverityMajor,
		},
	})
	return nil
}

// Current returns the estimated gauge value.
func (g *EspritGauge) Current() gauge.Value {
	return g.gauge.Current()
}

// Overcap returns the Esprit lost to the cap.
func (g *EspritGauge) Overcap() gauge.Value {
	return g.gauge.Overcap()
}

// Generated returns the Esprit generated by damage, before clamping.
func (g *EspritGauge) Generated() gauge.Value {
	return g.generated
}

// Consumed returns the number of Saber Dances cast.
func (g *EspritGauge) Consumed() int {
	return g.gauge.Consumed()
}

// MissedSaberDances returns how many Saber Dances the overcap would have
// paid for.
func (g *EspritGauge) MissedSaberDances() int64 {
	return int64(g.gauge.Overcap() / gauge.Units(saberDanceCost))
}

// History returns the gauge samples.
func (g *EspritGauge) History() []gauge.Sample {
	return g.gauge.History()
}

// Contribute adds the gauge series to the report.
func (g *EspritGauge) Contribute(r *report.Report) {
	history := g.gauge.History()
	points := make([]report.Point, len(history))
	for i, s := range history {
		points[i] = report.Point{Elapsed: s.Elapsed, Value: int64(s.Value)}
	}
	r.AddSeries(report.Series{
		Module: HandleEsprit,
		Label:  "Esprit",
		Scale:  gauge.Scale,
		Max:    int64(gauge.Units(maxEsprit)),
		Points: points,
	})
}
