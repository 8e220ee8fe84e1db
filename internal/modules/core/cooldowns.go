package core

import (
	"fmt"
	"slices"

	"github.com/NamelessFaceless/xivanalysis/internal/data"
	"github.com/NamelessFaceless/xivanalysis/internal/event"
	"github.com/NamelessFaceless/xivanalysis/internal/module"
	"github.com/NamelessFaceless/xivanalysis/internal/policy"
	"github.com/NamelessFaceless/xivanalysis/internal/report"
)

// Cooldowns records when the player used the actions of its policy table.
type Cooldowns struct {
	clock  module.Clock
	groups []policy.CooldownGroup
	uses   map[int64][]int64 // action id → elapsed ms of each cast
}

// CooldownsDescriptor describes the cooldowns module with the given
// ordering. Jobs with their own ordering override the descriptor.
func CooldownsDescriptor(order []policy.CooldownGroup) module.Descriptor {
	return module.Descriptor{
		Handle: HandleCooldowns,
		Policy: order,
		New:    newCooldowns,
	}
}

func newCooldowns(h module.Host) (any, error) {
	groups, ok := h.Policy().([]policy.CooldownGroup)
	if !ok && h.Policy() != nil {
		return nil, fmt.Errorf("cooldowns policy is %T, want []policy.CooldownGroup", h.Policy())
	}

	c := &Cooldowns{
		clock:  h.Clock(),
		groups: groups,
		uses:   make(map[int64][]int64),
	}

	var tracked []int64
	for _, g := range groups {
		tracked = append(tracked, g.Actions...)
	}
	if len(tracked) == 0 {
		return c, nil
	}

	_, err := h.AddHook(event.TypeCast, module.Filter{By: module.RolePlayer, AnyOf: tracked}, c.onCast)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Cooldowns) onCast(e event.Event) error {
	c.uses[e.AbilityID] = append(c.uses[e.AbilityID], c.clock.Elapsed())
	return nil
}

// Uses returns the elapsed times at which action was cast.
func (c *Cooldowns) Uses(action int64) []int64 {
	return append([]int64(nil), c.uses[action]...)
}

// Rows builds the table in policy order. Merged groups produce one row;
// other groups produce one row per action.
func (c *Cooldowns) Rows() []report.CooldownRow {
	var rows []report.CooldownRow
	for _, g := range c.groups {
		if g.Merge || len(g.Actions) == 1 {
			row := report.CooldownRow{Name: g.Name, Actions: append([]int64(nil), g.Actions...)}
			for _, id := range g.Actions {
				row.Uses = append(row.Uses, c.uses[id]...)
			}
			slices.Sort(row.Uses)
			rows = append(rows, row)
			continue
		}
		for _, id := range g.Actions {
			rows = append(rows, report.CooldownRow{
				Name:    data.ActionName(id),
				Actions: []int64{id},
				Uses:    append([]int64(nil), c.uses[id]...),
			})
		}
	}
	return rows
}

// Contribute implements module.Contributor.
func (c *Cooldowns) Contribute(r *report.Report) {
	r.AddCooldowns(report.Cooldowns{Module: HandleCooldowns, Rows: c.Rows()})
}
