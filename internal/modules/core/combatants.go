package core

import (
	"slices"

	"github.com/NamelessFaceless/xivanalysis/internal/event"
	"github.com/NamelessFaceless/xivanalysis/internal/module"
)

// Combatants tracks the statuses active on every actor.
//
// Its hooks run before those of any module depending on it, so during
// dispatch of an event at time T the accessors reflect every status event
// up to and including T that sorted earlier.
type Combatants struct {
	fight  event.Fight
	active map[int64]map[int64]struct{}
}

// CombatantsDescriptor describes the combatants module.
func CombatantsDescriptor() module.Descriptor {
	return module.Descriptor{
		Handle: HandleCombatants,
		New:    newCombatants,
	}
}

func newCombatants(h module.Host) (any, error) {
	c := &Combatants{
		fight:  h.Fight(),
		active: make(map[int64]map[int64]struct{}),
	}

	hooks := []struct {
		typ     event.Type
		handler module.Handler
	}{
		{event.TypeApplyStatus, c.onGain},
		{event.TypeApplyStatusStack, c.onGain},
		{event.TypeRefreshStatus, c.onGain},
		{event.TypeRemoveStatus, c.onLose},
		{event.TypeDeath, c.onDeath},
	}
	for _, hk := range hooks {
		if _, err := h.AddHook(hk.typ, module.Filter{}, hk.handler); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Combatants) onGain(e event.Event) error {
	statuses, ok := c.active[e.TargetID]
	if !ok {
		statuses = make(map[int64]struct{})
		c.active[e.TargetID] = statuses
	}
	statuses[e.AbilityID] = struct{}{}
	return nil
}

func (c *Combatants) onLose(e event.Event) error {
	delete(c.active[e.TargetID], e.AbilityID)
	return nil
}

func (c *Combatants) onDeath(e event.Event) error {
	delete(c.active, e.TargetID)
	return nil
}

// HasStatus reports whether actor currently holds status.
func (c *Combatants) HasStatus(actor, status int64) bool {
	_, ok := c.active[actor][status]
	return ok
}

// SelectedHasStatus reports whether the analysed player holds status.
func (c *Combatants) SelectedHasStatus(status int64) bool {
	return c.HasStatus(c.fight.PlayerID, status)
}

// Statuses returns the statuses actor holds, sorted.
func (c *Combatants) Statuses(actor int64) []int64 {
	out := make([]int64, 0, len(c.active[actor]))
	for id := range c.active[actor] {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// PartySize returns the number of player characters in the fight.
func (c *Combatants) PartySize() int {
	return c.fight.PartySize()
}
