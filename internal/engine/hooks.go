package engine

import (
	"github.com/NamelessFaceless/xivanalysis/internal/event"
	"github.com/NamelessFaceless/xivanalysis/internal/module"
)

// hook is one subscription.
type hook struct {
	id      module.HookID
	handle  string
	filter  module.Filter
	handler module.Handler
	removed bool
}

// hookTable indexes hooks by event type.
//
// INVARIANTS:
//   - per type, hooks are stored in the order AddHook was called; modules
//     init one after another so this is module init order, then
//     registration order
//   - ids are unique and never reused
//   - nothing is added once sealed
type hookTable struct {
	next   module.HookID
	byType map[event.Type][]*hook
	byID   map[module.HookID]*hook
	sealed bool
}

func newHookTable() *hookTable {
	return &hookTable{
		byType: make(map[event.Type][]*hook),
		byID:   make(map[module.HookID]*hook),
	}
}

func (t *hookTable) add(handle string, typ event.Type, filter module.Filter, handler module.Handler) (module.HookID, error) {
	if t.sealed {
		return 0, ErrHooksSealed
	}
	t.next++
	h := &hook{id: t.next, handle: handle, filter: filter, handler: handler}
	t.byType[typ] = append(t.byType[typ], h)
	t.byID[h.id] = h
	return h.id, nil
}

// remove marks a hook dead. Dispatch skips it from the next call on,
// including later hooks of the event currently being dispatched.
func (t *hookTable) remove(id module.HookID) {
	if h, ok := t.byID[id]; ok {
		h.removed = true
		delete(t.byID, id)
	}
}

func (t *hookTable) seal() {
	t.sealed = true
}

// forType returns the hooks subscribed to typ.
func (t *hookTable) forType(typ event.Type) []*hook {
	return t.byType[typ]
}

// count returns the number of live hooks.
func (t *hookTable) count() int {
	return len(t.byID)
}
