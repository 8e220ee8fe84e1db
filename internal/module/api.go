package module

import (
	"fmt"
	"log/slog"

	"github.com/NamelessFaceless/xivanalysis/internal/event"
	"github.com/NamelessFaceless/xivanalysis/internal/report"
)

// Role selects actors relative to the analysed player.
type Role string

const (
	RoleAny    Role = ""
	RolePlayer Role = "player" // The selected player
	RolePet    Role = "pet"    // Pets owned by the selected player
	RoleParty  Role = "party"  // Any player character, selected player included
)

// matches reports whether actor id fills the role in fight.
func (r Role) matches(fight *event.Fight, id int64) bool {
	switch r {
	case RoleAny:
		return true
	case RolePlayer:
		return fight.IsPlayer(id)
	case RolePet:
		return fight.IsPlayerPet(id)
	case RoleParty:
		return fight.IsParty(id)
	default:
		return false
	}
}

// Filter narrows the events a hook receives. Zero fields match anything.
type Filter struct {
	By        Role  // Role of the event source
	To        Role  // Role of the event target
	AbilityID int64 // Exact ability or status id
	AnyOf     []int64

	// Where is an extra predicate evaluated after the fields above.
	Where func(event.Event) bool
}

// Match reports whether e passes the filter.
func (f Filter) Match(fight *event.Fight, e event.Event) bool {
	if !f.By.matches(fight, e.SourceID) {
		return false
	}
	if !f.To.matches(fight, e.TargetID) {
		return false
	}
	if f.AbilityID != 0 && e.AbilityID != f.AbilityID {
		return false
	}
	if len(f.AnyOf) > 0 && !containsID(f.AnyOf, e.AbilityID) {
		return false
	}
	if f.Where != nil && !f.Where(e) {
		return false
	}
	return true
}

func containsID(ids []int64, id int64) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// Handler processes one dispatched event.
// A returned error is reported and dispatch continues with the next hook.
type Handler func(e event.Event) error

// HookID identifies a registered hook.
type HookID int64

// Clock exposes the dispatch position to handlers.
type Clock interface {
	// Now is the timestamp of the event being dispatched.
	Now() int64
	// Elapsed is Now relative to the fight start.
	Elapsed() int64
}

// Host is the module's view of the engine while it is being constructed.
//
// Everything a module needs is reached through Host; there is no global
// parser state.
type Host interface {
	// Handle is the handle of the module under construction.
	Handle() string

	// AddHook subscribes handler to events of type t passing filter.
	// Hooks run in module init order, then registration order.
	AddHook(t event.Type, filter Filter, handler Handler) (HookID, error)

	// RemoveHook unsubscribes a hook. Removing an unknown id is a no-op.
	RemoveHook(id HookID)

	// Dependency returns the instance of a declared dependency.
	Dependency(handle string) (any, error)

	// Policy returns the descriptor's policy value, possibly nil.
	Policy() any

	Fight() event.Fight
	Clock() Clock
	Logger() *slog.Logger
}

// Factory builds a module instance.
type Factory func(h Host) (any, error)

// Normaliser is implemented by modules that repair the raw event slice
// before dispatch. Normalisers run in resolved module order.
type Normaliser interface {
	Normalise(events []event.Event) ([]event.Event, error)
}

// Contributor is implemented by modules that add output to the report once
// dispatch has finished. Contributors run in resolved module order.
type Contributor interface {
	Contribute(r *report.Report)
}

// Get fetches a declared dependency with its concrete type.
func Get[T any](h Host, handle string) (T, error) {
	var zero T
	dep, err := h.Dependency(handle)
	if err != nil {
		return zero, err
	}
	typed, ok := dep.(T)
	if !ok {
		return zero, fmt.Errorf("dependency %q of %q is %T, not %T", handle, h.Handle(), dep, zero)
	}
	return typed, nil
}
