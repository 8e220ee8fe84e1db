package testutil

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/NamelessFaceless/xivanalysis/internal/event"
	"github.com/NamelessFaceless/xivanalysis/internal/module"
)

// Host is a module.Host for exercising one module without an engine.
//
// Hooks registered on it can be driven directly with Fire. Dependencies are
// whatever the test puts in Deps.
type Host struct {
	HandleName string
	FightValue event.Fight
	PolicyVal  any
	Deps       map[string]any
	ClockValue *ManualClock

	hooks  []testHook
	next   module.HookID
	logger *slog.Logger
}

type testHook struct {
	id      module.HookID
	typ     event.Type
	filter  module.Filter
	handler module.Handler
}

var _ module.Host = (*Host)(nil)

// NewHost creates a host for handle in fight.
func NewHost(handle string, fight event.Fight) *Host {
	return &Host{
		HandleName: handle,
		FightValue: fight,
		Deps:       make(map[string]any),
		ClockValue: NewManualClock(fight.Start),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (h *Host) Handle() string { return h.HandleName }

func (h *Host) AddHook(t event.Type, filter module.Filter, handler module.Handler) (module.HookID, error) {
	if handler == nil {
		return 0, errors.New("nil handler")
	}
	h.next++
	h.hooks = append(h.hooks, testHook{id: h.next, typ: t, filter: filter, handler: handler})
	return h.next, nil
}

func (h *Host) RemoveHook(id module.HookID) {
	h.hooks = slices.DeleteFunc(h.hooks, func(hk testHook) bool { return hk.id == id })
}

func (h *Host) Dependency(handle string) (any, error) {
	dep, ok := h.Deps[handle]
	if !ok {
		return nil, &module.ConfigError{
			Code:       module.ErrCodeUndeclaredDependency,
			Message:    fmt.Sprintf("dependency %q was not declared", handle),
			Handle:     h.HandleName,
			Dependency: handle,
		}
	}
	return dep, nil
}

func (h *Host) Policy() any          { return h.PolicyVal }
func (h *Host) Fight() event.Fight   { return h.FightValue }
func (h *Host) Clock() module.Clock  { return h.ClockValue }
func (h *Host) Logger() *slog.Logger { return h.logger }

// HookCount returns the number of registered hooks.
func (h *Host) HookCount() int {
	return len(h.hooks)
}

// Fire moves the clock to e.Timestamp and delivers e to every matching
// hook in registration order. The first handler error is returned.
func (h *Host) Fire(e event.Event) error {
	h.ClockValue.Set(e.Timestamp)
	for _, hk := range slices.Clone(h.hooks) {
		if hk.typ != e.Type || !hk.filter.Match(&h.FightValue, e) {
			continue
		}
		if err := hk.handler(e); err != nil {
			return err
		}
	}
	return nil
}

// FireAll fires events in order.
func (h *Host) FireAll(events ...event.Event) error {
	for _, e := range events {
		if err := h.Fire(e); err != nil {
			return err
		}
	}
	return nil
}
