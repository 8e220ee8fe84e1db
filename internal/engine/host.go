package engine

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/NamelessFaceless/xivanalysis/internal/event"
	"github.com/NamelessFaceless/xivanalysis/internal/module"
)

// host is the module.Host handed to one module factory.
type host struct {
	engine *Engine
	desc   module.Descriptor
	logger *slog.Logger
}

var _ module.Host = (*host)(nil)

func (h *host) Handle() string {
	return h.desc.Handle
}

func (h *host) AddHook(t event.Type, filter module.Filter, handler module.Handler) (module.HookID, error) {
	if handler == nil {
		return 0, fmt.Errorf("module %s: nil handler for %s", h.desc.Handle, t)
	}
	if !t.Known() {
		return 0, fmt.Errorf("module %s: unknown event type %q", h.desc.Handle, t)
	}
	return h.engine.hooks.add(h.desc.Handle, t, filter, handler)
}

func (h *host) RemoveHook(id module.HookID) {
	h.engine.hooks.remove(id)
}

// Dependency returns a declared dependency's instance. Asking for anything
// else is a configuration error, even when the module exists.
func (h *host) Dependency(handle string) (any, error) {
	if !slices.Contains(h.desc.Dependencies, handle) {
		return nil, &module.ConfigError{
			Code:       module.ErrCodeUndeclaredDependency,
			Message:    fmt.Sprintf("dependency %q was not declared", handle),
			Handle:     h.desc.Handle,
			Dependency: handle,
		}
	}
	instance, ok := h.engine.instances[handle]
	if !ok {
		// Unreachable after Resolve; kept as an error rather than a nil.
		return nil, &module.ConfigError{
			Code:       module.ErrCodeInitFailed,
			Message:    fmt.Sprintf("dependency %q is not initialised", handle),
			Handle:     h.desc.Handle,
			Dependency: handle,
		}
	}
	return instance, nil
}

func (h *host) Policy() any {
	return h.desc.Policy
}

func (h *host) Fight() event.Fight {
	return h.engine.fight
}

func (h *host) Clock() module.Clock {
	return h.engine.clock
}

func (h *host) Logger() *slog.Logger {
	return h.logger
}
