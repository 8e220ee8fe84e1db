package core

import (
	"log/slog"

	"github.com/NamelessFaceless/xivanalysis/internal/event"
	"github.com/NamelessFaceless/xivanalysis/internal/module"
	"github.com/NamelessFaceless/xivanalysis/internal/normalise"
)

// PrecastAction fabricates the selected player's pre-pull cast.
type PrecastAction struct {
	fight      event.Fight
	logger     *slog.Logger
	fabricated bool
}

// PrecastActionDescriptor describes the precastAction module.
func PrecastActionDescriptor() module.Descriptor {
	return module.Descriptor{
		Handle: HandlePrecastAction,
		New: func(h module.Host) (any, error) {
			return &PrecastAction{fight: h.Fight(), logger: h.Logger()}, nil
		},
	}
}

// Normalise implements module.Normaliser.
func (p *PrecastAction) Normalise(events []event.Event) ([]event.Event, error) {
	out, fabricated := normalise.PrecastAction(events, p.fight.Start, p.fight.PlayerID)
	if fabricated {
		p.fabricated = true
		p.logger.Debug("fabricated precast action", "ability", out[0].AbilityID)
	}
	return out, nil
}

// Fabricated reports whether a precast cast was added.
func (p *PrecastAction) Fabricated() bool {
	return p.fabricated
}

// PrecastStatus fabricates applications for statuses that were already
// active when the recording started.
type PrecastStatus struct {
	start      int64
	logger     *slog.Logger
	fabricated int
}

// PrecastStatusDescriptor describes the precastStatus module. It depends on
// precastAction only so that it normalises second.
func PrecastStatusDescriptor() module.Descriptor {
	return module.Descriptor{
		Handle:       HandlePrecastStatus,
		Dependencies: []string{HandlePrecastAction},
		New: func(h module.Host) (any, error) {
			return &PrecastStatus{start: h.Fight().Start, logger: h.Logger()}, nil
		},
	}
}

// Normalise implements module.Normaliser.
func (p *PrecastStatus) Normalise(events []event.Event) ([]event.Event, error) {
	res := normalise.Statuses(events, p.start)
	p.fabricated += res.Fabricated
	for _, de := range res.DataErrors {
		// Already excluded by validation; only reachable for direct callers.
		p.logger.Warn("status event excluded", "seq", de.Seq, "reason", de.Message)
	}
	if res.Fabricated > 0 {
		p.logger.Debug("fabricated precast statuses", "count", res.Fabricated)
	}
	return res.Events, nil
}

// Fabricated returns how many applications were added.
func (p *PrecastStatus) Fabricated() int {
	return p.fabricated
}
