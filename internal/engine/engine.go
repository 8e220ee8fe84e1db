package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/NamelessFaceless/xivanalysis/internal/event"
	"github.com/NamelessFaceless/xivanalysis/internal/module"
	"github.com/NamelessFaceless/xivanalysis/internal/report"
)

// Engine analyses one fight with one resolved set of modules.
//
// INVARIANTS:
//   - order never changes after New
//   - hooks are only added while modules are being constructed
//   - Run happens at most once
type Engine struct {
	fight  event.Fight
	order  []module.Descriptor
	clock  *Clock
	hooks  *hookTable
	logger *slog.Logger

	instances map[string]any
	maxEvents int
	ran       bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMaxEvents sets how many events one Run may dispatch.
//
// Default: DefaultMaxEvents. Zero disables the limit.
func WithMaxEvents(n int) Option {
	return func(e *Engine) {
		e.maxEvents = n
	}
}

// New resolves the registry and constructs every module for fight.
//
// Configuration problems (duplicate, unknown or cyclic dependencies, failing
// factories) are returned as *module.ConfigError and no engine is built.
func New(fight event.Fight, registry *module.Registry, opts ...Option) (*Engine, error) {
	order, err := registry.Resolve()
	if err != nil {
		return nil, err
	}

	e := &Engine{
		fight:     fight,
		order:     order,
		clock:     NewClock(fight.Start),
		hooks:     newHookTable(),
		logger:    slog.Default(),
		instances: make(map[string]any, len(order)),
		maxEvents: DefaultMaxEvents,
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.init(); err != nil {
		return nil, err
	}
	return e, nil
}

// init builds modules in resolved order and seals hook registration.
func (e *Engine) init() error {
	for _, d := range e.order {
		d := d
		h := &host{engine: e, desc: d, logger: e.logger.With("module", d.Handle)}

		var instance any
		err := guard(func() error {
			var err error
			instance, err = d.New(h)
			return err
		})
		if err == nil && instance == nil {
			err = errors.New("factory returned nil module")
		}
		if err != nil {
			var ce *module.ConfigError
			if errors.As(err, &ce) {
				return err
			}
			return &module.ConfigError{
				Code:    module.ErrCodeInitFailed,
				Message: "module factory failed",
				Handle:  d.Handle,
				Err:     err,
			}
		}
		e.instances[d.Handle] = instance
	}

	e.hooks.seal()
	e.logger.Debug("modules initialised",
		"fight", e.fight.ID,
		"modules", len(e.order),
		"hooks", e.hooks.count(),
	)
	return nil
}

// Order returns module handles in init order.
func (e *Engine) Order() []string {
	handles := make([]string, len(e.order))
	for i, d := range e.order {
		handles[i] = d.Handle
	}
	return handles
}

// Module returns a constructed module instance.
func (e *Engine) Module(handle string) (any, bool) {
	instance, ok := e.instances[handle]
	return instance, ok
}

// Run normalises raw and dispatches it to the modules.
//
// raw is not modified. Malformed events are excluded and reported in
// Result.DataErrors; failing modules are reported in Result.HandlerErrors.
// Only an exceeded event limit or a report that cannot be encoded fails the
// run.
func (e *Engine) Run(raw []event.Event) (*Result, error) {
	if e.ran {
		return nil, ErrAlreadyRun
	}
	e.ran = true

	res := &Result{Order: e.Order()}

	e.logger.Info("analysis starting",
		"fight", e.fight.ID,
		"job", e.fight.Job,
		"events", len(raw),
	)

	// Phase 2: normalise
	valid, dataErrors := event.Partition(event.Number(raw))
	for _, de := range dataErrors {
		e.logger.Warn("event excluded",
			"seq", de.Seq,
			"event", string(de.Type),
			"field", de.Field,
			"reason", de.Message,
		)
	}
	res.DataErrors = dataErrors

	// Normalisers must see events in dispatch order.
	normalised := e.normalise(event.Order(valid), res)
	res.Timeline = event.Seal(normalised)
	res.Timeline.Each(func(ev event.Event) bool {
		if ev.Synthetic {
			res.Fabricated++
		}
		return true
	})

	// Phase 3: dispatch
	if err := e.dispatchAll(res); err != nil {
		return nil, err
	}

	rep, err := e.buildReport(res)
	if err != nil {
		return nil, err
	}
	res.Report = rep

	e.logger.Info("analysis complete",
		"fight", e.fight.ID,
		"dispatched", res.Dispatched,
		"fabricated", res.Fabricated,
		"data_errors", len(res.DataErrors),
		"handler_errors", len(res.HandlerErrors),
		"report", rep.ID,
	)
	return res, nil
}

// normalise runs every Normaliser in resolved order. A failing normaliser
// is reported and its output discarded.
func (e *Engine) normalise(events []event.Event, res *Result) []event.Event {
	for _, d := range e.order {
		n, ok := e.instances[d.Handle].(module.Normaliser)
		if !ok {
			continue
		}

		var out []event.Event
		err := guard(func() error {
			var err error
			out, err = n.Normalise(events)
			return err
		})
		if err != nil {
			e.recordFailure(res, &HandlerError{Handle: d.Handle, Phase: phaseNormalise, Err: err})
			continue
		}

		e.logger.Debug("normalised",
			"module", d.Handle,
			"before", len(events),
			"after", len(out),
		)
		events = out
	}
	return events
}

func (e *Engine) dispatchAll(res *Result) error {
	quota := newEventQuota(e.maxEvents)

	sawComplete := false
	var limitErr error
	res.Timeline.Each(func(ev event.Event) bool {
		if err := quota.Check(); err != nil {
			limitErr = err
			return false
		}
		if ev.Type == event.TypeComplete {
			sawComplete = true
		}
		e.dispatch(ev, res)
		return true
	})
	if limitErr != nil {
		e.logger.Error("event limit exceeded",
			"fight", e.fight.ID,
			"limit", e.maxEvents,
		)
		return limitErr
	}

	if !sawComplete {
		last := int64(res.Timeline.Len())
		e.dispatch(event.Event{
			Seq:       last + 1,
			Timestamp: e.fight.End,
			Type:      event.TypeComplete,
			Synthetic: true,
		}, res)
	}
	res.Dispatched = quota.Current()
	if !sawComplete {
		res.Dispatched++
	}
	return nil
}

// dispatch delivers ev to every live hook of its type.
func (e *Engine) dispatch(ev event.Event, res *Result) {
	e.clock.Advance(ev.Timestamp)

	for _, h := range e.hooks.forType(ev.Type) {
		h := h
		if h.removed {
			continue
		}
		err := guard(func() error {
			if !h.filter.Match(&e.fight, ev) {
				return nil
			}
			return h.handler(ev)
		})
		if err != nil {
			e.recordFailure(res, &HandlerError{
				Handle: h.handle,
				Seq:    ev.Seq,
				Type:   ev.Type,
				Phase:  phaseDispatch,
				Err:    err,
			})
		}
	}
}

// buildReport collects contributions in resolved order and seals the report.
func (e *Engine) buildReport(res *Result) (*report.Report, error) {
	rep := &report.Report{
		Fight: report.FightSummary{
			ID:       e.fight.ID,
			Name:     e.fight.Name,
			Job:      e.fight.Job,
			PlayerID: e.fight.PlayerID,
			Duration: e.fight.Duration(),
		},
		Modules:    res.Order,
		Fabricated: int64(res.Fabricated),
	}

	for _, d := range e.order {
		c, ok := e.instances[d.Handle].(module.Contributor)
		if !ok {
			continue
		}
		err := guard(func() error {
			c.Contribute(rep)
			return nil
		})
		if err != nil {
			e.recordFailure(res, &HandlerError{Handle: d.Handle, Phase: phaseContribute, Err: err})
		}
	}

	for _, de := range res.DataErrors {
		rep.DataErrors = append(rep.DataErrors, report.DataError{
			Seq:     de.Seq,
			Type:    string(de.Type),
			Field:   de.Field,
			Message: de.Message,
		})
	}
	for _, he := range res.HandlerErrors {
		rep.HandlerErrors = append(rep.HandlerErrors, report.HandlerError{
			Module:  he.Handle,
			Seq:     he.Seq,
			Type:    string(he.Type),
			Message: he.Err.Error(),
		})
	}

	if err := report.Seal(rep); err != nil {
		return nil, fmt.Errorf("seal report: %w", err)
	}
	return rep, nil
}

func (e *Engine) recordFailure(res *Result, he *HandlerError) {
	e.logger.Error("module failed",
		"handle", he.Handle,
		"phase", he.Phase,
		"seq", he.Seq,
		"event", string(he.Type),
		"error", he.Err,
	)
	res.HandlerErrors = append(res.HandlerErrors, he)
}
