package normalise

import (
	"github.com/NamelessFaceless/xivanalysis/internal/event"
)

// StatusLedger records which statuses are known to have been applied to
// which targets. It only lives for the duration of a normalisation pass.
type StatusLedger map[int64]map[int64]struct{}

// Has reports whether the (target, status) pair has been applied.
func (l StatusLedger) Has(key event.StatusKey) bool {
	_, ok := l[key.TargetID][key.StatusID]
	return ok
}

// Record marks the (target, status) pair as applied.
func (l StatusLedger) Record(key event.StatusKey) {
	statuses, ok := l[key.TargetID]
	if !ok {
		statuses = make(map[int64]struct{})
		l[key.TargetID] = statuses
	}
	statuses[key.StatusID] = struct{}{}
}

// StatusResult is the outcome of a status normalisation pass.
type StatusResult struct {
	Events     []event.Event
	Fabricated int
	DataErrors []*event.DataError
}

// Statuses guarantees every status removal, refresh and stack change is
// preceded by an application of the same status on the same target.
//
// The first follow-up event seen for an unknown (target, status) pair gets a
// copy of itself fabricated as an applystatus at startTime-1 and placed at
// the head of the result. Each pair is fabricated at most once. Fabricated
// events keep discovery order among themselves; they all share the same
// timestamp, so consumers asking "was it applied by time T" cannot tell.
//
// Status events without a status id are excluded from the result and
// reported as data errors. Running Statuses on its own output is a no-op.
func Statuses(events []event.Event, startTime int64) StatusResult {
	ledger := make(StatusLedger)
	kept := make([]event.Event, 0, len(events))
	var inserts []insertion
	var errs []*event.DataError

	for _, e := range events {
		if e.Type.IsStatus() && !e.HasAbility() {
			errs = append(errs, &event.DataError{
				Seq:     e.Seq,
				Type:    e.Type,
				Field:   "abilityID",
				Message: "status event without status id",
			})
			continue
		}
		kept = append(kept, e)

		switch {
		case e.Type == event.TypeApplyStatus:
			ledger.Record(e.StatusKey())

		case e.Type.IsStatusFollowUp():
			key := e.StatusKey()
			if ledger.Has(key) {
				continue
			}

			fab := e
			fab.Type = event.TypeApplyStatus
			fab.Timestamp = startTime - 1
			fab.Seq = 0
			fab.Synthetic = true
			inserts = append(inserts, insertion{index: 0, event: fab})

			ledger.Record(key)
		}
	}

	return StatusResult{
		Events:     merge(kept, inserts),
		Fabricated: len(inserts),
		DataErrors: errs,
	}
}
