package event

import (
	"cmp"
	"slices"
	"sort"
)

// Number gives every event a distinct Seq. Recorded Seq values are kept
// only when every event carries one and none repeat; otherwise all events
// are numbered 1..n by slice position.
func Number(events []Event) []Event {
	out := make([]Event, len(events))
	copy(out, events)
	if hasDistinctSeq(out) {
		return out
	}
	for i := range out {
		out[i].Seq = int64(i + 1)
	}
	return out
}

func hasDistinctSeq(events []Event) bool {
	seen := make(map[int64]struct{}, len(events))
	for _, e := range events {
		if e.Seq == 0 {
			return false
		}
		if _, dup := seen[e.Seq]; dup {
			return false
		}
		seen[e.Seq] = struct{}{}
	}
	return true
}

// Order returns a copy of events sorted by Timestamp, ties broken by Seq.
// Normalisers walk this order, so it must match the order of dispatch.
func Order(events []Event) []Event {
	out := make([]Event, len(events))
	copy(out, events)
	slices.SortStableFunc(out, func(a, b Event) int {
		if c := cmp.Compare(a.Timestamp, b.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(a.Seq, b.Seq)
	})
	return out
}

// Timeline is the sealed, read-only event sequence handed to dispatch.
//
// INVARIANTS:
//   - events are sorted by Timestamp; equal timestamps keep slice order
//   - Seq equals position+1
//   - the backing slice is never exposed
type Timeline struct {
	events []Event
}

// Seal copies events into a Timeline.
//
// The copy is stable-sorted by timestamp, so events sharing a timestamp keep
// the order they had in the slice (synthetic head insertions included), and
// Seq is renumbered to the final position.
func Seal(events []Event) Timeline {
	sealed := make([]Event, len(events))
	copy(sealed, events)
	sort.SliceStable(sealed, func(i, j int) bool {
		return sealed[i].Timestamp < sealed[j].Timestamp
	})
	for i := range sealed {
		sealed[i].Seq = int64(i + 1)
	}
	return Timeline{events: sealed}
}

// Len returns the number of events.
func (t Timeline) Len() int {
	return len(t.events)
}

// At returns a copy of the i-th event.
func (t Timeline) At(i int) Event {
	return t.events[i]
}

// Events returns a copy of all events.
func (t Timeline) Events() []Event {
	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

// Each calls fn for every event in order. Iteration stops when fn returns false.
func (t Timeline) Each(fn func(Event) bool) {
	for _, e := range t.events {
		if !fn(e) {
			return
		}
	}
}

// Last returns the final event and true, or false for an empty timeline.
func (t Timeline) Last() (Event, bool) {
	if len(t.events) == 0 {
		return Event{}, false
	}
	return t.events[len(t.events)-1], true
}
