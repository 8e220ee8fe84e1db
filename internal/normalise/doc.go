// Package normalise repairs a raw event recording before dispatch.
//
// Recordings begin at the pull, so anything that happened before it is
// missing: statuses applied pre-pull only show up as removals, refreshes or
// stack changes, and an action cast pre-pull only shows up as its damage.
// The normalisers in this package make that implicit state explicit by
// fabricating the missing events at startTime-1, which sorts before every
// real event.
//
// Normalisers never mutate their input. They walk it once, forward, collect
// the events to fabricate as (index, event) insertions, and merge them in a
// single pass at the end.
package normalise
