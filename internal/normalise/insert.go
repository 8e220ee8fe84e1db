package normalise

import (
	"sort"

	"github.com/NamelessFaceless/xivanalysis/internal/event"
)

// insertion is a fabricated event waiting to be merged into a slice.
// index is the position in the original slice the event goes before.
type insertion struct {
	index int
	event event.Event
}

// merge returns a new slice with every insertion placed before the element
// currently at its index. Insertions sharing an index keep discovery order.
func merge(events []event.Event, inserts []insertion) []event.Event {
	if len(inserts) == 0 {
		return events
	}

	sort.SliceStable(inserts, func(i, j int) bool {
		return inserts[i].index < inserts[j].index
	})

	out := make([]event.Event, 0, len(events)+len(inserts))
	next := 0
	for i, e := range events {
		for next < len(inserts) && inserts[next].index <= i {
			out = append(out, inserts[next].event)
			next++
		}
		out = append(out, e)
	}
	for ; next < len(inserts); next++ {
		out = append(out, inserts[next].event)
	}
	return out
}
