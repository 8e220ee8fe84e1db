package normalise

import (
	"github.com/NamelessFaceless/xivanalysis/internal/event"
)

// PrecastAction fabricates the cast of an action used before the pull.
//
// The selected actor's first action event is inspected. If it is damage
// rather than a cast, the cast happened before the recording started, and a
// cast of the same action is fabricated at startTime-1 at the head of the
// result. Only the first action is considered; anything later was cast
// inside the recording.
//
// Returns the events and whether a cast was fabricated.
func PrecastAction(events []event.Event, startTime, actorID int64) ([]event.Event, bool) {
	for _, e := range events {
		if e.SourceID != actorID {
			continue
		}
		switch e.Type {
		case event.TypeCast:
			return events, false
		case event.TypeDamage:
			if !e.HasAbility() {
				continue
			}
			fab := event.Event{
				Timestamp: startTime - 1,
				Type:      event.TypeCast,
				SourceID:  e.SourceID,
				TargetID:  e.TargetID,
				AbilityID: e.AbilityID,
				Synthetic: true,
			}
			return merge(events, []insertion{{index: 0, event: fab}}), true
		}
	}
	return events, false
}
