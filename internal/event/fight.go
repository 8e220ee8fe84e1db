package event

// ActorKind classifies an actor in the fight.
type ActorKind string

const (
	ActorPlayer ActorKind = "player"
	ActorPet    ActorKind = "pet"
	ActorNPC    ActorKind = "npc"
)

// Actor is a participant in the fight.
type Actor struct {
	ID      int64     `json:"id" yaml:"id"`
	Name    string    `json:"name" yaml:"name"`
	Job     string    `json:"job,omitempty" yaml:"job,omitempty"`
	Kind    ActorKind `json:"kind" yaml:"kind"`
	OwnerID int64     `json:"ownerID,omitempty" yaml:"ownerID,omitempty"` // Pets only
}

// Fight is the header of a recorded encounter.
//
// PlayerID selects the actor being analysed. Start and End bound the
// encounter in the same millisecond clock as event timestamps.
type Fight struct {
	ID       int64   `json:"id" yaml:"id"`
	Name     string  `json:"name,omitempty" yaml:"name,omitempty"`
	Start    int64   `json:"start" yaml:"start"`
	End      int64   `json:"end" yaml:"end"`
	PlayerID int64   `json:"player" yaml:"player"`
	Job      string  `json:"job" yaml:"job"`
	Actors   []Actor `json:"actors,omitempty" yaml:"actors,omitempty"`
}

// Duration returns the length of the fight in milliseconds.
func (f Fight) Duration() int64 {
	return f.End - f.Start
}

// Actor looks up an actor by id.
func (f Fight) Actor(id int64) (Actor, bool) {
	for _, a := range f.Actors {
		if a.ID == id {
			return a, true
		}
	}
	return Actor{}, false
}

// IsPlayer reports whether id is the selected player.
func (f Fight) IsPlayer(id int64) bool {
	return id != 0 && id == f.PlayerID
}

// IsPlayerPet reports whether id is a pet owned by the selected player.
func (f Fight) IsPlayerPet(id int64) bool {
	a, ok := f.Actor(id)
	return ok && a.Kind == ActorPet && a.OwnerID == f.PlayerID
}

// IsParty reports whether id is any player character in the fight.
func (f Fight) IsParty(id int64) bool {
	if f.IsPlayer(id) {
		return true
	}
	a, ok := f.Actor(id)
	return ok && a.Kind == ActorPlayer
}

// PartySize counts player characters, including the selected player.
func (f Fight) PartySize() int {
	n := 0
	seenPlayer := false
	for _, a := range f.Actors {
		if a.Kind == ActorPlayer {
			n++
			if a.ID == f.PlayerID {
				seenPlayer = true
			}
		}
	}
	if !seenPlayer && f.PlayerID != 0 {
		n++
	}
	return n
}
