package testutil

import "github.com/NamelessFaceless/xivanalysis/internal/event"

// Actor ids used by Fight.
const (
	PlayerID  int64 = 1
	PartnerID int64 = 2
	HealerID  int64 = 3
	TankID    int64 = 4
	PetID     int64 = 10
	BossID    int64 = 100
)

// Fight returns a four-player fight from 0 to 60s with the selected player
// on job.
func Fight(job string) event.Fight {
	return event.Fight{
		ID:       1,
		Name:     "Test Encounter",
		Start:    0,
		End:      60000,
		PlayerID: PlayerID,
		Job:      job,
		Actors: []event.Actor{
			{ID: PlayerID, Name: "Player", Job: job, Kind: event.ActorPlayer},
			{ID: PartnerID, Name: "Partner", Job: "SAM", Kind: event.ActorPlayer},
			{ID: HealerID, Name: "Healer", Job: "WHM", Kind: event.ActorPlayer},
			{ID: TankID, Name: "Tank", Job: "WAR", Kind: event.ActorPlayer},
			{ID: PetID, Name: "Pet", Kind: event.ActorPet, OwnerID: PlayerID},
			{ID: BossID, Name: "Boss", Kind: event.ActorNPC},
		},
	}
}

// Cast is a cast of action by source at ts.
func Cast(ts, source, action int64) event.Event {
	return event.Event{Timestamp: ts, Type: event.TypeCast, SourceID: source, TargetID: BossID, AbilityID: action}
}

// Damage is a hit of action by source on the boss at ts.
func Damage(ts, source, action, amount int64) event.Event {
	return event.Event{Timestamp: ts, Type: event.TypeDamage, SourceID: source, TargetID: BossID, AbilityID: action, Amount: amount}
}

// Apply applies status from source to target at ts.
func Apply(ts, source, target, status int64) event.Event {
	return event.Event{Timestamp: ts, Type: event.TypeApplyStatus, SourceID: source, TargetID: target, AbilityID: status}
}

// Remove removes status from target at ts.
func Remove(ts, source, target, status int64) event.Event {
	return event.Event{Timestamp: ts, Type: event.TypeRemoveStatus, SourceID: source, TargetID: target, AbilityID: status}
}

// Refresh refreshes status on target at ts.
func Refresh(ts, source, target, status int64) event.Event {
	return event.Event{Timestamp: ts, Type: event.TypeRefreshStatus, SourceID: source, TargetID: target, AbilityID: status}
}

// Death kills target at ts.
func Death(ts, target int64) event.Event {
	return event.Event{Timestamp: ts, Type: event.TypeDeath, TargetID: target}
}

// Complete ends the fight at ts.
func Complete(ts int64) event.Event {
	return event.Event{Timestamp: ts, Type: event.TypeComplete}
}
