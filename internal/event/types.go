package event

// Type identifies the kind of a combat event.
type Type string

const (
	TypeApplyStatus       Type = "applystatus"
	TypeRemoveStatus      Type = "removestatus"
	TypeApplyStatusStack  Type = "applystatusstack"
	TypeRemoveStatusStack Type = "removestatusstack"
	TypeRefreshStatus     Type = "refreshstatus"
	TypeDamage            Type = "damage"
	TypeHeal              Type = "heal"
	TypeCast              Type = "cast"
	TypeDeath             Type = "death"
	TypeComplete          Type = "complete"
)

// knownTypes is the closed set of event types the analyser understands.
var knownTypes = map[Type]bool{
	TypeApplyStatus:       true,
	TypeRemoveStatus:      true,
	TypeApplyStatusStack:  true,
	TypeRemoveStatusStack: true,
	TypeRefreshStatus:     true,
	TypeDamage:            true,
	TypeHeal:              true,
	TypeCast:              true,
	TypeDeath:             true,
	TypeComplete:          true,
}

// Known reports whether t is one of the declared event types.
func (t Type) Known() bool {
	return knownTypes[t]
}

// IsStatus reports whether t is any status lifecycle event.
func (t Type) IsStatus() bool {
	return t == TypeApplyStatus || t.IsStatusFollowUp()
}

// IsStatusFollowUp reports whether t only makes sense after the status has
// been applied: removals, stack changes and refreshes.
func (t Type) IsStatusFollowUp() bool {
	switch t {
	case TypeRemoveStatus, TypeApplyStatusStack, TypeRemoveStatusStack, TypeRefreshStatus:
		return true
	}
	return false
}

// Event is a single combat event from the recording.
//
// For status events AbilityID is the status id. For cast and damage events
// it is the action id.
type Event struct {
	Seq       int64 `json:"seq" yaml:"seq"`             // Position in the recording, tie breaker for equal timestamps
	Timestamp int64 `json:"timestamp" yaml:"timestamp"` // Milliseconds
	Type      Type  `json:"type" yaml:"type"`
	SourceID  int64 `json:"sourceID,omitempty" yaml:"sourceID,omitempty"`
	TargetID  int64 `json:"targetID,omitempty" yaml:"targetID,omitempty"`
	AbilityID int64 `json:"abilityID,omitempty" yaml:"abilityID,omitempty"`
	Amount    int64 `json:"amount,omitempty" yaml:"amount,omitempty"`

	// Synthetic marks events fabricated by normalisation.
	Synthetic bool `json:"synthetic,omitempty" yaml:"synthetic,omitempty"`
}

// HasAbility reports whether the event carries an ability or status id.
func (e Event) HasAbility() bool {
	return e.AbilityID != 0
}

// StatusKey identifies a status on a specific target.
type StatusKey struct {
	TargetID int64
	StatusID int64
}

// StatusKey returns the (target, status) pair of a status event.
func (e Event) StatusKey() StatusKey {
	return StatusKey{TargetID: e.TargetID, StatusID: e.AbilityID}
}
