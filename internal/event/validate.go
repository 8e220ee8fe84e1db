package event

import (
	"errors"
	"fmt"
)

// DataError describes a single malformed event.
//
// Data errors are local: the offending event is excluded from normalisation
// and dispatch, and the error is reported next to the analysis output.
type DataError struct {
	Seq     int64  `json:"seq"`
	Type    Type   `json:"type"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *DataError) Error() string {
	return fmt.Sprintf("event %d (%s): %s: %s", e.Seq, e.Type, e.Field, e.Message)
}

// IsDataError returns true if err is (or wraps) a DataError.
func IsDataError(err error) bool {
	var de *DataError
	return errors.As(err, &de)
}

// Validate checks the fields required for the event's type.
// Returns nil for a well-formed event.
func Validate(e Event) *DataError {
	if !e.Type.Known() {
		return &DataError{Seq: e.Seq, Type: e.Type, Field: "type", Message: fmt.Sprintf("unknown event type %q", e.Type)}
	}

	switch {
	case e.Type.IsStatus():
		if !e.HasAbility() {
			return &DataError{Seq: e.Seq, Type: e.Type, Field: "abilityID", Message: "status event without status id"}
		}
		if e.TargetID == 0 {
			return &DataError{Seq: e.Seq, Type: e.Type, Field: "targetID", Message: "status event without target"}
		}
	case e.Type == TypeCast, e.Type == TypeDamage, e.Type == TypeHeal:
		if !e.HasAbility() {
			return &DataError{Seq: e.Seq, Type: e.Type, Field: "abilityID", Message: "action event without action id"}
		}
		if e.SourceID == 0 {
			return &DataError{Seq: e.Seq, Type: e.Type, Field: "sourceID", Message: "action event without source"}
		}
	case e.Type == TypeDeath:
		if e.TargetID == 0 {
			return &DataError{Seq: e.Seq, Type: e.Type, Field: "targetID", Message: "death event without target"}
		}
	}

	if e.Type == TypeDamage && e.Amount < 0 {
		return &DataError{Seq: e.Seq, Type: e.Type, Field: "amount", Message: "negative damage amount"}
	}

	return nil
}

// Partition splits events into well-formed events and data errors.
// Relative order of the well-formed events is preserved.
func Partition(events []Event) ([]Event, []*DataError) {
	valid := make([]Event, 0, len(events))
	var errs []*DataError
	for _, e := range events {
		if de := Validate(e); de != nil {
			errs = append(errs, de)
			continue
		}
		valid = append(valid, e)
	}
	return valid, errs
}
