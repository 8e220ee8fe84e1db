package engine

import (
	"errors"
	"fmt"
)

// DefaultMaxEvents bounds how many events one analysis dispatches,
// fabricated events included. A recording is one encounter; anything larger
// is treated as a broken or unbounded input.
const DefaultMaxEvents = 2_000_000

// eventQuota counts dispatched events against a limit.
type eventQuota struct {
	max     int
	current int
}

func newEventQuota(max int) *eventQuota {
	return &eventQuota{max: max}
}

// Check counts one event and fails once the limit is passed.
// A limit of zero or less disables the check.
func (q *eventQuota) Check() error {
	q.current++
	if q.max > 0 && q.current > q.max {
		return &EventLimitError{Events: q.current, Limit: q.max}
	}
	return nil
}

// Current returns the number of events counted so far.
func (q *eventQuota) Current() int {
	return q.current
}

// EventLimitError is returned when a recording has more events than the
// engine accepts. The analysis is aborted; no report is produced.
type EventLimitError struct {
	Events int
	Limit  int
}

// Error implements the error interface.
func (e *EventLimitError) Error() string {
	return fmt.Sprintf("recording exceeded event limit: %d events > %d limit", e.Events, e.Limit)
}

// IsEventLimitError returns true if err is (or wraps) an EventLimitError.
func IsEventLimitError(err error) bool {
	var le *EventLimitError
	return errors.As(err, &le)
}
