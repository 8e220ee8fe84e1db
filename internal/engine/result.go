package engine

import (
	"github.com/NamelessFaceless/xivanalysis/internal/event"
	"github.com/NamelessFaceless/xivanalysis/internal/report"
)

// Result is the outcome of Run.
type Result struct {
	// Timeline is the normalised, sealed event sequence that was dispatched.
	Timeline event.Timeline

	// Order is the module init order.
	Order []string

	// Fabricated counts synthetic events added by normalisers.
	Fabricated int

	// Dispatched counts events delivered to the dispatcher, the trailing
	// complete event included.
	Dispatched int

	DataErrors    []*event.DataError
	HandlerErrors []*HandlerError

	// Report is sealed: its ID is the content hash.
	Report *report.Report
}
