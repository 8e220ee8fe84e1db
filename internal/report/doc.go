// Package report defines the analysis output handed to the rendering and
// suggestion collaborators: time series, suggestion records, cooldown tables
// and the data/handler errors collected along the way.
//
// Reports are content addressed. The id is the SHA-256 of the report's
// canonical JSON (sorted keys, NFC strings, no HTML escaping, no floats), so
// analysing the same recording with the same modules always yields the same id.
package report
