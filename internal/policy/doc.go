// Package policy compiles the ordered policy tables handed to modules
// through their descriptors.
//
// Tables are written in CUE. The defaults are embedded in the binary; a
// directory of .cue files may replace individual tables at load time.
// Actions are referenced by name and resolved against the data tables, so a
// typo is a load error rather than a silently empty row.
package policy
