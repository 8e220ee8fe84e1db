// Package event provides the combat event types shared by every other
// package in the analyser.
//
// This package imports nothing internal. All other internal packages import
// event; event stays the foundational layer.
//
// Key constraints:
//   - Timestamps are integer milliseconds, never floats
//   - AbilityID 0 means "absent"
//   - A Timeline is read-only once sealed; normalisation works on plain slices
//     before the seal, dispatch works on the sealed Timeline after it
package event
