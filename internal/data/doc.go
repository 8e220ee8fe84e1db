// Package data holds the immutable game identifier tables the modules need:
// actions, statuses and jobs. Lookups never mutate the tables.
package data
