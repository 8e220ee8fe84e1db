// Package gauge implements a clamped resource gauge.
//
// Values are fixed-point (see Scale) so generation rates such as 25% of ten
// units accumulate exactly. All operations are total: no input can move the
// gauge outside [0, max].
package gauge
