// Package engine runs one analysis of one fight.
//
// An Engine is built from a fight header and a module registry and is used
// exactly once. It works in three phases:
//
//  1. Init: descriptors are resolved and every module is constructed in
//     dependency order. Modules subscribe to events through the Host they
//     receive. Hook registration closes when the last module has been built.
//  2. Normalise: malformed events are split off as data errors, then every
//     module implementing module.Normaliser repairs the event slice, in
//     resolved order. The result is sealed into a read-only Timeline.
//  3. Dispatch: the timeline is replayed once. For each event the hooks for
//     its type run in module init order, then registration order. A
//     trailing complete event is dispatched at the fight end when the
//     recording has none.
//
// Handler failures are isolated: an error or panic from one hook is logged,
// recorded as a HandlerError, and dispatch continues with the next hook.
//
// Everything happens on the calling goroutine. Separate fights may be
// analysed concurrently with separate engines.
package engine
