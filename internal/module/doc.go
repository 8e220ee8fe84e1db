// Package module defines analysis modules and orders them.
//
// A module is described by a Descriptor: a unique handle, the handles it
// depends on, an optional policy value, and a factory. The Registry holds
// descriptors in registration order; Resolve turns them into a total order in
// which every module appears after all of its dependencies.
//
// # Three phases
//
// The engine drives modules through three phases, each finishing before the
// next begins:
//
//  1. Init: factories run in resolved order. A module may look up any
//     dependency it declared; it is fully constructed by then.
//  2. Hook registration: factories call Host.AddHook while they run. Hooks are
//     sealed once every factory has returned.
//  3. Dispatch: the normalised timeline is replayed once through the hooks.
//
// A dependency may be declared purely to force ordering. The status
// normaliser depends on the precast action normaliser only so that it runs
// second.
//
// # Specialisation
//
// A job can replace a core module by registering a different descriptor under
// the same handle with Registry.Override. The replacement's policy value is
// used as is; nothing is merged with the original. This happens before
// Resolve, never during dispatch.
//
// # Configuration errors
//
// Duplicate handles, unknown dependencies and dependency cycles are
// configuration errors. They are fatal and surface before any event is
// dispatched.
package module
