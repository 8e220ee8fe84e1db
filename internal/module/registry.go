package module

import "fmt"

// Descriptor describes a module before it exists.
type Descriptor struct {
	// Handle uniquely identifies the module.
	Handle string

	// Dependencies are handles that must initialise first, in declared order.
	Dependencies []string

	// Policy is an explicit configuration value handed to the factory, such
	// as an ordered cooldown table. Specialisations swap it by overriding
	// the descriptor.
	Policy any

	// New builds the module.
	New Factory
}

// Registry holds descriptors in registration order.
//
// INVARIANTS:
//   - handles are unique
//   - order never changes after Register; Override keeps the position
type Registry struct {
	order    []string
	byHandle map[string]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byHandle: make(map[string]Descriptor)}
}

// Register adds a descriptor. Registering a handle twice is an error.
func (r *Registry) Register(d Descriptor) error {
	if err := validateDescriptor(d); err != nil {
		return err
	}
	if _, exists := r.byHandle[d.Handle]; exists {
		return &ConfigError{
			Code:    ErrCodeDuplicateHandle,
			Message: "handle already registered",
			Handle:  d.Handle,
		}
	}

	r.order = append(r.order, d.Handle)
	r.byHandle[d.Handle] = copyDescriptor(d)
	return nil
}

// MustRegister registers descriptors and panics on error.
// Intended for static module tables.
func (r *Registry) MustRegister(ds ...Descriptor) *Registry {
	for _, d := range ds {
		if err := r.Register(d); err != nil {
			panic(fmt.Sprintf("register %q: %v", d.Handle, err))
		}
	}
	return r
}

// Override replaces the descriptor bound to an existing handle.
//
// The replacement is used whole: its dependencies, policy and factory
// replace the original's. The module keeps its registration position.
func (r *Registry) Override(d Descriptor) error {
	if err := validateDescriptor(d); err != nil {
		return err
	}
	if _, exists := r.byHandle[d.Handle]; !exists {
		return &ConfigError{
			Code:    ErrCodeUnknownOverride,
			Message: "cannot override a handle that was never registered",
			Handle:  d.Handle,
		}
	}
	r.byHandle[d.Handle] = copyDescriptor(d)
	return nil
}

// Lookup returns the descriptor bound to handle.
func (r *Registry) Lookup(handle string) (Descriptor, bool) {
	d, ok := r.byHandle[handle]
	return d, ok
}

// Handles returns handles in registration order.
func (r *Registry) Handles() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered modules.
func (r *Registry) Len() int {
	return len(r.order)
}

func validateDescriptor(d Descriptor) error {
	if d.Handle == "" {
		return &ConfigError{Code: ErrCodeInvalidDescriptor, Message: "descriptor has no handle"}
	}
	if d.New == nil {
		return &ConfigError{Code: ErrCodeInvalidDescriptor, Message: "descriptor has no factory", Handle: d.Handle}
	}
	return nil
}

// copyDescriptor detaches the dependency slice from the caller's.
func copyDescriptor(d Descriptor) Descriptor {
	deps := make([]string, len(d.Dependencies))
	copy(deps, d.Dependencies)
	d.Dependencies = deps
	return d
}
