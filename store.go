package livedsl

import (
	"sort"

	"github.com/grindlemire/go-livedsl/internal/debug"
	"github.com/grindlemire/go-livedsl/internal/dsl"
)

// StatePolicy decides what happens to runtime state when the source is edited.
type StatePolicy int

const (
	// ResetOnEdit reseeds every state value from its declaration on each
	// edit, discarding click-driven changes.
	ResetOnEdit StatePolicy = iota
	// PreserveOnEdit keeps the current value of every name that is still
	// declared, seeds newly declared names and drops removed ones.
	PreserveOnEdit
)

func (p StatePolicy) String() string {
	if p == PreserveOnEdit {
		return "preserve"
	}
	return "reset"
}

// ParseStatePolicy maps "reset" and "preserve" to a policy.
func ParseStatePolicy(s string) (StatePolicy, bool) {
	switch s {
	case "reset", "":
		return ResetOnEdit, true
	case "preserve":
		return PreserveOnEdit, true
	}
	return ResetOnEdit, false
}

// Store maps state names to integer values.
//
// Increment is the only mutation and notifies bindings after the value has
// changed; the compile driver binds a recompile to it. A Store is not safe
// for concurrent use: the event loop that owns the driver serializes every
// access.
type Store struct {
	values   map[string]int
	bindings []*binding
}

// binding represents a registered callback that fires when state changes.
type binding struct {
	fn     func(name string, value int)
	active bool
}

// Unbind is a handle to remove a binding.
type Unbind func()

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{values: make(map[string]int)}
}

// Initialize resets the store to the declared defaults. When a name is
// declared twice the later declaration wins. Bindings are not notified.
func (s *Store) Initialize(decls []*dsl.StateDecl) {
	s.replace(seedValues(decls, nil))
}

// Reseed applies an edit's declarations according to policy.
func (s *Store) Reseed(decls []*dsl.StateDecl, policy StatePolicy) {
	s.replace(s.seed(decls, policy))
}

// seed computes the values an edit would produce without applying them.
func (s *Store) seed(decls []*dsl.StateDecl, policy StatePolicy) map[string]int {
	if policy == PreserveOnEdit {
		return seedValues(decls, s.values)
	}
	return seedValues(decls, nil)
}

// replace swaps in a new set of values. Bindings are not notified.
func (s *Store) replace(values map[string]int) {
	s.values = values
	debug.Log("Store: reseeded %d value(s)", len(values))
}

// Get returns the value of a declared state.
func (s *Store) Get(name string) (int, error) {
	v, ok := s.values[name]
	if !ok {
		return 0, dsl.NewErrorf(dsl.KindUndefinedState, dsl.Position{}, "state %q is not declared", name)
	}
	return v, nil
}

// Increment adds step to a declared state and then notifies bindings.
func (s *Store) Increment(name string, step int) error {
	v, ok := s.values[name]
	if !ok {
		return dsl.NewErrorf(dsl.KindUndefinedState, dsl.Position{}, "cannot increment undeclared state %q", name)
	}
	v += step
	s.values[name] = v
	debug.Log("Store.Increment: %s += %d -> %d", name, step, v)

	// Drop inactive bindings before notifying.
	active := s.bindings[:0]
	for _, b := range s.bindings {
		if b.active {
			active = append(active, b)
		}
	}
	s.bindings = active

	// Copy so a callback that binds or unbinds does not disturb iteration.
	snapshot := append([]*binding(nil), active...)
	for _, b := range snapshot {
		if b.active {
			b.fn(name, v)
		}
	}
	return nil
}

// Bind registers fn to run after every Increment. Bindings run in
// registration order.
func (s *Store) Bind(fn func(name string, value int)) Unbind {
	b := &binding{fn: fn, active: true}
	s.bindings = append(s.bindings, b)
	return func() {
		b.active = false
	}
}

// Names returns the declared names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a copy of all values.
func (s *Store) Snapshot() map[string]int {
	out := make(map[string]int, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}
