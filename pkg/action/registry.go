package action

import (
	"fmt"
	"sort"
	"sync"

	"github.com/quez2777/hodos-360-website/pkg/domain"
)

// Registry manages the available actions. Registration order is not
// significant; List returns specs sorted by name.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]Action
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{actions: make(map[string]Action)}
}

// Register adds an action. A duplicate name or malformed spec is a
// configuration error and fails immediately.
func (r *Registry) Register(a Action) error {
	spec := a.Spec()
	if err := spec.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.actions[spec.Name]; ok {
		return fmt.Errorf("action %q registered twice", spec.Name)
	}
	r.actions[spec.Name] = a
	return nil
}

// MustRegister panics on registration failure. Used by the assembly code
// where every action is declared from literals.
func (r *Registry) MustRegister(a Action) {
	if err := r.Register(a); err != nil {
		panic(err)
	}
}

// Get looks up an action by name.
func (r *Registry) Get(name string) (Action, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.actions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrActionNotFound, name)
	}
	return a, nil
}

// List returns all specs sorted by name.
func (r *Registry) List() []Spec {
	r.mu.RLock()
	defer r.mu.RUnlock()
	specs := make([]Spec, 0, len(r.actions))
	for _, a := range r.actions {
		specs = append(specs, a.Spec())
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Name < specs[j].Name })
	return specs
}

// Len returns the number of registered actions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.actions)
}
