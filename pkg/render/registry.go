package render

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores display sinks by name, providing discovery and duplication
// safeguards.
type Registry struct {
	mu    sync.RWMutex
	sinks map[string]Sink
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		sinks: make(map[string]Sink),
	}
}

// Register adds a sink by its Name(). Duplicate names return an error.
func (r *Registry) Register(sink Sink) error {
	if sink == nil {
		return fmt.Errorf("render: sink is required")
	}
	name := sink.Name()
	if name == "" {
		return fmt.Errorf("render: sink name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sinks[name]; exists {
		return fmt.Errorf("render: sink %q already registered", name)
	}
	r.sinks[name] = sink
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(sink Sink) {
	if err := r.Register(sink); err != nil {
		panic(err)
	}
}

// Get retrieves a sink by name.
func (r *Registry) Get(name string) (Sink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sink, ok := r.sinks[name]
	if !ok {
		return nil, fmt.Errorf("render: sink %q not found", name)
	}
	return sink, nil
}

// List returns the sorted sink names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.sinks))
	for name := range r.sinks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a sink is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.sinks[name]
	return ok
}
