package widgets

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-paramform/pkg/controls"
	"github.com/goliatone/go-paramform/pkg/model"
	"github.com/goliatone/go-paramform/pkg/param"
)

// ConstantKind is the synthetic kind consulted for constant fields before any
// lineage lookup.
const ConstantKind param.Kind = "constant"

var (
	// ErrFrozen is returned when registering into a frozen registry.
	ErrFrozen = errors.New("widgets: registry is frozen")
	// ErrNoFactory reports a field whose lineage has no registered factory.
	// The root fallback makes this unreachable for registries built with
	// NewRegistry, so callers should treat it as a programming error.
	ErrNoFactory = errors.New("widgets: no factory registered for field")
	// ErrInvalidFactory is returned when registering a nil factory or an
	// empty kind.
	ErrInvalidFactory = errors.New("widgets: invalid factory registration")
)

// Config carries the field state a factory needs to build a control.
type Config struct {
	Name    string
	Tooltip string
	Value   any
	Options *param.Options
	Min     *float64
	Max     *float64
	Action  func() error
}

// Bounded reports whether both numeric limits are present.
func (c Config) Bounded() bool {
	return c.Min != nil && c.Max != nil
}

// Factory builds a live control for a field.
type Factory func(Config) (controls.Control, error)

// Registry maps kinds to control factories. Registration happens during
// setup; once frozen the registry is read-only and safe to share across
// sessions.
type Registry struct {
	mu        sync.RWMutex
	factories map[param.Kind]Factory
	frozen    bool
}

// Option mutates a registry before it is frozen.
type Option func(*Registry)

// WithFactory overrides or adds the factory for kind. An empty kind or a nil
// factory panics like the built-in registrations.
func WithFactory(kind param.Kind, factory Factory) Option {
	return func(r *Registry) {
		r.MustRegister(kind, factory)
	}
}

// NewBuilder returns an empty, open registry.
func NewBuilder() *Registry {
	return &Registry{factories: make(map[param.Kind]Factory)}
}

// NewRegistry returns a frozen registry holding the built-in factories plus
// any overrides supplied through options.
func NewRegistry(opts ...Option) *Registry {
	reg := NewBuilder()
	reg.registerBuiltins()
	for _, opt := range opts {
		if opt != nil {
			opt(reg)
		}
	}
	reg.Freeze()
	return reg
}

// Register stores factory under kind, replacing any previous entry.
func (r *Registry) Register(kind param.Kind, factory Factory) error {
	trimmed := param.Kind(strings.TrimSpace(string(kind)))
	if r == nil || trimmed == "" || factory == nil {
		return ErrInvalidFactory
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return fmt.Errorf("%w: cannot register %q", ErrFrozen, trimmed)
	}
	r.factories[trimmed] = factory
	return nil
}

// MustRegister registers factory and panics on failure.
func (r *Registry) MustRegister(kind param.Kind, factory Factory) {
	if err := r.Register(kind, factory); err != nil {
		panic(err)
	}
}

// Freeze makes the registry read-only.
func (r *Registry) Freeze() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	if r == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Lookup returns the factory registered for exactly kind.
func (r *Registry) Lookup(kind param.Kind) (Factory, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.factories[kind]
	return factory, ok
}

// Kinds lists the registered kinds in lexical order.
func (r *Registry) Kinds() []param.Kind {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	kinds := make([]param.Kind, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	r.mu.RUnlock()
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Resolve selects the factory for field. Constant fields always resolve to
// the ConstantKind factory. Otherwise the field lineage is walked from most to
// least specific and the first registered kind wins. The matched kind is
// returned alongside the factory.
func (r *Registry) Resolve(field model.FieldDescriptor) (Factory, param.Kind, error) {
	if field.Constant {
		if factory, ok := r.Lookup(ConstantKind); ok {
			return factory, ConstantKind, nil
		}
		return nil, "", fmt.Errorf("%w: constant field %q", ErrNoFactory, field.Name)
	}
	lineage := field.Lineage
	if len(lineage) == 0 {
		lineage = field.Kind.Lineage()
	}
	for _, kind := range lineage {
		if factory, ok := r.Lookup(kind); ok {
			return factory, kind, nil
		}
	}
	return nil, "", fmt.Errorf("%w: %q (kind %s)", ErrNoFactory, field.Name, field.Kind)
}

// Build resolves and invokes the factory for field.
func (r *Registry) Build(field model.FieldDescriptor, cfg Config) (controls.Control, error) {
	factory, _, err := r.Resolve(field)
	if err != nil {
		return nil, err
	}
	control, err := factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("widgets: build %q: %w", field.Name, err)
	}
	return control, nil
}

func (r *Registry) registerBuiltins() {
	r.MustRegister(param.KindParameter, TextWidget)
	r.MustRegister(param.KindString, TextWidget)
	r.MustRegister(param.KindBoolean, CheckboxWidget)
	r.MustRegister(param.KindNumber, FloatWidget)
	r.MustRegister(param.KindInteger, IntWidget)
	r.MustRegister(param.KindSelector, DropdownWidget)
	r.MustRegister(param.KindListSelector, SelectMultipleWidget)
	r.MustRegister(param.KindAction, ButtonWidget)
	r.MustRegister(ConstantKind, ReadOnlyWidget)
}
