package param

import (
	"fmt"
	"strings"
	"sync"
)

// IdentityField is the reserved name under which a schema exposes its own
// name. It is never an editable parameter.
const IdentityField = "name"

// Schema is a named, ordered collection of parameters together with their
// current values.
type Schema struct {
	name   string
	params []*Parameter
	index  map[string]*Parameter
	values map[string]any

	ownerMu sync.Mutex
	owner   string
}

// NewSchema validates the declarations, resolves dependent parameters and
// seeds every value with its default.
func NewSchema(name string, params ...*Parameter) (*Schema, error) {
	s := &Schema{
		name:   strings.TrimSpace(name),
		index:  make(map[string]*Parameter, len(params)),
		values: make(map[string]any, len(params)),
	}

	for _, p := range params {
		if p == nil {
			continue
		}
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			return nil, fmt.Errorf("param: parameter name is required")
		}
		if p.Name == IdentityField {
			return nil, fmt.Errorf("%w: %q", ErrReservedName, p.Name)
		}
		if _, exists := s.index[p.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateParameter, p.Name)
		}
		if p.Kind == "" {
			p.Kind = KindParameter
		}
		if p.HasRange() && p.Objects == nil {
			p.Objects = NewOptions()
		}
		if p.HasPath() {
			if err := p.Update(); err != nil {
				return nil, err
			}
		}

		if p.Kind != KindAction {
			value, err := p.normalize(p.Default)
			if err != nil {
				return nil, &ValidationError{Param: p.Name, Value: p.Default, Err: err}
			}
			p.Default = value
			s.values[p.Name] = value
		}

		s.index[p.Name] = p
		s.params = append(s.params, p)
	}

	return s, nil
}

// Name returns the schema identity.
func (s *Schema) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Parameters returns the declared parameters in declaration order.
func (s *Schema) Parameters() []*Parameter {
	if s == nil {
		return nil
	}
	return append([]*Parameter(nil), s.params...)
}

// Parameter looks a declaration up by name.
func (s *Schema) Parameter(name string) (*Parameter, bool) {
	if s == nil {
		return nil, false
	}
	p, ok := s.index[name]
	return p, ok
}

// Names returns the identity field followed by every parameter name.
func (s *Schema) Names() []string {
	names := []string{IdentityField}
	for _, p := range s.Parameters() {
		names = append(names, p.Name)
	}
	return names
}

// Get returns the current value of name. The identity field resolves to the
// schema name.
func (s *Schema) Get(name string) (any, bool) {
	if s == nil {
		return nil, false
	}
	if name == IdentityField {
		return s.name, true
	}
	if _, ok := s.index[name]; !ok {
		return nil, false
	}
	return s.values[name], true
}

// Set validates and stores value for name.
func (s *Schema) Set(name string, value any) error {
	p, ok := s.Parameter(name)
	if !ok {
		return &ValidationError{Param: name, Value: value, Err: ErrUnknownParameter}
	}
	if p.Constant {
		return &ValidationError{Param: name, Value: value, Err: ErrConstant}
	}
	normalized, err := p.normalize(value)
	if err != nil {
		return &ValidationError{Param: name, Value: value, Err: err}
	}
	s.values[name] = normalized
	return nil
}

// SetPath changes the path attribute of a dependent parameter and refreshes
// its objects and default. The current value is left untouched.
func (s *Schema) SetPath(name, path string) error {
	p, ok := s.Parameter(name)
	if !ok {
		return &ValidationError{Param: name, Value: path, Err: ErrUnknownParameter}
	}
	if !p.HasPath() {
		return fmt.Errorf("param: %s: %w", name, ErrNoPath)
	}
	previous := p.Path
	p.Path = path
	if err := p.Update(); err != nil {
		p.Path = previous
		return err
	}
	return nil
}

// Invoke runs the action bound to name.
func (s *Schema) Invoke(name string) error {
	p, ok := s.Parameter(name)
	if !ok {
		return &ValidationError{Param: name, Err: ErrUnknownParameter}
	}
	if p.Kind != KindAction {
		return fmt.Errorf("param: %s: %w", name, ErrNotAction)
	}
	if p.Action == nil {
		return nil
	}
	return p.Action(s)
}

// Values returns a copy of every current value keyed by name.
func (s *Schema) Values() map[string]any {
	if s == nil {
		return nil
	}
	out := make(map[string]any, len(s.values))
	for name, value := range s.values {
		out[name] = value
	}
	return out
}

// Claim records owner as the single holder of the schema. Claiming again
// with the same owner is a no-op; any other owner gets ErrSchemaBound until
// Release.
func (s *Schema) Claim(owner string) error {
	s.ownerMu.Lock()
	defer s.ownerMu.Unlock()
	if s.owner != "" && s.owner != owner {
		return fmt.Errorf("%w: %q held by %s", ErrSchemaBound, s.name, s.owner)
	}
	s.owner = owner
	return nil
}

// Release drops the claim of owner. Releasing a claim held by someone else
// does nothing.
func (s *Schema) Release(owner string) {
	s.ownerMu.Lock()
	defer s.ownerMu.Unlock()
	if s.owner == owner {
		s.owner = ""
	}
}
