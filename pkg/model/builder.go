package model

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-paramform/pkg/param"
)

var (
	// ErrNilSchema is returned when introspecting a nil schema.
	ErrNilSchema = errors.New("model: schema is nil")
	// ErrDuplicateField is returned when two descriptors share a name.
	ErrDuplicateField = errors.New("model: duplicate field")
	// ErrUnknownField is returned by Describe for undeclared names.
	ErrUnknownField = errors.New("model: unknown field")
)

// Introspect produces one descriptor per declared parameter. The identity
// field is reported separately and never appears in Fields. A schema without
// parameters yields an empty, non-nil Fields slice.
func Introspect(schema *param.Schema) (Snapshot, error) {
	if schema == nil {
		return Snapshot{}, ErrNilSchema
	}

	params := schema.Parameters()
	snapshot := Snapshot{
		Identity: schema.Name(),
		Fields:   make([]FieldDescriptor, 0, len(params)),
	}
	seen := make(map[string]struct{}, len(params))

	for idx, p := range params {
		if p.Name == param.IdentityField {
			continue
		}
		if _, exists := seen[p.Name]; exists {
			return Snapshot{}, fmt.Errorf("%w: %q", ErrDuplicateField, p.Name)
		}
		seen[p.Name] = struct{}{}
		snapshot.Fields = append(snapshot.Fields, describe(schema, p, idx))
	}

	return snapshot, nil
}

// Describe builds the descriptor of a single field from the schema's current
// state.
func Describe(schema *param.Schema, name string) (FieldDescriptor, error) {
	if schema == nil {
		return FieldDescriptor{}, ErrNilSchema
	}
	for idx, p := range schema.Parameters() {
		if p.Name == name {
			return describe(schema, p, idx), nil
		}
	}
	return FieldDescriptor{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

func describe(schema *param.Schema, p *param.Parameter, idx int) FieldDescriptor {
	value, _ := schema.Get(p.Name)
	desc := FieldDescriptor{
		Name:     p.Name,
		Kind:     p.Kind,
		Lineage:  p.Kind.Lineage(),
		Value:    value,
		Constant: p.Constant,
		Doc:      p.Doc,
		Index:    idx,
	}
	if p.Kind == param.KindAction {
		desc.Value = p.Action
	}
	if p.Precedence != nil {
		precedence := *p.Precedence
		desc.Precedence = &precedence
	}
	if p.HasRange() {
		desc.Capabilities |= CapRange
		desc.Options = p.Range()
	}
	if p.HasSoftBounds() {
		desc.Capabilities |= CapSoftBounds
		min, max := p.SoftBoundsRange()
		desc.Bounds = &Bounds{Min: min, Max: max}
	}
	if p.HasPath() {
		desc.Capabilities |= CapPath
		desc.HasDependentPath = true
		desc.Path = p.Path
	}
	return desc
}
