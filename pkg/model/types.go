package model

import "github.com/goliatone/go-paramform/pkg/param"

// Capability flags what a field can do beyond holding a value.
type Capability uint8

const (
	// CapRange marks fields exposing a legal option set.
	CapRange Capability = 1 << iota
	// CapSoftBounds marks fields exposing a numeric display range.
	CapSoftBounds
	// CapPath marks fields whose options depend on an editable path.
	CapPath
)

// Bounds is the resolved display range of a numeric field.
type Bounds struct {
	Min *float64
	Max *float64
}

// Complete reports whether both limits are present.
func (b *Bounds) Complete() bool {
	return b != nil && b.Min != nil && b.Max != nil
}

// FieldDescriptor is the normalised view of one schema parameter.
type FieldDescriptor struct {
	Name             string
	Kind             param.Kind
	Lineage          []param.Kind
	Value            any
	Bounds           *Bounds
	Options          *param.Options
	Constant         bool
	Doc              string
	Precedence       *float64
	HasDependentPath bool
	Path             string
	Capabilities     Capability
	// Index is the declaration position inside the schema.
	Index int
}

// Has reports whether the descriptor carries capability c.
func (d FieldDescriptor) Has(c Capability) bool {
	return d.Capabilities&c != 0
}

// Tier returns the precedence used for layout grouping; missing precedence
// counts as tier 0.
func (d FieldDescriptor) Tier() float64 {
	if d.Precedence == nil {
		return 0
	}
	return *d.Precedence
}

// Hidden reports whether the field carries a negative precedence.
func (d FieldDescriptor) Hidden() bool {
	return d.Precedence != nil && *d.Precedence < 0
}

// Snapshot is the introspected form of a schema: its identity plus one
// descriptor per declared parameter.
type Snapshot struct {
	Identity string
	Fields   []FieldDescriptor
}

// Field returns the descriptor for name.
func (s Snapshot) Field(name string) (FieldDescriptor, bool) {
	for _, field := range s.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return FieldDescriptor{}, false
}

// Names lists the field names in declaration order.
func (s Snapshot) Names() []string {
	names := make([]string, len(s.Fields))
	for i, field := range s.Fields {
		names[i] = field.Name
	}
	return names
}
