package controls

import "fmt"

// Text is a free text entry. Every value is stored as a string.
type Text struct {
	base
}

var _ Control = (*Text)(nil)

// NewText builds a text entry seeded with the stringified spec value.
func NewText(spec Spec) *Text {
	t := &Text{base: newBase(TypeText, spec)}
	t.value = stringify(spec.Value)
	return t
}

// SetValue stores the stringified value.
func (t *Text) SetValue(value any) error {
	return t.commit(t, stringify(value))
}

// ReadOnly displays a value that can never be edited.
type ReadOnly struct {
	base
}

var _ Control = (*ReadOnly)(nil)

// NewReadOnly builds a read-only display of the spec value.
func NewReadOnly(spec Spec) *ReadOnly {
	r := &ReadOnly{base: newBase(TypeReadOnly, spec)}
	r.value = stringify(spec.Value)
	return r
}

// SetValue always fails.
func (r *ReadOnly) SetValue(any) error {
	return fmt.Errorf("%w: %s", ErrReadOnly, r.name)
}

// Disabled reports true.
func (r *ReadOnly) Disabled() bool { return true }

func stringify(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
