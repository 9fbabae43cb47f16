package controls

// Button runs its click handlers when pressed. It carries no value.
type Button struct {
	base
	label   string
	onClick []func() error
}

var _ Pressable = (*Button)(nil)

// NewButton builds a button labelled with the spec name.
func NewButton(spec Spec) *Button {
	b := &Button{base: newBase(TypeButton, spec), label: spec.Name}
	if spec.OnClick != nil {
		b.onClick = append(b.onClick, spec.OnClick)
	}
	return b
}

// NewLabelledButton builds a button whose caption differs from its name.
func NewLabelledButton(name, label string, onClick func() error) *Button {
	b := NewButton(Spec{Name: name, OnClick: onClick})
	b.label = label
	return b
}

// Label returns the caption.
func (b *Button) Label() string { return b.label }

// SetValue is a no-op; buttons have no value.
func (b *Button) SetValue(any) error { return nil }

// OnClick registers an additional click handler.
func (b *Button) OnClick(fn func() error) {
	if fn != nil {
		b.onClick = append(b.onClick, fn)
	}
}

// Press runs the click handlers in registration order, stopping at the first
// error.
func (b *Button) Press() error {
	for _, fn := range append([]func() error(nil), b.onClick...) {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}
