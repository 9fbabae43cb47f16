package controls

import (
	"errors"
	"reflect"

	"github.com/goliatone/go-paramform/pkg/param"
)

// Type identifies the rendering strategy of a control.
type Type string

const (
	TypeText           Type = "text"
	TypeReadOnly       Type = "readonly"
	TypeCheckbox       Type = "checkbox"
	TypeFloatSlider    Type = "float-slider"
	TypeFloatText      Type = "float-text"
	TypeIntSlider      Type = "int-slider"
	TypeIntText        Type = "int-text"
	TypeDropdown       Type = "dropdown"
	TypeSelectMultiple Type = "select-multiple"
	TypeButton         Type = "button"
)

var (
	// ErrReadOnly is returned when writing to a read-only control.
	ErrReadOnly = errors.New("controls: control is read-only")
	// ErrNotAnOption is returned when a selection is not in the option set.
	ErrNotAnOption = errors.New("controls: value is not an option")
	// ErrInvalidValue is returned when a value cannot be coerced.
	ErrInvalidValue = errors.New("controls: invalid value")
)

// Spec carries the construction parameters shared by every control.
type Spec struct {
	Name    string
	Tooltip string
	Value   any
	Options *param.Options
	Min     float64
	Max     float64
	OnClick func() error
}

// Event describes one committed value change.
type Event struct {
	Control Control
	Name    string
	Old     any
	New     any
}

// Handler receives change events. A returned error aborts the remaining
// handlers and is reported to whoever committed the change.
type Handler interface {
	HandleChange(Event) error
}

// HandlerFunc adapts a function into a Handler.
type HandlerFunc func(Event) error

// HandleChange calls fn.
func (fn HandlerFunc) HandleChange(evt Event) error {
	return fn(evt)
}

// Control is the common contract of every live control.
type Control interface {
	Name() string
	Type() Type
	Tooltip() string
	Value() any
	SetValue(value any) error
	Observe(handler Handler) *Subscription
	Disabled() bool
}

// Selectable controls expose a mutable option set.
type Selectable interface {
	Control
	Options() *param.Options
	// MergeOptions adds entries without removing any existing option.
	MergeOptions(extra *param.Options)
	// SetOptions replaces the option set. A current value that is no longer
	// legal is reset to the first option.
	SetOptions(options *param.Options) error
}

// Ranged controls expose numeric limits.
type Ranged interface {
	Control
	Range() (min, max float64)
}

// Pressable controls run click handlers when pressed.
type Pressable interface {
	Control
	Label() string
	Press() error
}

// Subscription detaches a handler when cancelled.
type Subscription struct {
	owner *base
	id    int
}

// Cancel stops further deliveries. It is safe to call more than once.
func (s *Subscription) Cancel() {
	if s == nil || s.owner == nil {
		return
	}
	s.owner.unsubscribe(s.id)
	s.owner = nil
}

type observer struct {
	id      int
	handler Handler
}

type base struct {
	name      string
	tooltip   string
	typ       Type
	value     any
	observers []observer
	nextID    int
}

func newBase(typ Type, spec Spec) base {
	return base{name: spec.Name, tooltip: spec.Tooltip, typ: typ}
}

func (b *base) Name() string    { return b.name }
func (b *base) Type() Type      { return b.typ }
func (b *base) Tooltip() string { return b.tooltip }
func (b *base) Value() any      { return b.value }
func (b *base) Disabled() bool  { return false }

func (b *base) Observe(handler Handler) *Subscription {
	if handler == nil {
		return &Subscription{}
	}
	b.nextID++
	b.observers = append(b.observers, observer{id: b.nextID, handler: handler})
	return &Subscription{owner: b, id: b.nextID}
}

func (b *base) unsubscribe(id int) {
	for i, obs := range b.observers {
		if obs.id == id {
			b.observers = append(b.observers[:i:i], b.observers[i+1:]...)
			return
		}
	}
}

// AppliedError wraps a handler error raised after the change was accepted.
// The control keeps the new value for it.
type AppliedError struct {
	Err error
}

func (e *AppliedError) Error() string { return e.Err.Error() }

func (e *AppliedError) Unwrap() error { return e.Err }

// commit stores value and notifies observers when it differs from the
// current one. A handler error restores the previous value unless it is an
// *AppliedError; handlers already notified are not told about the restore.
func (b *base) commit(self Control, value any) error {
	if reflect.DeepEqual(b.value, value) {
		return nil
	}
	old := b.value
	b.value = value
	evt := Event{Control: self, Name: b.name, Old: old, New: value}
	for _, obs := range append([]observer(nil), b.observers...) {
		if err := obs.handler.HandleChange(evt); err != nil {
			var applied *AppliedError
			if !errors.As(err, &applied) {
				b.value = old
			}
			return err
		}
	}
	return nil
}
