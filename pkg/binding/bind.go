package binding

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-paramform/pkg/controls"
	"github.com/goliatone/go-paramform/pkg/model"
	"github.com/goliatone/go-paramform/pkg/param"
	"github.com/goliatone/go-paramform/pkg/widgets"
)

// ControlBinding owns the live control of one field together with its change
// subscription.
type ControlBinding struct {
	session *Session
	field   model.FieldDescriptor
	kind    param.Kind
	control controls.Control
	sub     *controls.Subscription
	path    *DependentPathBinding
}

// Name returns the bound field name.
func (b *ControlBinding) Name() string { return b.field.Name }

// Field returns the descriptor the control was built from.
func (b *ControlBinding) Field() model.FieldDescriptor { return b.field }

// Kind returns the registry kind whose factory built the control.
func (b *ControlBinding) Kind() param.Kind { return b.kind }

// Control returns the live control.
func (b *ControlBinding) Control() controls.Control { return b.control }

// Path returns the dependent path binding, nil for fields without a path.
func (b *ControlBinding) Path() *DependentPathBinding { return b.path }

func (b *ControlBinding) release() {
	b.sub.Cancel()
	if b.path != nil {
		b.path.sub.Cancel()
	}
}

// Bind returns the binding for name, creating the control on first use.
// Repeated calls return the same binding.
func (s *Session) Bind(name string) (*ControlBinding, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if binding, ok := s.bindings[name]; ok {
		return binding, nil
	}
	if name == param.IdentityField {
		return nil, ErrIdentityField
	}

	field, err := model.Describe(s.schema, name)
	if err != nil {
		return nil, fmt.Errorf("binding: bind %q: %w", name, err)
	}
	factory, kind, err := s.registry.Resolve(field)
	if err != nil {
		return nil, fmt.Errorf("binding: bind %q: %w", name, err)
	}
	control, err := factory(s.controlConfig(field))
	if err != nil {
		return nil, fmt.Errorf("binding: bind %q: %w", name, err)
	}

	binding := &ControlBinding{
		session: s,
		field:   field,
		kind:    kind,
		control: control,
	}
	binding.sub = control.Observe(changeHandler{session: s, field: name, source: SourceValue})

	if field.Has(model.CapPath) && !field.Constant {
		path, err := newDependentPathBinding(binding)
		if err != nil {
			binding.release()
			return nil, fmt.Errorf("binding: bind %q: %w", name, err)
		}
		binding.path = path
	}

	s.bindings[name] = binding
	s.order = append(s.order, name)
	s.logger.WithFields(logrus.Fields{
		"field":   name,
		"control": control.Type(),
		"kind":    kind,
	}).Debug("bound field")
	return binding, nil
}

func (s *Session) controlConfig(field model.FieldDescriptor) widgets.Config {
	cfg := widgets.Config{
		Name:    field.Name,
		Value:   field.Value,
		Options: field.Options,
	}
	if s.cfg.Tooltips {
		cfg.Tooltip = field.Doc
	}
	if field.Bounds != nil {
		cfg.Min, cfg.Max = field.Bounds.Min, field.Bounds.Max
	}
	if field.Kind == param.KindAction {
		name := field.Name
		cfg.Value = nil
		cfg.Action = func() error {
			return s.schema.Invoke(name)
		}
	}
	return cfg
}

// Source distinguishes the control that raised a change.
type Source int

const (
	// SourceValue is the field's own control.
	SourceValue Source = iota
	// SourcePath is the dependent path entry of the field.
	SourcePath
)

func (src Source) String() string {
	if src == SourcePath {
		return "path"
	}
	return "value"
}

// ControlEvent is the single typed event every control change is dispatched
// through.
type ControlEvent struct {
	Field  string
	Source Source
	Old    any
	New    any
}

// changeHandler routes control events of one field back to its session.
type changeHandler struct {
	session *Session
	field   string
	source  Source
}

func (h changeHandler) HandleChange(evt controls.Event) error {
	return h.session.onControlChanged(ControlEvent{
		Field:  h.field,
		Source: h.source,
		Old:    evt.Old,
		New:    evt.New,
	})
}

func (s *Session) onControlChanged(evt ControlEvent) error {
	if s.closed {
		return ErrClosed
	}
	binding, ok := s.bindings[evt.Field]
	if !ok {
		return fmt.Errorf("binding: change on unbound field %q", evt.Field)
	}
	log := s.logger.WithFields(logrus.Fields{
		"field":  evt.Field,
		"source": evt.Source.String(),
	})

	if evt.Source == SourcePath {
		path, _ := evt.New.(string)
		err := binding.path.refresh(path)
		if err != nil {
			log.WithError(err).Warn("path refresh failed")
		}
		return err
	}

	if err := s.schema.Set(evt.Field, evt.New); err != nil {
		log.WithError(err).Debug("rejected value")
		return err
	}
	log.WithField("value", evt.New).Debug("value committed")
	if s.Immediate() && s.deferred == 0 {
		return applied(s.Fire(s.ctx))
	}
	return nil
}

// applied marks trigger failures raised after the schema took the value, so
// the control keeps it.
func applied(err error) error {
	if err == nil {
		return nil
	}
	return &controls.AppliedError{Err: err}
}
