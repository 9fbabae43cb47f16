package controls

import (
	"fmt"

	"github.com/goliatone/go-paramform/pkg/param"
)

// Dropdown selects a single value from an ordered option set. A nil value
// means nothing is selected.
type Dropdown struct {
	base
	options *param.Options
}

var _ Selectable = (*Dropdown)(nil)

// NewDropdown builds a dropdown. The initial value must be nil or one of the
// options.
func NewDropdown(spec Spec) (*Dropdown, error) {
	d := &Dropdown{base: newBase(TypeDropdown, spec), options: spec.Options.Clone()}
	if spec.Value != nil && !d.options.Contains(spec.Value) {
		return nil, fmt.Errorf("%w: %s=%v", ErrNotAnOption, spec.Name, spec.Value)
	}
	d.value = spec.Value
	return d, nil
}

// Options returns a copy of the option set.
func (d *Dropdown) Options() *param.Options { return d.options.Clone() }

// Label returns the label of the selected option.
func (d *Dropdown) Label() string {
	label, _ := d.options.LabelOf(d.value)
	return label
}

// SetValue selects value, which must be nil or a present option.
func (d *Dropdown) SetValue(value any) error {
	if value != nil && !d.options.Contains(value) {
		return fmt.Errorf("%w: %s=%v", ErrNotAnOption, d.name, value)
	}
	return d.commit(d, value)
}

// SelectLabel selects the option stored under label.
func (d *Dropdown) SelectLabel(label string) error {
	value, ok := d.options.Get(label)
	if !ok {
		return fmt.Errorf("%w: %s label %q", ErrNotAnOption, d.name, label)
	}
	return d.SetValue(value)
}

// MergeOptions unions extra into the option set.
func (d *Dropdown) MergeOptions(extra *param.Options) {
	d.options.Merge(extra)
}

// SetOptions replaces the option set, resetting a value that is no longer
// legal to the first option (nil when empty).
func (d *Dropdown) SetOptions(options *param.Options) error {
	d.options = options.Clone()
	if d.value == nil || d.options.Contains(d.value) {
		return nil
	}
	var next any
	if values := d.options.Values(); len(values) > 0 {
		next = values[0]
	}
	return d.commit(d, next)
}

// SelectMultiple selects any subset of an ordered option set. Its value is
// always a []any.
type SelectMultiple struct {
	base
	options *param.Options
}

var _ Selectable = (*SelectMultiple)(nil)

// NewSelectMultiple builds a multi-select whose initial values must all be
// options.
func NewSelectMultiple(spec Spec) (*SelectMultiple, error) {
	s := &SelectMultiple{base: newBase(TypeSelectMultiple, spec), options: spec.Options.Clone()}
	values, err := s.check(spec.Value)
	if err != nil {
		return nil, err
	}
	s.value = values
	return s, nil
}

// Options returns a copy of the option set.
func (s *SelectMultiple) Options() *param.Options { return s.options.Clone() }

// Selected returns the selected values.
func (s *SelectMultiple) Selected() []any {
	values, _ := s.value.([]any)
	return append([]any{}, values...)
}

// SetValue selects values; every element must be an option.
func (s *SelectMultiple) SetValue(value any) error {
	values, err := s.check(value)
	if err != nil {
		return err
	}
	return s.commit(s, values)
}

// SelectLabels selects the options stored under labels.
func (s *SelectMultiple) SelectLabels(labels []string) error {
	values := make([]any, 0, len(labels))
	for _, label := range labels {
		value, ok := s.options.Get(label)
		if !ok {
			return fmt.Errorf("%w: %s label %q", ErrNotAnOption, s.name, label)
		}
		values = append(values, value)
	}
	return s.SetValue(values)
}

// MergeOptions unions extra into the option set.
func (s *SelectMultiple) MergeOptions(extra *param.Options) {
	s.options.Merge(extra)
}

// SetOptions replaces the option set and drops selections that are no longer
// legal.
func (s *SelectMultiple) SetOptions(options *param.Options) error {
	s.options = options.Clone()
	kept := make([]any, 0)
	for _, value := range s.Selected() {
		if s.options.Contains(value) {
			kept = append(kept, value)
		}
	}
	return s.commit(s, kept)
}

func (s *SelectMultiple) check(value any) ([]any, error) {
	values, err := param.ToList(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	for _, item := range values {
		if !s.options.Contains(item) {
			return nil, fmt.Errorf("%w: %s=%v", ErrNotAnOption, s.name, item)
		}
	}
	return values, nil
}
