package controls

import (
	"fmt"
	"strconv"
	"strings"
)

// Checkbox toggles a boolean value.
type Checkbox struct {
	base
}

var _ Control = (*Checkbox)(nil)

// NewCheckbox builds a checkbox; non-boolean spec values start unchecked.
func NewCheckbox(spec Spec) *Checkbox {
	c := &Checkbox{base: newBase(TypeCheckbox, spec)}
	checked, _ := toBool(spec.Value)
	c.value = checked
	return c
}

// SetValue accepts booleans and their textual forms.
func (c *Checkbox) SetValue(value any) error {
	checked, err := toBool(value)
	if err != nil {
		return err
	}
	return c.commit(c, checked)
}

// Checked returns the current state.
func (c *Checkbox) Checked() bool {
	checked, _ := c.value.(bool)
	return checked
}

func toBool(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, v)
		}
		return b, nil
	default:
		return false, fmt.Errorf("%w: %T is not a boolean", ErrInvalidValue, value)
	}
}
