package controls

import (
	"fmt"
	"math"

	"github.com/goliatone/go-paramform/pkg/param"
)

// FloatSlider selects a real value inside [min, max]. Writes outside the
// range are clamped.
type FloatSlider struct {
	base
	min, max float64
}

var _ Ranged = (*FloatSlider)(nil)

// NewFloatSlider builds a bounded real-valued slider.
func NewFloatSlider(spec Spec) (*FloatSlider, error) {
	if spec.Min > spec.Max {
		return nil, fmt.Errorf("%w: slider %s has min %v above max %v", ErrInvalidValue, spec.Name, spec.Min, spec.Max)
	}
	s := &FloatSlider{base: newBase(TypeFloatSlider, spec), min: spec.Min, max: spec.Max}
	value, err := initialFloat(spec.Value, spec.Min)
	if err != nil {
		return nil, err
	}
	s.value = clamp(value, s.min, s.max)
	return s, nil
}

// Range returns the slider limits.
func (s *FloatSlider) Range() (float64, float64) { return s.min, s.max }

// SetValue coerces and clamps value.
func (s *FloatSlider) SetValue(value any) error {
	f, err := coerceFloat(value)
	if err != nil {
		return err
	}
	return s.commit(s, clamp(f, s.min, s.max))
}

// FloatText is an unbounded real-valued entry.
type FloatText struct {
	base
}

var _ Control = (*FloatText)(nil)

// NewFloatText builds an unbounded real-valued entry.
func NewFloatText(spec Spec) (*FloatText, error) {
	t := &FloatText{base: newBase(TypeFloatText, spec)}
	value, err := initialFloat(spec.Value, 0)
	if err != nil {
		return nil, err
	}
	t.value = value
	return t, nil
}

// SetValue coerces value to float64.
func (t *FloatText) SetValue(value any) error {
	f, err := coerceFloat(value)
	if err != nil {
		return err
	}
	return t.commit(t, f)
}

// IntSlider selects an integer inside [min, max].
type IntSlider struct {
	base
	min, max int
}

var _ Ranged = (*IntSlider)(nil)

// NewIntSlider builds a bounded integer slider. Fractional limits are
// narrowed inwards.
func NewIntSlider(spec Spec) (*IntSlider, error) {
	min, max := int(math.Ceil(spec.Min)), int(math.Floor(spec.Max))
	if min > max {
		return nil, fmt.Errorf("%w: slider %s has min %v above max %v", ErrInvalidValue, spec.Name, spec.Min, spec.Max)
	}
	s := &IntSlider{base: newBase(TypeIntSlider, spec), min: min, max: max}
	value, err := initialInt(spec.Value, min)
	if err != nil {
		return nil, err
	}
	s.value = clampInt(value, min, max)
	return s, nil
}

// Range returns the slider limits.
func (s *IntSlider) Range() (float64, float64) { return float64(s.min), float64(s.max) }

// SetValue coerces and clamps value.
func (s *IntSlider) SetValue(value any) error {
	i, err := coerceInt(value)
	if err != nil {
		return err
	}
	return s.commit(s, clampInt(i, s.min, s.max))
}

// IntText is an unbounded integer entry.
type IntText struct {
	base
}

var _ Control = (*IntText)(nil)

// NewIntText builds an unbounded integer entry.
func NewIntText(spec Spec) (*IntText, error) {
	t := &IntText{base: newBase(TypeIntText, spec)}
	value, err := initialInt(spec.Value, 0)
	if err != nil {
		return nil, err
	}
	t.value = value
	return t, nil
}

// SetValue coerces value to int.
func (t *IntText) SetValue(value any) error {
	i, err := coerceInt(value)
	if err != nil {
		return err
	}
	return t.commit(t, i)
}

func coerceFloat(value any) (float64, error) {
	f, err := param.ToFloat(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return f, nil
}

func coerceInt(value any) (int, error) {
	i, err := param.ToInt(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return i, nil
}

func initialFloat(value any, fallback float64) (float64, error) {
	if value == nil {
		return fallback, nil
	}
	return coerceFloat(value)
}

func initialInt(value any, fallback int) (int, error) {
	if value == nil {
		return fallback, nil
	}
	return coerceInt(value)
}

func clamp(value, min, max float64) float64 {
	return math.Max(min, math.Min(max, value))
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
