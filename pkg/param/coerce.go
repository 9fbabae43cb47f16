package param

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// ToFloat converts numeric values and numeric strings to float64.
func ToFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrType, v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %T is not a number", ErrType, value)
	}
}

// ToInt converts integral values to int. Floats are accepted only when they
// carry no fractional part.
func ToInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if i, err := strconv.Atoi(trimmed); err == nil {
			return i, nil
		}
	}
	f, err := ToFloat(value)
	if err != nil {
		return 0, err
	}
	if math.Trunc(f) != f || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %v is not an integer", ErrType, value)
	}
	return int(f), nil
}

// ToList converts any slice value to []any.
func ToList(value any) ([]any, error) {
	if value == nil {
		return []any{}, nil
	}
	if list, ok := value.([]any); ok {
		return append([]any{}, list...), nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: %T is not a list", ErrType, value)
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

// normalize validates value against p and returns its canonical form.
func (p *Parameter) normalize(value any) (any, error) {
	switch {
	case p.Kind == KindAction:
		return nil, ErrType
	case p.Kind.Is(KindInteger):
		i, err := ToInt(value)
		if err != nil {
			return nil, err
		}
		if err := p.checkBounds(float64(i)); err != nil {
			return nil, err
		}
		return i, nil
	case p.Kind.Is(KindNumber):
		f, err := ToFloat(value)
		if err != nil {
			return nil, err
		}
		if err := p.checkBounds(f); err != nil {
			return nil, err
		}
		return f, nil
	case p.Kind.Is(KindBoolean):
		b, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: %T is not a boolean", ErrType, value)
		}
		return b, nil
	case p.Kind.Is(KindString):
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %T is not a string", ErrType, value)
		}
		return s, nil
	case p.Kind.Is(KindListSelector):
		list, err := ToList(value)
		if err != nil {
			return nil, err
		}
		for _, item := range list {
			if !p.Objects.Contains(item) {
				return nil, ErrNotAnOption
			}
		}
		return list, nil
	case p.Kind.Is(KindSelector):
		if value == nil {
			return nil, nil
		}
		if !p.Objects.Contains(value) {
			return nil, ErrNotAnOption
		}
		return value, nil
	default:
		return value, nil
	}
}

func (p *Parameter) checkBounds(value float64) error {
	if p.Bounds == nil {
		return nil
	}
	if p.Bounds.Min != nil && value < *p.Bounds.Min {
		return ErrOutOfBounds
	}
	if p.Bounds.Max != nil && value > *p.Bounds.Max {
		return ErrOutOfBounds
	}
	return nil
}
