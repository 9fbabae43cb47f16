package widgets

import "github.com/goliatone/go-paramform/pkg/controls"

// TextWidget is the universal fallback: a free text entry.
func TextWidget(cfg Config) (controls.Control, error) {
	return controls.NewText(spec(cfg)), nil
}

// ReadOnlyWidget renders the value as non-editable text.
func ReadOnlyWidget(cfg Config) (controls.Control, error) {
	return controls.NewReadOnly(spec(cfg)), nil
}

// CheckboxWidget renders booleans.
func CheckboxWidget(cfg Config) (controls.Control, error) {
	return controls.NewCheckbox(spec(cfg)), nil
}

// FloatWidget renders a slider when both bounds are present and a plain
// numeric entry otherwise.
func FloatWidget(cfg Config) (controls.Control, error) {
	if cfg.Bounded() {
		return controls.NewFloatSlider(spec(cfg))
	}
	return controls.NewFloatText(spec(cfg))
}

// IntWidget is the integer counterpart of FloatWidget.
func IntWidget(cfg Config) (controls.Control, error) {
	if cfg.Bounded() {
		return controls.NewIntSlider(spec(cfg))
	}
	return controls.NewIntText(spec(cfg))
}

// DropdownWidget renders single selection.
func DropdownWidget(cfg Config) (controls.Control, error) {
	return controls.NewDropdown(spec(cfg))
}

// SelectMultipleWidget renders multi selection.
func SelectMultipleWidget(cfg Config) (controls.Control, error) {
	return controls.NewSelectMultiple(spec(cfg))
}

// ButtonWidget renders actions.
func ButtonWidget(cfg Config) (controls.Control, error) {
	return controls.NewButton(spec(cfg)), nil
}

func spec(cfg Config) controls.Spec {
	s := controls.Spec{
		Name:    cfg.Name,
		Tooltip: cfg.Tooltip,
		Value:   cfg.Value,
		Options: cfg.Options,
		OnClick: cfg.Action,
	}
	if cfg.Min != nil {
		s.Min = *cfg.Min
	}
	if cfg.Max != nil {
		s.Max = *cfg.Max
	}
	return s
}
