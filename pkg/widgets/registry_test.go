package widgets

import (
	"errors"
	"testing"

	"github.com/goliatone/go-paramform/pkg/controls"
	"github.com/goliatone/go-paramform/pkg/model"
	"github.com/goliatone/go-paramform/pkg/param"
)

func ptr(v float64) *float64 { return &v }

func field(kind param.Kind) model.FieldDescriptor {
	return model.FieldDescriptor{Name: "f", Kind: kind, Lineage: kind.Lineage()}
}

func TestResolve_MostSpecificAncestorWins(t *testing.T) {
	reg := NewRegistry()

	cases := []struct {
		kind   param.Kind
		expect param.Kind
	}{
		{param.KindParameter, param.KindParameter},
		{param.KindString, param.KindString},
		{param.KindBoolean, param.KindBoolean},
		{param.KindNumber, param.KindNumber},
		{param.KindInteger, param.KindInteger},
		{param.KindSelector, param.KindSelector},
		{param.KindListSelector, param.KindListSelector},
		{param.KindFileSelector, param.KindSelector},
		{param.KindMultiFileSelector, param.KindListSelector},
		{param.KindAction, param.KindAction},
		{param.Kind("color"), param.KindParameter},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			_, matched, err := reg.Resolve(field(tc.kind))
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if matched != tc.expect {
				t.Fatalf("expected %s, got %s", tc.expect, matched)
			}
		})
	}
}

func TestResolve_ConstantOverridesKind(t *testing.T) {
	reg := NewRegistry()
	for _, kind := range []param.Kind{param.KindNumber, param.KindSelector, param.KindBoolean, param.KindAction} {
		desc := field(kind)
		desc.Constant = true
		factory, matched, err := reg.Resolve(desc)
		if err != nil {
			t.Fatalf("resolve %s: %v", kind, err)
		}
		if matched != ConstantKind {
			t.Fatalf("%s: expected constant override, got %s", kind, matched)
		}
		control, err := factory(Config{Name: "f", Value: 3})
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		if control.Type() != controls.TypeReadOnly || !control.Disabled() {
			t.Fatalf("%s: expected read-only control, got %s", kind, control.Type())
		}
	}
}

func TestNumericWidgets_BoundedSplit(t *testing.T) {
	cases := []struct {
		name    string
		factory Factory
		min     *float64
		max     *float64
		expect  controls.Type
	}{
		{"float both", FloatWidget, ptr(0), ptr(10), controls.TypeFloatSlider},
		{"float min only", FloatWidget, ptr(0), nil, controls.TypeFloatText},
		{"float max only", FloatWidget, nil, ptr(10), controls.TypeFloatText},
		{"float none", FloatWidget, nil, nil, controls.TypeFloatText},
		{"int both", IntWidget, ptr(0), ptr(10), controls.TypeIntSlider},
		{"int min only", IntWidget, ptr(0), nil, controls.TypeIntText},
		{"int max only", IntWidget, nil, ptr(10), controls.TypeIntText},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			control, err := tc.factory(Config{Name: "n", Value: 5, Min: tc.min, Max: tc.max})
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if control.Type() != tc.expect {
				t.Fatalf("expected %s, got %s", tc.expect, control.Type())
			}
		})
	}
}

func TestRegistry_FrozenRejectsRegistration(t *testing.T) {
	reg := NewRegistry()
	if !reg.Frozen() {
		t.Fatalf("expected NewRegistry to freeze")
	}
	if err := reg.Register("color", TextWidget); !errors.Is(err, ErrFrozen) {
		t.Fatalf("expected ErrFrozen, got %v", err)
	}
}

func TestRegistry_OverrideThroughOption(t *testing.T) {
	reg := NewRegistry(WithFactory(param.KindNumber, TextWidget))
	control, err := reg.Build(field(param.KindInteger), Config{Name: "n", Value: 2})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if control.Type() != controls.TypeIntText {
		t.Fatalf("integer should keep its own factory, got %s", control.Type())
	}
	control, err = reg.Build(field(param.KindNumber), Config{Name: "n", Value: 2})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if control.Type() != controls.TypeText {
		t.Fatalf("expected overridden text control, got %s", control.Type())
	}
}

func TestResolve_EmptyBuilderFails(t *testing.T) {
	reg := NewBuilder()
	if _, _, err := reg.Resolve(field(param.KindString)); !errors.Is(err, ErrNoFactory) {
		t.Fatalf("expected ErrNoFactory, got %v", err)
	}
	reg.MustRegister(param.KindParameter, TextWidget)
	if _, matched, err := reg.Resolve(field(param.KindString)); err != nil || matched != param.KindParameter {
		t.Fatalf("expected root fallback, got %s (%v)", matched, err)
	}
}

func TestRegistry_Kinds(t *testing.T) {
	kinds := NewRegistry().Kinds()
	if len(kinds) != 9 {
		t.Fatalf("expected 9 builtin kinds, got %v", kinds)
	}
}

func TestBuild_SelectorRejectsForeignValue(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Build(field(param.KindSelector), Config{
		Name:    "mode",
		Value:   "z",
		Options: param.NamedOptions("a", "b"),
	})
	if !errors.Is(err, controls.ErrNotAnOption) {
		t.Fatalf("expected ErrNotAnOption, got %v", err)
	}
}

func TestWithFactory_InvalidOverridePanics(t *testing.T) {
	cases := []struct {
		name    string
		kind    param.Kind
		factory Factory
	}{
		{name: "empty kind", kind: "", factory: TextWidget},
		{name: "nil factory", kind: param.KindString, factory: nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				rec := recover()
				err, ok := rec.(error)
				if !ok || !errors.Is(err, ErrInvalidFactory) {
					t.Fatalf("expected ErrInvalidFactory panic, got %v", rec)
				}
			}()
			NewRegistry(WithFactory(tc.kind, tc.factory))
		})
	}
}
