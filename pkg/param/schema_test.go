package param

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestSchema(t *testing.T) *Schema {
	t.Helper()
	schema, err := NewSchema("Example",
		Number("speed", 5, WithBounds(Between(0, 10)), WithPrecedence(1)),
		Integer("count", 2, WithBounds(AtLeast(0))),
		Selector("mode", []any{"a", "b"}, "a", WithPrecedence(2)),
		ListSelector("tags", []any{"x", "y", "z"}, []any{"x"}),
		Boolean("enabled", true),
		String("title", "hello", AsConstant()),
	)
	if err != nil {
		t.Fatalf("new schema: %v", err)
	}
	return schema
}

func TestNewSchema_SeedsDefaults(t *testing.T) {
	schema := newTestSchema(t)

	want := map[string]any{
		"speed":   5.0,
		"count":   2,
		"mode":    "a",
		"tags":    []any{"x"},
		"enabled": true,
		"title":   "hello",
	}
	if diff := cmp.Diff(want, schema.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if name, _ := schema.Get(IdentityField); name != "Example" {
		t.Fatalf("identity field: got %v", name)
	}
}

func TestNewSchema_RejectsInvalidDeclarations(t *testing.T) {
	if _, err := NewSchema("x", Number("a", 1), Number("a", 2)); !errors.Is(err, ErrDuplicateParameter) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if _, err := NewSchema("x", String("name", "n")); !errors.Is(err, ErrReservedName) {
		t.Fatalf("expected reserved name error, got %v", err)
	}
	if _, err := NewSchema("x", Number("a", 20, WithBounds(Between(0, 10)))); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected bounds error, got %v", err)
	}
}

func TestSchemaSet_Validation(t *testing.T) {
	schema := newTestSchema(t)

	cases := []struct {
		name  string
		field string
		value any
		err   error
	}{
		{"number in bounds", "speed", 7, nil},
		{"number above bounds", "speed", 11, ErrOutOfBounds},
		{"number from string", "speed", "3.5", nil},
		{"integer rejects fraction", "count", 1.5, ErrType},
		{"integer lower bound", "count", -1, ErrOutOfBounds},
		{"selector option", "mode", "b", nil},
		{"selector unknown option", "mode", "c", ErrNotAnOption},
		{"list selector subset", "tags", []string{"y", "z"}, nil},
		{"list selector foreign item", "tags", []any{"q"}, ErrNotAnOption},
		{"boolean type", "enabled", "yes", ErrType},
		{"constant", "title", "changed", ErrConstant},
		{"unknown", "missing", 1, ErrUnknownParameter},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := schema.Set(tc.field, tc.value)
			if tc.err == nil {
				if err != nil {
					t.Fatalf("set %s: %v", tc.field, err)
				}
				return
			}
			if !errors.Is(err, tc.err) {
				t.Fatalf("set %s: want %v, got %v", tc.field, tc.err, err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Param != tc.field {
				t.Fatalf("expected validation error for %s, got %#v", tc.field, err)
			}
		})
	}

	if got, _ := schema.Get("speed"); got != 3.5 {
		t.Fatalf("speed should hold last accepted value, got %v", got)
	}
}

func TestSchemaSetPath_CustomResolver(t *testing.T) {
	resolver := func(path string) (*Options, any, error) {
		if path == "letters" {
			return NewOptions(Option{Label: "a", Value: 1}, Option{Label: "b", Value: 2}), 3, nil
		}
		return NewOptions(Option{Label: "x", Value: 9}), 9, nil
	}
	schema, err := NewSchema("Deps", New("source", KindFileSelector, nil, WithResolver(resolver)))
	if err != nil {
		t.Fatalf("new schema: %v", err)
	}

	if err := schema.SetPath("source", "letters"); err != nil {
		t.Fatalf("set path: %v", err)
	}
	p, _ := schema.Parameter("source")
	want := map[string]any{"a": 1, "b": 2, "3": 3}
	if diff := cmp.Diff(want, p.Range().Map()); diff != "" {
		t.Fatalf("range mismatch (-want +got):\n%s", diff)
	}
	if p.Default != 3 || p.Path != "letters" {
		t.Fatalf("unexpected default/path: %v %q", p.Default, p.Path)
	}
}

func TestGlobResolver(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.csv", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}

	schema, err := NewSchema("Files",
		FileSelector("single", filepath.Join(dir, "*.csv")),
		MultiFileSelector("many", filepath.Join(dir, "*.csv")),
	)
	if err != nil {
		t.Fatalf("new schema: %v", err)
	}

	first := filepath.Join(dir, "a.csv")
	second := filepath.Join(dir, "b.csv")

	if got, _ := schema.Get("single"); got != first {
		t.Fatalf("single default: want %q, got %v", first, got)
	}
	if diff := cmp.Diff([]any{first, second}, mustGet(t, schema, "many")); diff != "" {
		t.Fatalf("multi default mismatch (-want +got):\n%s", diff)
	}

	if err := schema.SetPath("single", filepath.Join(dir, "*.none")); err != nil {
		t.Fatalf("set path: %v", err)
	}
	p, _ := schema.Parameter("single")
	if p.Default != nil || p.Range().Len() != 0 {
		t.Fatalf("expected empty resolution, got default %v range %v", p.Default, p.Range().Labels())
	}
}

func TestSchemaInvoke(t *testing.T) {
	called := 0
	schema, err := NewSchema("Actions",
		Action("run", func(s *Schema) error {
			called++
			return nil
		}),
		Number("n", 1),
	)
	if err != nil {
		t.Fatalf("new schema: %v", err)
	}
	if err := schema.Invoke("run"); err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if called != 1 {
		t.Fatalf("action should run once, ran %d", called)
	}
	if err := schema.Invoke("n"); !errors.Is(err, ErrNotAction) {
		t.Fatalf("expected not-action error, got %v", err)
	}
}

func mustGet(t *testing.T, schema *Schema, name string) any {
	t.Helper()
	value, ok := schema.Get(name)
	if !ok {
		t.Fatalf("value %q missing", name)
	}
	return value
}

func TestSchemaClaim(t *testing.T) {
	schema, err := NewSchema("demo", Number("n", 1))
	if err != nil {
		t.Fatalf("new schema: %v", err)
	}
	if err := schema.Claim("a"); err != nil {
		t.Fatalf("claim: %v", err)
	}
	if err := schema.Claim("a"); err != nil {
		t.Fatalf("reclaim by the owner: %v", err)
	}
	if err := schema.Claim("b"); !errors.Is(err, ErrSchemaBound) {
		t.Fatalf("expected ErrSchemaBound, got %v", err)
	}
	schema.Release("b")
	if err := schema.Claim("b"); !errors.Is(err, ErrSchemaBound) {
		t.Fatalf("foreign release must not drop the claim, got %v", err)
	}
	schema.Release("a")
	if err := schema.Claim("b"); err != nil {
		t.Fatalf("claim after release: %v", err)
	}
}
