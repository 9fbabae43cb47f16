package schemafile_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-paramform/pkg/param"
	"github.com/goliatone/go-paramform/pkg/schemafile"
)

func TestLoad_JSON(t *testing.T) {
	schema, err := schemafile.Load(os.DirFS("testdata"), "plot.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if schema.Name() != "plot" {
		t.Fatalf("unexpected name %q", schema.Name())
	}

	want := map[string]any{
		"speed":   5.0,
		"mode":    "slow",
		"steps":   3,
		"version": "1.0",
	}
	if diff := cmp.Diff(want, schema.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}

	speed, _ := schema.Parameter("speed")
	if speed.Doc != "Speed in m/s" || speed.Precedence == nil || *speed.Precedence != 1 {
		t.Fatalf("speed metadata not parsed: %#v", speed)
	}
	if !speed.Bounds.Complete() {
		t.Fatalf("expected complete bounds, got %#v", speed.Bounds)
	}
	if err := schema.Set("speed", 11); !errors.Is(err, param.ErrOutOfBounds) {
		t.Fatalf("expected out of bounds, got %v", err)
	}

	steps, _ := schema.Parameter("steps")
	if steps.Kind != param.KindInteger {
		t.Fatalf("alias not resolved: %s", steps.Kind)
	}
	if _, max := steps.SoftBoundsRange(); max == nil || *max != 20 {
		t.Fatalf("soft bounds not parsed: %#v", steps.SoftBounds)
	}

	if err := schema.Set("version", "2.0"); !errors.Is(err, param.ErrConstant) {
		t.Fatalf("expected constant error, got %v", err)
	}
}

func TestLoad_YAMLLabels(t *testing.T) {
	schema, err := schemafile.Load(os.DirFS("testdata"), "colors.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if schema.Name() != "colors" {
		t.Fatalf("expected name derived from file, got %q", schema.Name())
	}
	palette, _ := schema.Parameter("palette")
	if diff := cmp.Diff([]string{"red", "green", "blue"}, palette.Range().Labels()); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
	value, _ := schema.Get("palette")
	if diff := cmp.Diff([]any{2}, value); diff != "" {
		t.Fatalf("default mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":          "   ",
		"garbage":        "{not: [valid",
		"unknown kind":   `{"parameters":[{"name":"a","type":"matrix"}]}`,
		"missing name":   `{"parameters":[{"type":"string"}]}`,
		"reserved":       `{"parameters":[{"name":"name","type":"string","default":""}]}`,
		"action":         `{"parameters":[{"name":"go","type":"action"}]}`,
		"label mismatch": `{"parameters":[{"name":"a","type":"selector","objects":[1,2],"labels":["one"]}]}`,
		"bad default":    `{"parameters":[{"name":"a","type":"selector","objects":[1,2],"default":3}]}`,
		"path":           `{"parameters":[{"name":"a","type":"selector","path":"x"}]}`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := schemafile.Parse([]byte(data), "case.json"); err == nil {
				t.Fatalf("expected error for %s", name)
			}
		})
	}
}

func TestParse_ActionAndResolver(t *testing.T) {
	data := []byte(`
name: tools
parameters:
  - name: run
    type: action
  - name: source
    type: selector
    path: first
`)
	invoked := 0
	resolver := func(path string) (*param.Options, any, error) {
		return param.NamedOptions(path+"-1", path+"-2"), path + "-2", nil
	}
	schema, err := schemafile.Parse(data, "tools.yaml",
		schemafile.WithAction("run", func(*param.Schema) error {
			invoked++
			return nil
		}),
		schemafile.WithResolver("source", resolver),
	)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := schema.Invoke("run"); err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if invoked != 1 {
		t.Fatalf("expected action to run once, got %d", invoked)
	}
	value, _ := schema.Get("source")
	if value != "first-2" {
		t.Fatalf("expected resolver default, got %v", value)
	}
}

func TestParse_FileSelectorGlob(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.csv", "skip.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	pattern := filepath.ToSlash(filepath.Join(dir, "*.csv"))
	data := fmt.Sprintf(`{"parameters":[{"name":"data","type":"file-selector","path":%q}]}`, pattern)

	schema, err := schemafile.Parse([]byte(data), "files.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	value, _ := schema.Get("data")
	if value != filepath.ToSlash(filepath.Join(dir, "a.csv")) && value != filepath.Join(dir, "a.csv") {
		t.Fatalf("expected first sorted match, got %v", value)
	}
	data2, _ := schema.Parameter("data")
	if got := data2.Range().Len(); got != 2 {
		t.Fatalf("expected 2 matches, got %d", got)
	}
}

func TestLoadFS_Store(t *testing.T) {
	store, err := schemafile.LoadFS(os.DirFS("testdata"))
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if diff := cmp.Diff([]string{"colors", "plot"}, store.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if source, _ := store.Source("plot"); source != "plot.json" {
		t.Fatalf("unexpected source %q", source)
	}

	first, err := store.Schema("plot")
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	if err := first.Set("speed", 7); err != nil {
		t.Fatalf("set: %v", err)
	}
	second, err := store.Schema("plot")
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	if value, _ := second.Get("speed"); value != 5.0 {
		t.Fatalf("schemas must not share values, got %v", value)
	}

	if _, err := store.Schema("missing"); !errors.Is(err, schemafile.ErrUnknownSchema) {
		t.Fatalf("expected ErrUnknownSchema, got %v", err)
	}
}

func TestLoadFS_Duplicate(t *testing.T) {
	fsys := fstest.MapFS{
		"a.json":     {Data: []byte(`{"name":"same","parameters":[]}`)},
		"b/c.yaml":   {Data: []byte("name: same\nparameters: []\n")},
		"notes.md":   {Data: []byte("ignored")},
		"empty.yaml": {Data: []byte("name: other\n")},
	}
	if _, err := schemafile.LoadFS(fsys); err == nil {
		t.Fatalf("expected duplicate schema error")
	}
}

func TestLoadFS_Nil(t *testing.T) {
	store, err := schemafile.LoadFS(nil)
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
}
