package paramform_test

import (
	"context"
	"io/fs"
	"testing"
	"testing/fstest"

	paramform "github.com/goliatone/go-paramform"
	"github.com/goliatone/go-paramform/pkg/binding"
	"github.com/goliatone/go-paramform/pkg/param"
)

func TestEmbeddedTemplates(t *testing.T) {
	if _, err := fs.Stat(paramform.EmbeddedTemplates(), "controls.tpl"); err != nil {
		t.Fatalf("expected controls.tpl: %v", err)
	}
}

func TestLoadSchemaFileAndSession(t *testing.T) {
	fsys := fstest.MapFS{
		"demo.yaml": {Data: []byte("name: demo\nparameters:\n  - name: level\n    type: int\n    default: 2\n")},
	}
	schema, err := paramform.LoadSchemaFile(fsys, "demo.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	fired := 0
	session, err := paramform.NewSession(schema, binding.WithCallback(func(*param.Schema) error {
		fired++
		return nil
	}))
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	defer session.Close()

	b, err := session.Bind("level")
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	if err := b.Control().SetValue(4); err != nil {
		t.Fatalf("set: %v", err)
	}
	if value, _ := schema.Get("level"); value != 4 || fired != 1 {
		t.Fatalf("expected write-back and one fire, got %v and %d", value, fired)
	}
}

func TestShow_UnknownSink(t *testing.T) {
	schema, err := param.NewSchema("demo", param.Boolean("on", false))
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	if _, err := paramform.Show(context.Background(), schema, "nope"); err == nil {
		t.Fatalf("expected error for unknown sink")
	}
}
