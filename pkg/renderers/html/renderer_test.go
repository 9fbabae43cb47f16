package html

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-paramform/pkg/binding"
	"github.com/goliatone/go-paramform/pkg/param"
	"github.com/goliatone/go-paramform/pkg/render"
)

func newTreeSession(t *testing.T) *binding.Session {
	t.Helper()
	schema, err := param.NewSchema("Demo <Plot>",
		param.Number("speed", 5, param.WithBounds(param.Between(0, 10)), param.WithPrecedence(1),
			param.WithDoc(`Speed in <b>m/s</b> "fast"`)),
		param.Selector("mode", []any{"a", "b"}, "b", param.WithPrecedence(2)),
		param.Boolean("verbose", true, param.WithPrecedence(3)),
		param.ListSelector("tags", []any{"x", "y"}, []any{"y"}, param.WithPrecedence(4)),
		param.Integer("count", 3, param.WithPrecedence(5)),
		param.String("version", "1.0", param.AsConstant(), param.WithPrecedence(6)),
	)
	if err != nil {
		t.Fatalf("new schema: %v", err)
	}
	session, err := binding.NewSession(schema, binding.WithConfirmButton(true),
		binding.WithCallback(func(*param.Schema) error { return nil }))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	t.Cleanup(session.Close)
	return session
}

func TestShow_RendersControls(t *testing.T) {
	session := newTreeSession(t)
	var buf bytes.Buffer
	sink := New(WithWriter(&buf), WithID(session.ID().String()))
	if err := session.Display(context.Background(), sink); err != nil {
		t.Fatalf("display: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`data-session="` + session.ID().String() + `"`,
		`<b>Demo &lt;Plot&gt;</b>`,
		`type="range" id="pf-speed" name="speed" min="0" max="10" step="any" value="5"`,
		`title="Speed in m/s &quot;fast&quot;"`,
		`<option value="b" selected>b</option>`,
		`name="tags" multiple`,
		`<option value="y" selected>y</option>`,
		`type="checkbox" id="pf-verbose" name="verbose" checked`,
		`type="number" id="pf-count" name="count" value="3"`,
		`class="paramform-readonly">1.0</span>`,
		`<button type="submit" class="paramform-run">Run</button>`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<b>m/s</b>") {
		t.Fatalf("doc markup must be stripped:\n%s", out)
	}
	if strings.Index(out, `data-field="speed"`) > strings.Index(out, `data-field="mode"`) {
		t.Fatalf("rows out of order:\n%s", out)
	}
}

func TestRender_CustomTemplate(t *testing.T) {
	session := newTreeSession(t)
	tree, err := session.Tree()
	if err != nil {
		t.Fatalf("tree: %v", err)
	}
	fsys := fstest.MapFS{
		"names.tpl": {Data: []byte(`{% for row in rows %}{{ row.Name }};{% endfor %}`)},
	}
	out, err := New(WithTemplates(fsys), WithTemplateName("names.tpl")).Render(tree)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "speed;mode;verbose;tags;count;version;" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRender_MissingTemplate(t *testing.T) {
	_, err := New(WithTemplates(fstest.MapFS{})).Render(newTreeSessionTree(t))
	if err == nil {
		t.Fatalf("expected missing template error")
	}
}

func newTreeSessionTree(t *testing.T) render.Tree {
	t.Helper()
	tree, err := newTreeSession(t).Tree()
	if err != nil {
		t.Fatalf("tree: %v", err)
	}
	return tree
}
