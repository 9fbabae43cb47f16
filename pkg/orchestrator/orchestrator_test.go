package orchestrator_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-paramform/pkg/binding"
	"github.com/goliatone/go-paramform/pkg/controls"
	"github.com/goliatone/go-paramform/pkg/openapi"
	"github.com/goliatone/go-paramform/pkg/orchestrator"
	"github.com/goliatone/go-paramform/pkg/param"
	"github.com/goliatone/go-paramform/pkg/render"
	"github.com/goliatone/go-paramform/pkg/renderers/text"
	"github.com/goliatone/go-paramform/pkg/schemafile"
	"github.com/goliatone/go-paramform/pkg/testsupport"
)

func registryWith(t *testing.T, sinks ...render.Sink) *render.Registry {
	t.Helper()
	registry := render.NewRegistry()
	for _, sink := range sinks {
		registry.MustRegister(sink)
	}
	return registry
}

func TestStart_SchemaFileDrivesCallback(t *testing.T) {
	var got []map[string]any
	sink := &testsupport.RecordingSink{}
	sink.OnShow = func(tree render.Tree) error {
		row, ok := tree.Row("speed")
		if !ok {
			return errors.New("speed row missing")
		}
		return row.Control.SetValue(7.5)
	}

	orch := orchestrator.New(
		orchestrator.WithRegistry(registryWith(t, sink)),
		orchestrator.WithDefaultSink("recording"),
		orchestrator.WithSessionOptions(binding.WithCallback(func(s *param.Schema) error {
			got = append(got, s.Values())
			return nil
		})),
	)

	session, err := orch.Start(testsupport.Context(), orchestrator.Request{SchemaFile: "testdata/plot.json"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	defer session.Close()

	if len(got) != 1 {
		t.Fatalf("expected one callback, got %d", len(got))
	}
	if got[0]["speed"] != 7.5 {
		t.Fatalf("callback saw stale value: %#v", got[0])
	}

	trees := sink.Trees()
	if len(trees) != 1 {
		t.Fatalf("expected one display, got %d", len(trees))
	}
	if diff := cmp.Diff([]string{"steps", "version", "speed", "mode"}, trees[0].Names()); diff != "" {
		t.Fatalf("row order mismatch (-want +got):\n%s", diff)
	}
}

func TestStart_OpenAPIWithTextSink(t *testing.T) {
	var buf bytes.Buffer
	orch := orchestrator.New(
		orchestrator.WithRegistry(registryWith(t, text.New(text.WithWriter(&buf)))),
	)
	session, err := orch.Start(testsupport.Context(), orchestrator.Request{
		OpenAPI:   openapi.SourceFromFile("testdata/openapi.yaml"),
		Component: "Plot",
		Sink:      "text",
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	defer session.Close()

	out := buf.String()
	for _, want := range []string{"Plot settings", "speed", "mode", "Speed in m/s"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestStart_SchemaFSWithAction(t *testing.T) {
	fsys := fstest.MapFS{
		"tools.yaml": {Data: []byte("parameters:\n  - name: reset\n    type: action\n")},
	}
	pressed := 0
	sink := &testsupport.RecordingSink{OnShow: func(tree render.Tree) error {
		row, _ := tree.Row("reset")
		button, ok := row.Control.(*controls.Button)
		if !ok {
			return errors.New("reset is not a button")
		}
		return button.Press()
	}}
	orch := orchestrator.New(
		orchestrator.WithRegistry(registryWith(t, sink)),
		orchestrator.WithSchemaOptions(schemafile.WithAction("reset", func(*param.Schema) error {
			pressed++
			return nil
		})),
	)
	session, err := orch.Start(testsupport.Context(), orchestrator.Request{SchemaFile: "tools.yaml", SchemaFS: fsys})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	defer session.Close()
	if pressed != 1 {
		t.Fatalf("expected action to run once, got %d", pressed)
	}
}

func TestResolve_Errors(t *testing.T) {
	orch := orchestrator.New(orchestrator.WithRegistry(render.NewRegistry()))
	ctx := testsupport.Context()

	if _, err := orch.Resolve(ctx, orchestrator.Request{}); err == nil {
		t.Fatalf("expected error for empty request")
	}
	if _, err := orch.Resolve(ctx, orchestrator.Request{OpenAPI: openapi.SourceFromFile("testdata/openapi.yaml")}); err == nil {
		t.Fatalf("expected error for missing component")
	}

	schema := testsupport.MustSchema(t, "demo", param.Boolean("on", true))
	if _, err := orch.Start(ctx, orchestrator.Request{Schema: schema}); err == nil {
		t.Fatalf("expected error when no sinks are registered")
	}
}

func TestStart_UnknownSink(t *testing.T) {
	orch := orchestrator.New(orchestrator.WithRegistry(registryWith(t, &testsupport.RecordingSink{})))
	schema := testsupport.MustSchema(t, "demo", param.Boolean("on", true))
	if _, err := orch.Start(testsupport.Context(), orchestrator.Request{Schema: schema, Sink: "missing"}); err == nil {
		t.Fatalf("expected error for unknown sink")
	}
}

func TestDefaultRegistry(t *testing.T) {
	if diff := cmp.Diff([]string{"html", "text", "tui"}, orchestrator.DefaultRegistry().List()); diff != "" {
		t.Fatalf("sinks mismatch (-want +got):\n%s", diff)
	}
}
