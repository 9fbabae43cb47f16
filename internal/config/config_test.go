package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"

	"github.com/goliatone/go-paramform/pkg/layout"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvPrefix+"_CONFIG", "")
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{
		Format:  "tui",
		Session: SessionConfig{Tooltips: true},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FileEnvFlags(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "paramform.yaml")
	data := []byte(`
format: text
schema:
  file: plot.yaml
session:
  next_steps: "2"
  confirm_button: true
  label_width: 120px
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PARAMFORM_SESSION_NEXT_STEPS", "all")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("format", "tui", "")
	flags.Bool("debug", false, "")
	if err := flags.Parse([]string{"--format", "html"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load(WithFile(path), WithFlags(flags))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{
		Format: "html",
		Schema: SchemaConfig{File: "plot.yaml"},
		Session: SessionConfig{
			NextSteps:     "all",
			ConfirmButton: true,
			Tooltips:      true,
			LabelWidth:    "120px",
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if got := cfg.LabelWidth().Width([]string{"anything"}); got != "120px" {
		t.Fatalf("expected fixed width, got %q", got)
	}
	opts, err := cfg.SessionOptions()
	if err != nil {
		t.Fatalf("session options: %v", err)
	}
	if len(opts) != 5 {
		t.Fatalf("expected 5 options, got %d", len(opts))
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	if _, err := Load(WithFile(filepath.Join(t.TempDir(), "nope.yaml"))); err == nil {
		t.Fatalf("expected error for missing explicit file")
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]Config{
		"format": {Format: "pdf"},
		"steps":  {Format: "tui", Session: SessionConfig{NextSteps: "-1"}},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestLabelWidth_Auto(t *testing.T) {
	cfg := Config{Session: SessionConfig{LabelWidth: "auto"}}
	want := layout.Estimate.Width([]string{"speed"})
	if got := cfg.LabelWidth().Width([]string{"speed"}); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
