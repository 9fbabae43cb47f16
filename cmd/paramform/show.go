package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-paramform/internal/config"
	"github.com/goliatone/go-paramform/internal/logging"
	"github.com/goliatone/go-paramform/pkg/binding"
	"github.com/goliatone/go-paramform/pkg/host"
	"github.com/goliatone/go-paramform/pkg/openapi"
	"github.com/goliatone/go-paramform/pkg/orchestrator"
	"github.com/goliatone/go-paramform/pkg/param"
	"github.com/goliatone/go-paramform/pkg/render"
	"github.com/goliatone/go-paramform/pkg/renderers/html"
	"github.com/goliatone/go-paramform/pkg/renderers/text"
	"github.com/goliatone/go-paramform/pkg/renderers/tui"
)

const httpTimeout = 30 * time.Second

func newShowCommand(globals *globalFlags) *cobra.Command {
	var cells int
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display the controls of a schema",
		Example: `  paramform show --schema plot.yaml
  paramform show --openapi api.yaml --component Plot --format html
  paramform show --schema plot.yaml --button --next 2 --cells 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(config.WithFile(globals.config), config.WithFlags(cmd.Flags()))
			if err != nil {
				return err
			}
			return runShow(cmd.Context(), cfg, cells, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.String("schema", "", "JSON or YAML schema file")
	flags.String("openapi", "", "OpenAPI document path or URL")
	flags.String("component", "", "component schema of the OpenAPI document")
	flags.String("format", "tui", "display sink: tui, text or html")
	flags.String("next", "", `host steps to advance on each fire, a number or "all"`)
	flags.Bool("button", false, "fire only when the confirm button is pressed")
	flags.Bool("on-init", false, "fire once when the controls are displayed")
	flags.Bool("tooltips", true, "show parameter docs as tooltips")
	flags.String("label-width", "", `label column width, e.g. "120px" (default estimates from labels)`)
	flags.IntVar(&cells, "cells", 0, "number of demo host cells the trigger can advance through")
	return cmd
}

func runShow(ctx context.Context, cfg config.Config, cells int, out, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.New(cfg.Log.Debug, errOut)

	req, err := requestFor(cfg)
	if err != nil {
		return err
	}

	sessionOptions, err := cfg.SessionOptions()
	if err != nil {
		return err
	}
	sessionOptions = append(sessionOptions, binding.WithCallback(printValues(out)))
	if cells > 0 {
		notebook, err := demoNotebook(cells, out, logger)
		if err != nil {
			return err
		}
		sessionOptions = append(sessionOptions, binding.WithAdvancer(notebook))
	}

	orch := orchestrator.New(
		orchestrator.WithRegistry(sinks(out, cfg.Session.Tooltips)),
		orchestrator.WithDefaultSink(cfg.Format),
		orchestrator.WithSessionOptions(sessionOptions...),
		orchestrator.WithLogger(logger),
		orchestrator.WithOpenAPIAdapter(openapi.NewAdapter(openapi.NewLoader(openapi.WithHTTPFallback(httpTimeout)), nil)),
	)
	session, err := orch.Start(ctx, req)
	if session != nil {
		defer session.Close()
	}
	return err
}

func requestFor(cfg config.Config) (orchestrator.Request, error) {
	switch {
	case cfg.Schema.File != "" && cfg.Schema.OpenAPI != "":
		return orchestrator.Request{}, fmt.Errorf("use either --schema or --openapi, not both")
	case cfg.Schema.File != "":
		return orchestrator.Request{SchemaFile: cfg.Schema.File}, nil
	case cfg.Schema.OpenAPI != "":
		src, err := openapi.ParseSource(cfg.Schema.OpenAPI)
		if err != nil {
			return orchestrator.Request{}, err
		}
		return orchestrator.Request{OpenAPI: src, Component: cfg.Schema.Component}, nil
	default:
		return orchestrator.Request{}, fmt.Errorf("a schema is required: pass --schema or --openapi")
	}
}

func sinks(out io.Writer, tooltips bool) *render.Registry {
	registry := render.NewRegistry()
	registry.MustRegister(text.New(text.WithWriter(out), text.WithTooltips(tooltips)))
	registry.MustRegister(html.New(html.WithWriter(out)))
	registry.MustRegister(tui.New(tui.WithRepeat(true)))
	return registry
}

func printValues(out io.Writer) func(*param.Schema) error {
	return func(schema *param.Schema) error {
		payload, err := json.Marshal(schema.Values())
		if err != nil {
			return fmt.Errorf("encode values: %w", err)
		}
		_, err = fmt.Fprintln(out, string(payload))
		return err
	}
}

func demoNotebook(count int, out io.Writer, logger logrus.FieldLogger) (*host.Notebook, error) {
	cells := make([]host.Cell, count)
	for i := range cells {
		name := fmt.Sprintf("cell-%d", i+1)
		cells[i] = host.Cell{
			Name: name,
			Run: func(context.Context) error {
				_, err := fmt.Fprintf(out, "ran %s\n", name)
				return err
			},
		}
	}
	return host.NewNotebook(cells, host.WithNotebookLogger(logger))
}
