package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-paramform/internal/logging"
	"github.com/goliatone/go-paramform/pkg/binding"
	"github.com/goliatone/go-paramform/pkg/openapi"
	"github.com/goliatone/go-paramform/pkg/param"
	"github.com/goliatone/go-paramform/pkg/render"
	"github.com/goliatone/go-paramform/pkg/renderers/html"
	"github.com/goliatone/go-paramform/pkg/renderers/text"
	"github.com/goliatone/go-paramform/pkg/renderers/tui"
	"github.com/goliatone/go-paramform/pkg/schemafile"
)

const defaultSinkName = "text"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects the sink registry. The default registry holds the
// text, html and tui sinks writing to stdout.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultSink overrides the sink used when a request names none.
func WithDefaultSink(name string) Option {
	return func(o *Orchestrator) {
		o.defaultSink = name
	}
}

// WithOpenAPIAdapter injects the adapter used for OpenAPI requests.
func WithOpenAPIAdapter(adapter *openapi.Adapter) Option {
	return func(o *Orchestrator) {
		o.openapi = adapter
	}
}

// WithSchemaOptions forwards actions and resolvers to schema files.
func WithSchemaOptions(options ...schemafile.Option) Option {
	return func(o *Orchestrator) {
		o.schemaOptions = append(o.schemaOptions, options...)
	}
}

// WithSessionOptions appends options applied to every session.
func WithSessionOptions(options ...binding.Option) Option {
	return func(o *Orchestrator) {
		o.sessionOptions = append(o.sessionOptions, options...)
	}
}

// WithLogger injects the logger shared with sessions.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator resolves a schema from one of the supported sources, binds it
// in a session and displays the session through a named sink.
type Orchestrator struct {
	registry       *render.Registry
	defaultSink    string
	openapi        *openapi.Adapter
	schemaOptions  []schemafile.Option
	sessionOptions []binding.Option
	logger         logrus.FieldLogger
}

// New constructs an Orchestrator. Missing dependencies get the built-in
// implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{defaultSink: defaultSinkName}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	if o.registry == nil {
		o.registry = DefaultRegistry()
	}
	if o.openapi == nil {
		o.openapi = openapi.NewAdapter(nil, nil)
	}
	o.logger = logging.OrDiscard(o.logger)
	return o
}

// DefaultRegistry returns a registry holding the built-in sinks.
func DefaultRegistry() *render.Registry {
	registry := render.NewRegistry()
	registry.MustRegister(text.New())
	registry.MustRegister(html.New())
	registry.MustRegister(tui.New())
	return registry
}

// Request describes where the schema comes from and how to show it. Exactly
// one of Schema, SchemaFile or OpenAPI is expected.
type Request struct {
	// Schema is used as is when set.
	Schema *param.Schema
	// SchemaFile is a JSON or YAML schema document, read from SchemaFS when
	// set and from disk otherwise.
	SchemaFile string
	SchemaFS   fs.FS
	// OpenAPI and Component select a component schema of an OpenAPI document.
	OpenAPI   openapi.Source
	Component string
	// Sink names the display sink. Empty selects the default.
	Sink string
	// Options are applied after the orchestrator-wide session options.
	Options []binding.Option
}

// Resolve returns the schema described by req.
func (o *Orchestrator) Resolve(ctx context.Context, req Request) (*param.Schema, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch {
	case req.Schema != nil:
		return req.Schema, nil
	case req.SchemaFile != "":
		if req.SchemaFS != nil {
			return schemafile.Load(req.SchemaFS, req.SchemaFile, o.schemaOptions...)
		}
		abs, err := filepath.Abs(req.SchemaFile)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: schema file: %w", err)
		}
		return schemafile.Load(os.DirFS(filepath.Dir(abs)), filepath.Base(abs), o.schemaOptions...)
	case req.OpenAPI != nil:
		if req.Component == "" {
			return nil, errors.New("orchestrator: component is required for openapi sources")
		}
		return o.openapi.Schema(ctx, req.OpenAPI, req.Component)
	default:
		return nil, errors.New("orchestrator: schema, schema file or openapi source is required")
	}
}

// Start resolves the schema, opens a session and displays it. The caller
// owns the returned session and must Close it. The session is returned even
// when the display fails so values committed so far stay reachable.
func (o *Orchestrator) Start(ctx context.Context, req Request) (*binding.Session, error) {
	schema, err := o.Resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	sink, err := o.sinkFor(req.Sink)
	if err != nil {
		return nil, err
	}

	options := append([]binding.Option{binding.WithLogger(o.logger), binding.WithContext(ctx)}, o.sessionOptions...)
	options = append(options, req.Options...)
	session, err := binding.NewSession(schema, options...)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: new session: %w", err)
	}

	o.logger.WithFields(logrus.Fields{
		"session": session.ID().String(),
		"sink":    sink.Name(),
	}).Debug("displaying session")

	if err := session.Display(ctx, sink); err != nil {
		return session, fmt.Errorf("orchestrator: display: %w", err)
	}
	return session, nil
}

func (o *Orchestrator) sinkFor(name string) (render.Sink, error) {
	target := name
	if target == "" {
		target = o.defaultSink
	}
	if target != "" {
		sink, err := o.registry.Get(target)
		if err == nil {
			return sink, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: sink %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no sinks registered")
	}
	return o.registry.Get(names[0])
}
