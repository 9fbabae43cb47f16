package binding

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-paramform/internal/logging"
	"github.com/goliatone/go-paramform/pkg/controls"
	"github.com/goliatone/go-paramform/pkg/host"
	"github.com/goliatone/go-paramform/pkg/layout"
	"github.com/goliatone/go-paramform/pkg/model"
	"github.com/goliatone/go-paramform/pkg/param"
	"github.com/goliatone/go-paramform/pkg/render"
	"github.com/goliatone/go-paramform/pkg/trigger"
	"github.com/goliatone/go-paramform/pkg/widgets"
)

var defaultRegistry = sync.OnceValue(func() *widgets.Registry {
	return widgets.NewRegistry()
})

// Session binds one schema instance to its controls for the duration of a
// display. Sessions are not safe for concurrent use; control events are
// expected on a single goroutine.
type Session struct {
	id       uuid.UUID
	schema   *param.Schema
	registry *widgets.Registry
	advancer host.Advancer
	cfg      Config
	logger   logrus.FieldLogger
	ctx      context.Context
	trigger  *trigger.Trigger

	bindings map[string]*ControlBinding
	order    []string
	button   *controls.Button
	// deferred counts running refreshes; immediate firing waits for them.
	deferred int
	closed   bool
}

// NewSession prepares a session for schema. Controls are created on demand
// by Bind or Tree. A schema is bound by at most one open session; a second
// NewSession on it fails with param.ErrSchemaBound until the first is closed.
func NewSession(schema *param.Schema, opts ...Option) (*Session, error) {
	if schema == nil {
		return nil, model.ErrNilSchema
	}
	s := &Session{
		id:       uuid.New(),
		schema:   schema,
		cfg:      DefaultConfig(),
		bindings: make(map[string]*ControlBinding),
	}
	if err := schema.Claim(s.id.String()); err != nil {
		return nil, fmt.Errorf("binding: new session: %w", err)
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.registry == nil {
		s.registry = defaultRegistry()
	}
	if s.cfg.LabelWidth == nil {
		s.cfg.LabelWidth = layout.Estimate
	}
	if s.ctx == nil {
		s.ctx = context.Background()
	}
	s.logger = logging.OrDiscard(s.logger).WithFields(logrus.Fields{
		"session": s.id.String(),
		"schema":  schema.Name(),
	})
	s.trigger = trigger.New(schema,
		trigger.WithAdvancer(s.advancer),
		trigger.WithSteps(s.cfg.NextSteps),
		trigger.WithCallback(s.cfg.Callback),
		trigger.WithLogger(s.logger),
	)
	return s, nil
}

// ID returns the session identifier used in log entries.
func (s *Session) ID() uuid.UUID { return s.id }

// Schema returns the bound schema.
func (s *Session) Schema() *param.Schema { return s.schema }

// Config returns the interaction mode.
func (s *Session) Config() Config { return s.cfg }

// Immediate reports whether edits fire the trigger without confirmation.
func (s *Session) Immediate() bool { return !s.cfg.ShowConfirmButton }

// Bindings returns the live bindings in creation order.
func (s *Session) Bindings() []*ControlBinding {
	out := make([]*ControlBinding, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.bindings[name])
	}
	return out
}

// Tree binds every visible field and assembles the display tree: the schema
// name as header, one row per field in layout order and the confirm button
// when the session waits for confirmation and firing has an effect.
func (s *Session) Tree() (render.Tree, error) {
	if s.closed {
		return render.Tree{}, ErrClosed
	}
	snapshot, err := model.Introspect(s.schema)
	if err != nil {
		return render.Tree{}, err
	}

	width := s.cfg.LabelWidth.Width(s.schema.Names())
	tree := render.Tree{
		Header:     snapshot.Identity,
		LabelWidth: width,
		Rows:       make([]render.Row, 0, len(snapshot.Fields)),
	}
	for _, field := range layout.Order(snapshot.Fields) {
		binding, err := s.Bind(field.Name)
		if err != nil {
			return render.Tree{}, err
		}
		row := render.Row{
			Name:       field.Name,
			Label:      field.Name,
			LabelWidth: width,
			Control:    binding.control,
		}
		if s.cfg.Tooltips {
			row.Tooltip = field.Doc
		}
		if binding.path != nil {
			row.Path = binding.path.control
		}
		tree.Rows = append(tree.Rows, row)
	}
	if s.cfg.ShowConfirmButton && s.trigger.Enabled() {
		tree.Button = s.confirmButton()
	}
	return tree, nil
}

func (s *Session) confirmButton() *controls.Button {
	if s.button != nil {
		return s.button
	}
	label := "Run"
	if steps := s.cfg.NextSteps; !steps.Unbounded && steps.N > 0 {
		label = fmt.Sprintf("Run %d", steps.N)
	}
	s.button = controls.NewLabelledButton("run", label, func() error {
		return s.Confirm(s.ctx)
	})
	return s.button
}

// Display builds the tree, fires the trigger when OnInit is set and hands the
// tree to sink. The initial fire happens first because interactive sinks
// block until dismissed.
func (s *Session) Display(ctx context.Context, sink render.Sink) error {
	if sink == nil {
		return fmt.Errorf("binding: sink is required")
	}
	tree, err := s.Tree()
	if err != nil {
		return err
	}
	if s.cfg.OnInit {
		if err := s.Fire(ctx); err != nil {
			return err
		}
	}
	s.logger.WithFields(logrus.Fields{
		"sink": sink.Name(),
		"rows": len(tree.Rows),
	}).Debug("displaying controls")
	return sink.Show(ctx, tree)
}

// Confirm is the confirm button action: it fires the trigger regardless of
// the interaction mode.
func (s *Session) Confirm(ctx context.Context) error {
	return s.Fire(ctx)
}

// Fire runs the execution trigger.
func (s *Session) Fire(ctx context.Context) error {
	if s.closed {
		return ErrClosed
	}
	if ctx == nil {
		ctx = s.ctx
	}
	s.logger.Debug("firing trigger")
	return s.trigger.Fire(ctx)
}

// Close cancels every subscription and drops the cached bindings.
func (s *Session) Close() {
	if s.closed {
		return
	}
	for _, binding := range s.bindings {
		binding.release()
	}
	s.bindings = make(map[string]*ControlBinding)
	s.order = nil
	s.button = nil
	s.closed = true
	s.schema.Release(s.id.String())
}
