package binding

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-paramform/pkg/host"
	"github.com/goliatone/go-paramform/pkg/layout"
	"github.com/goliatone/go-paramform/pkg/trigger"
	"github.com/goliatone/go-paramform/pkg/widgets"
)

// Config is the interaction mode of a session.
type Config struct {
	// Callback runs with the schema every time the trigger fires.
	Callback trigger.Callback
	// NextSteps is how far the host advances on each fire.
	NextSteps host.Count
	// OnInit fires the trigger once when the controls are displayed.
	OnInit bool
	// ShowConfirmButton defers firing until the confirm button is pressed.
	ShowConfirmButton bool
	// LabelWidth sizes the label column. Defaults to layout.Estimate.
	LabelWidth layout.LabelWidth
	// Tooltips attaches field docs to labels and controls.
	Tooltips bool
}

// DefaultConfig returns the immediate mode configuration with tooltips on.
func DefaultConfig() Config {
	return Config{
		LabelWidth: layout.Estimate,
		Tooltips:   true,
	}
}

// Option customises a Session.
type Option func(*Session)

// WithConfig replaces the whole interaction mode.
func WithConfig(cfg Config) Option {
	return func(s *Session) {
		s.cfg = cfg
	}
}

// WithRegistry injects the control selector. Sessions share the built-in
// registry by default.
func WithRegistry(registry *widgets.Registry) Option {
	return func(s *Session) {
		s.registry = registry
	}
}

// WithCallback sets the user callback.
func WithCallback(callback trigger.Callback) Option {
	return func(s *Session) {
		s.cfg.Callback = callback
	}
}

// WithNextSteps sets the host advance count.
func WithNextSteps(count host.Count) Option {
	return func(s *Session) {
		s.cfg.NextSteps = count
	}
}

// WithOnInit fires the trigger once on display.
func WithOnInit(enabled bool) Option {
	return func(s *Session) {
		s.cfg.OnInit = enabled
	}
}

// WithConfirmButton switches to button confirmed mode.
func WithConfirmButton(enabled bool) Option {
	return func(s *Session) {
		s.cfg.ShowConfirmButton = enabled
	}
}

// WithLabelWidth sets the label width strategy.
func WithLabelWidth(strategy layout.LabelWidth) Option {
	return func(s *Session) {
		s.cfg.LabelWidth = strategy
	}
}

// WithTooltips toggles tooltips.
func WithTooltips(enabled bool) Option {
	return func(s *Session) {
		s.cfg.Tooltips = enabled
	}
}

// WithAdvancer sets the host execution effect.
func WithAdvancer(advancer host.Advancer) Option {
	return func(s *Session) {
		s.advancer = advancer
	}
}

// WithLogger injects the session logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithContext sets the context used when a control edit fires the trigger.
func WithContext(ctx context.Context) Option {
	return func(s *Session) {
		s.ctx = ctx
	}
}
