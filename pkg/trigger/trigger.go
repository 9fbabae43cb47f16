// Package trigger fires the effect of a committed edit: advance the host by a
// configured number of steps, then run the user callback.
package trigger

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-paramform/internal/logging"
	"github.com/goliatone/go-paramform/pkg/host"
	"github.com/goliatone/go-paramform/pkg/param"
)

// Callback receives the bound schema after every fire.
type Callback func(schema *param.Schema) error

// CallbackError wraps a failure raised by the user callback.
type CallbackError struct {
	Schema string
	Err    error
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("trigger: callback for %q: %v", e.Schema, e.Err)
}

func (e *CallbackError) Unwrap() error { return e.Err }

// AdvanceError wraps a failure of the host advance effect.
type AdvanceError struct {
	Count host.Count
	Err   error
}

func (e *AdvanceError) Error() string {
	return fmt.Sprintf("trigger: advance %s: %v", e.Count, e.Err)
}

func (e *AdvanceError) Unwrap() error { return e.Err }

// Trigger combines the host advance effect with an optional callback.
type Trigger struct {
	schema   *param.Schema
	advancer host.Advancer
	steps    host.Count
	callback Callback
	logger   logrus.FieldLogger
}

// Option configures a Trigger.
type Option func(*Trigger)

// WithAdvancer sets the host effect. Without one, advancing is skipped.
func WithAdvancer(advancer host.Advancer) Option {
	return func(t *Trigger) {
		t.advancer = advancer
	}
}

// WithSteps sets how far each fire advances the host.
func WithSteps(steps host.Count) Option {
	return func(t *Trigger) {
		t.steps = steps
	}
}

// WithCallback sets the user callback.
func WithCallback(callback Callback) Option {
	return func(t *Trigger) {
		t.callback = callback
	}
}

// WithLogger sets the logger used to surface advance failures.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(t *Trigger) {
		t.logger = logger
	}
}

// New builds a trigger for schema.
func New(schema *param.Schema, opts ...Option) *Trigger {
	t := &Trigger{schema: schema}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	t.logger = logging.OrDiscard(t.logger)
	return t
}

// Steps returns the configured advance count.
func (t *Trigger) Steps() host.Count { return t.steps }

// HasCallback reports whether a callback is configured.
func (t *Trigger) HasCallback() bool { return t.callback != nil }

// Enabled reports whether firing has any effect.
func (t *Trigger) Enabled() bool {
	return t.callback != nil || !t.steps.IsZero()
}

// Fire advances the host and then runs the callback. Advance failures are
// logged and never retried; the callback runs regardless. A callback error is
// returned as *CallbackError.
func (t *Trigger) Fire(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if !t.steps.IsZero() && t.advancer != nil {
		if err := t.advancer.Advance(ctx, t.steps); err != nil {
			advErr := &AdvanceError{Count: t.steps, Err: err}
			t.logger.WithError(advErr).WithField("steps", t.steps.String()).Error("advance failed")
		}
	}
	if t.callback == nil {
		return nil
	}
	if err := t.callback(t.schema); err != nil {
		return &CallbackError{Schema: t.schema.Name(), Err: err}
	}
	return nil
}
