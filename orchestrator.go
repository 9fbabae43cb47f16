// Package paramform binds the parameters of a schema to interactive controls.
// The root package re-exports the common entry points; the building blocks
// live under pkg/.
package paramform

import (
	"context"

	"github.com/goliatone/go-paramform/pkg/binding"
	"github.com/goliatone/go-paramform/pkg/orchestrator"
	"github.com/goliatone/go-paramform/pkg/param"
)

// Schema aliases param.Schema.
type Schema = param.Schema

// Session aliases binding.Session.
type Session = binding.Session

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewSession binds schema without displaying it.
func NewSession(schema *param.Schema, options ...binding.Option) (*binding.Session, error) {
	return binding.NewSession(schema, options...)
}

// Show displays schema through the named sink of the default registry and
// returns the open session. sinkName may be empty for the text sink.
func Show(ctx context.Context, schema *param.Schema, sinkName string, options ...binding.Option) (*binding.Session, error) {
	return orchestrator.New().Start(ctx, orchestrator.Request{
		Schema:  schema,
		Sink:    sinkName,
		Options: options,
	})
}
