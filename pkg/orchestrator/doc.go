// Package orchestrator wires the schema source → binding session → display
// sink pipeline behind a single entry point.
package orchestrator
