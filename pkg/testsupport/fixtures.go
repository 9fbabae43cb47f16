// Package testsupport holds helpers shared by package tests.
package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/goliatone/go-paramform/pkg/param"
	"github.com/goliatone/go-paramform/pkg/render"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// MustSchema builds a schema or fails the test.
func MustSchema(t *testing.T, name string, params ...*param.Parameter) *param.Schema {
	t.Helper()
	schema, err := param.NewSchema(name, params...)
	if err != nil {
		t.Fatalf("new schema: %v", err)
	}
	return schema
}

// WriteFiles creates empty files under dir, creating parents as needed.
func WriteFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", name, err)
		}
		if err := os.WriteFile(path, nil, 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

// RecordingSink is a display sink that keeps every tree it is shown. Show
// runs OnShow, when set, so tests can drive controls while "displayed".
type RecordingSink struct {
	SinkName string
	OnShow   func(render.Tree) error

	mu    sync.Mutex
	trees []render.Tree
}

var _ render.Sink = (*RecordingSink)(nil)

// Name reports SinkName, "recording" when empty.
func (s *RecordingSink) Name() string {
	if s.SinkName == "" {
		return "recording"
	}
	return s.SinkName
}

// Show records tree.
func (s *RecordingSink) Show(ctx context.Context, tree render.Tree) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.trees = append(s.trees, tree)
	s.mu.Unlock()
	if s.OnShow != nil {
		return s.OnShow(tree)
	}
	return nil
}

// Trees returns the recorded trees in display order.
func (s *RecordingSink) Trees() []render.Tree {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]render.Tree(nil), s.trees...)
}
