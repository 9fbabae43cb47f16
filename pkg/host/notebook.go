package host

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-paramform/internal/logging"
)

var (
	// ErrUnknownCell is returned when anchoring on an undeclared cell.
	ErrUnknownCell = errors.New("host: unknown cell")
	// ErrDuplicateCell is returned when two cells share a name.
	ErrDuplicateCell = errors.New("host: duplicate cell")
)

// Cell is one executable step.
type Cell struct {
	Name string
	Run  func(ctx context.Context) error
}

// Notebook is an ordered list of cells with a cursor. The anchor is the cell
// that displays the controls; advancing runs the cells after the cursor.
type Notebook struct {
	mu     sync.Mutex
	cells  []Cell
	cursor int
	logger logrus.FieldLogger
}

// NotebookOption configures a Notebook.
type NotebookOption func(*Notebook)

// WithNotebookLogger sets the logger used to trace executed cells.
func WithNotebookLogger(logger logrus.FieldLogger) NotebookOption {
	return func(n *Notebook) {
		n.logger = logger
	}
}

// NewNotebook builds a notebook anchored before its first cell.
func NewNotebook(cells []Cell, opts ...NotebookOption) (*Notebook, error) {
	seen := make(map[string]struct{}, len(cells))
	for _, cell := range cells {
		if _, ok := seen[cell.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCell, cell.Name)
		}
		seen[cell.Name] = struct{}{}
	}
	nb := &Notebook{cells: append([]Cell(nil), cells...), cursor: -1}
	for _, opt := range opts {
		if opt != nil {
			opt(nb)
		}
	}
	nb.logger = logging.OrDiscard(nb.logger)
	return nb, nil
}

// Anchor moves the cursor onto the named cell; the next advance starts with
// the cell after it.
func (n *Notebook) Anchor(name string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	for idx, cell := range n.cells {
		if cell.Name == name {
			n.cursor = idx
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownCell, name)
}

// Remaining returns the names of the cells after the cursor.
func (n *Notebook) Remaining() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	var names []string
	for _, cell := range n.cells[n.cursor+1:] {
		names = append(names, cell.Name)
	}
	return names
}

// Advance runs the next count cells after the cursor, stopping at the first
// failure. The cursor stays on the anchor, so every advance re-runs the same
// cells below the controls.
func (n *Notebook) Advance(ctx context.Context, count Count) error {
	if count.IsZero() {
		return nil
	}
	n.mu.Lock()
	start := n.cursor + 1
	end := len(n.cells)
	if !count.Unbounded && start+count.N < end {
		end = start + count.N
	}
	batch := append([]Cell(nil), n.cells[start:end]...)
	n.mu.Unlock()

	for _, cell := range batch {
		if err := ctx.Err(); err != nil {
			return err
		}
		n.logger.WithField("cell", cell.Name).Debug("running cell")
		if cell.Run == nil {
			continue
		}
		if err := cell.Run(ctx); err != nil {
			return fmt.Errorf("host: cell %q: %w", cell.Name, err)
		}
	}
	return nil
}
