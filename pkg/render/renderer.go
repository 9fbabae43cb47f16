package render

import (
	"context"

	"github.com/goliatone/go-paramform/pkg/controls"
)

// Tree is the ordered description handed to a display sink: a header, one
// row per visible field, then an optional confirm button.
type Tree struct {
	Header     string
	LabelWidth string
	Rows       []Row
	Button     *controls.Button
}

// Row pairs a field label with its live control. Path is set for fields whose
// options depend on an editable path; sinks show it alongside the control.
type Row struct {
	Name       string
	Label      string
	Tooltip    string
	LabelWidth string
	Control    controls.Control
	Path       controls.Control
}

// Row returns the row for name.
func (t Tree) Row(name string) (Row, bool) {
	for _, row := range t.Rows {
		if row.Name == name {
			return row, true
		}
	}
	return Row{}, false
}

// Names lists the row names in display order.
func (t Tree) Names() []string {
	names := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		names[i] = row.Name
	}
	return names
}

// Sink displays a control tree. Interactive sinks may block until the user
// is done; Show returns when the display is dismissed or ctx is cancelled.
type Sink interface {
	Name() string
	Show(ctx context.Context, tree Tree) error
}
