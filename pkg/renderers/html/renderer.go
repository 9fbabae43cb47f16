// Package html renders a control tree as an HTML fragment using pongo2
// templates.
package html

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"reflect"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-paramform/pkg/controls"
	"github.com/goliatone/go-paramform/pkg/param"
	"github.com/goliatone/go-paramform/pkg/render"
)

const defaultTemplate = "controls.tpl"

//go:embed templates/*.tpl
var embedded embed.FS

// Templates returns the built-in template files.
func Templates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Renderer writes the tree as markup. Interaction is left to the page; the
// sink only describes the controls and their current state.
type Renderer struct {
	mu        sync.Mutex
	out       io.Writer
	templates fs.FS
	name      string
	id        string
	set       *pongo2.TemplateSet
	tpl       *pongo2.Template
}

var _ render.Sink = (*Renderer)(nil)

// Option configures the HTML sink.
type Option func(*Renderer)

// WithWriter sets the destination. Defaults to stdout.
func WithWriter(w io.Writer) Option {
	return func(r *Renderer) {
		if w != nil {
			r.out = w
		}
	}
}

// WithTemplates replaces the template files. The FS must contain the named
// template, controls.tpl unless overridden with WithTemplateName.
func WithTemplates(fsys fs.FS) Option {
	return func(r *Renderer) {
		if fsys != nil {
			r.templates = fsys
		}
	}
}

// WithTemplateName selects the template rendered by Show.
func WithTemplateName(name string) Option {
	return func(r *Renderer) {
		if name != "" {
			r.name = name
		}
	}
}

// WithID tags the root element, typically with the session id.
func WithID(id string) Option {
	return func(r *Renderer) {
		r.id = id
	}
}

// New constructs the HTML sink.
func New(options ...Option) *Renderer {
	r := &Renderer{out: os.Stdout, templates: Templates(), name: defaultTemplate}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	r.set = pongo2.NewSet("paramform", pongo2.NewFSLoader(r.templates))
	return r
}

// Name reports the sink identifier.
func (r *Renderer) Name() string { return "html" }

// Show writes the rendered fragment.
func (r *Renderer) Show(ctx context.Context, tree render.Tree) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	out, err := r.Render(tree)
	if err != nil {
		return err
	}
	_, err = io.WriteString(r.out, out)
	return err
}

// Render returns the fragment for tree.
func (r *Renderer) Render(tree render.Tree) (string, error) {
	tpl, err := r.template()
	if err != nil {
		return "", err
	}
	data := pongo2.Context{
		"id":     r.id,
		"header": tree.Header,
		"rows":   rowViews(tree),
	}
	if tree.Button != nil {
		data["button"] = tree.Button.Label()
	}
	out, err := tpl.Execute(data)
	if err != nil {
		return "", fmt.Errorf("html: execute template %q: %w", r.name, err)
	}
	return out, nil
}

func (r *Renderer) template() (*pongo2.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tpl != nil {
		return r.tpl, nil
	}
	if r.set == nil {
		return nil, errors.New("html: renderer is not initialised")
	}
	tpl, err := r.set.FromFile(r.name)
	if err != nil {
		return nil, fmt.Errorf("html: load template %q: %w", r.name, err)
	}
	r.tpl = tpl
	return tpl, nil
}

type optionView struct {
	Label    string
	Selected bool
}

type rowView struct {
	Name       string
	Label      string
	Tooltip    string
	LabelWidth string
	Type       string
	InputType  string
	Value      string
	Checked    bool
	Ranged     bool
	Min        string
	Max        string
	Step       string
	Options    []optionView
	HasPath    bool
	Path       string
}

func rowViews(tree render.Tree) []rowView {
	rows := make([]rowView, 0, len(tree.Rows))
	for _, row := range tree.Rows {
		rows = append(rows, newRowView(row))
	}
	return rows
}

func newRowView(row render.Row) rowView {
	control := row.Control
	view := rowView{
		Name:       row.Name,
		Label:      row.Label,
		Tooltip:    render.PlainText(row.Tooltip),
		LabelWidth: row.LabelWidth,
		Type:       string(control.Type()),
		InputType:  "text",
		Value:      formatValue(control.Value()),
	}
	if row.Path != nil {
		view.HasPath = true
		view.Path = formatValue(row.Path.Value())
	}
	switch control.Type() {
	case controls.TypeFloatText, controls.TypeIntText:
		view.InputType = "number"
	case controls.TypeIntSlider:
		view.Step = "1"
	case controls.TypeFloatSlider:
		view.Step = "any"
	}
	switch c := control.(type) {
	case *controls.Checkbox:
		view.Checked = c.Checked()
	case controls.Ranged:
		view.Ranged = true
		min, max := c.Range()
		view.Min, view.Max = formatValue(min), formatValue(max)
	case controls.Pressable:
		view.Value = c.Label()
	case *controls.SelectMultiple:
		view.Options = optionViews(c.Options(), c.Selected()...)
	case controls.Selectable:
		view.Options = optionViews(c.Options(), c.Value())
	}
	return view
}

func optionViews(options *param.Options, selected ...any) []optionView {
	labels := options.Labels()
	views := make([]optionView, 0, len(labels))
	for _, label := range labels {
		value, _ := options.Get(label)
		view := optionView{Label: label}
		for _, sel := range selected {
			if sel != nil && reflect.DeepEqual(sel, value) {
				view.Selected = true
				break
			}
		}
		views = append(views, view)
	}
	return views
}

func formatValue(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}
