// Package text renders a control tree as a static terminal listing.
package text

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-paramform/pkg/controls"
	"github.com/goliatone/go-paramform/pkg/render"
)

const pixelsPerColumn = 7.5

// Renderer prints the tree: a bold header, one aligned line per row and the
// confirm button caption.
type Renderer struct {
	out      io.Writer
	tooltips bool
}

var _ render.Sink = (*Renderer)(nil)

// Option configures the text sink.
type Option func(*Renderer)

// WithWriter sets the destination. Defaults to stdout.
func WithWriter(w io.Writer) Option {
	return func(r *Renderer) {
		if w != nil {
			r.out = w
		}
	}
}

// WithTooltips prints row tooltips under their controls.
func WithTooltips(enabled bool) Option {
	return func(r *Renderer) {
		r.tooltips = enabled
	}
}

// New constructs the text sink.
func New(options ...Option) *Renderer {
	r := &Renderer{out: os.Stdout, tooltips: true}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Name reports the sink identifier.
func (r *Renderer) Name() string { return "text" }

// Show writes the listing once.
func (r *Renderer) Show(ctx context.Context, tree render.Tree) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := io.WriteString(r.out, r.Render(tree)+"\n")
	return err
}

// Render returns the listing without writing it.
func (r *Renderer) Render(tree render.Tree) string {
	lr := lipgloss.NewRenderer(r.out)
	header := lr.NewStyle().Bold(true).MarginBottom(1)
	label := lr.NewStyle().Width(columns(tree)).PaddingRight(1)
	muted := lr.NewStyle().Faint(true)
	button := lr.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)

	var blocks []string
	if tree.Header != "" {
		blocks = append(blocks, header.Render(tree.Header))
	}
	for _, row := range tree.Rows {
		if row.Path != nil {
			blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top,
				label.Render(""), muted.Render("path: "+fmt.Sprint(row.Path.Value()))))
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top, label.Render(row.Label), Describe(row.Control))
		blocks = append(blocks, line)
		if r.tooltips && row.Tooltip != "" {
			blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top,
				label.Render(""), muted.Render(render.PlainText(row.Tooltip))))
		}
	}
	if tree.Button != nil {
		blocks = append(blocks, button.Render(tree.Button.Label()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// Describe summarises a control on one line: its kind, its range or options
// and its current value.
func Describe(control controls.Control) string {
	if control == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("[" + string(control.Type()))
	switch c := control.(type) {
	case controls.Ranged:
		min, max := c.Range()
		fmt.Fprintf(&b, " %v..%v", min, max)
	case controls.Selectable:
		fmt.Fprintf(&b, " %s", strings.Join(c.Options().Labels(), "|"))
	}
	b.WriteString("]")
	switch c := control.(type) {
	case controls.Pressable:
		b.WriteString(" " + c.Label())
	case controls.Selectable:
		if label, ok := c.Options().LabelOf(c.Value()); ok {
			b.WriteString(" " + label)
		} else if value := c.Value(); value != nil {
			fmt.Fprintf(&b, " %v", value)
		}
	default:
		fmt.Fprintf(&b, " %v", control.Value())
	}
	return b.String()
}

func columns(tree render.Tree) int {
	longest := 0
	for _, row := range tree.Rows {
		if n := lipgloss.Width(row.Label); n > longest {
			longest = n
		}
	}
	px, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(tree.LabelWidth), "px"), 64)
	if err != nil {
		return longest + 1
	}
	return int(math.Max(float64(longest+1), math.Ceil(px/pixelsPerColumn)))
}
