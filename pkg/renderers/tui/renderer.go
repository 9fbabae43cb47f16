package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-paramform/pkg/controls"
	"github.com/goliatone/go-paramform/pkg/render"
	"github.com/goliatone/go-paramform/pkg/trigger"
)

// Renderer is an interactive terminal sink. It walks the rows of a tree,
// prompting for each control and committing every answer through the control
// so the session sees ordinary change events.
type Renderer struct {
	driver   PromptDriver
	theme    Theme
	repeat   bool
	pageSize int
}

var _ render.Sink = (*Renderer)(nil)

// New constructs a TUI sink backed by survey prompts unless a driver is
// injected.
func New(options ...Option) *Renderer {
	r := &Renderer{
		theme: Theme{ErrorPrefix: "Invalid"},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = newSurveyDriver()
	}
	return r
}

// Name reports the sink identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// Show prompts for every row, then for the confirm button when present. With
// repeat enabled the pass is offered again until declined.
func (r *Renderer) Show(ctx context.Context, tree render.Tree) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}
	if tree.Header != "" {
		if err := r.driver.Info(ctx, r.theme.InfoPrefix+tree.Header); err != nil {
			return err
		}
	}
	for {
		if err := r.pass(ctx, tree); err != nil {
			return err
		}
		if !r.repeat {
			return nil
		}
		again, err := r.driver.Confirm(ctx, ConfirmConfig{Message: "Edit again?"})
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (r *Renderer) pass(ctx context.Context, tree render.Tree) error {
	for _, row := range tree.Rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		if row.Path != nil {
			if err := r.promptText(ctx, row.Label+" path", row.Tooltip, row.Path); err != nil {
				return err
			}
		}
		if err := r.promptRow(ctx, row); err != nil {
			return err
		}
	}
	if tree.Button == nil {
		return nil
	}
	press, err := r.driver.Confirm(ctx, ConfirmConfig{Message: tree.Button.Label() + "?", Default: true})
	if err != nil {
		return err
	}
	if !press {
		return nil
	}
	return tree.Button.Press()
}

func (r *Renderer) promptRow(ctx context.Context, row render.Row) error {
	control := row.Control
	help := render.PlainText(row.Tooltip)
	if control.Disabled() {
		return r.driver.Info(ctx, fmt.Sprintf("%s%s: %v", r.theme.InfoPrefix, row.Label, control.Value()))
	}
	switch c := control.(type) {
	case controls.Pressable:
		return r.promptButton(ctx, row.Label, help, c)
	case *controls.Checkbox:
		return r.promptCheckbox(ctx, row.Label, help, c)
	case *controls.SelectMultiple:
		return r.promptMulti(ctx, row.Label, help, c)
	case controls.Selectable:
		return r.promptSelect(ctx, row.Label, help, c)
	case controls.Ranged:
		min, max := c.Range()
		return r.promptText(ctx, fmt.Sprintf("%s [%v..%v]", row.Label, min, max), help, c)
	default:
		return r.promptText(ctx, row.Label, help, c)
	}
}

func (r *Renderer) promptText(ctx context.Context, label, help string, control controls.Control) error {
	for {
		resp, err := r.driver.Input(ctx, InputConfig{
			Message: label,
			Default: formatValue(control.Value()),
			Help:    help,
		})
		if err != nil {
			return err
		}
		if retry, err := r.commit(ctx, label, func() error { return control.SetValue(resp) }); !retry {
			return err
		}
	}
}

func (r *Renderer) promptCheckbox(ctx context.Context, label, help string, control *controls.Checkbox) error {
	resp, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: label,
		Default: control.Checked(),
		Help:    help,
	})
	if err != nil {
		return err
	}
	_, err = r.commit(ctx, label, func() error { return control.SetValue(resp) })
	return err
}

func (r *Renderer) promptSelect(ctx context.Context, label, help string, control controls.Selectable) error {
	for {
		options := control.Options()
		labels := options.Labels()
		if len(labels) == 0 {
			return r.driver.Info(ctx, fmt.Sprintf("%s%s: %v", r.theme.InfoPrefix, label, ErrNoOptions))
		}
		current, _ := options.LabelOf(control.Value())
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      label,
			Options:      labels,
			DefaultIndex: indexOf(labels, current),
			Help:         help,
			PageSize:     r.pageSize,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(labels) {
			continue
		}
		value, _ := options.Get(labels[idx])
		if retry, err := r.commit(ctx, label, func() error { return control.SetValue(value) }); !retry {
			return err
		}
	}
}

func (r *Renderer) promptMulti(ctx context.Context, label, help string, control *controls.SelectMultiple) error {
	for {
		options := control.Options()
		labels := options.Labels()
		if len(labels) == 0 {
			return r.driver.Info(ctx, fmt.Sprintf("%s%s: %v", r.theme.InfoPrefix, label, ErrNoOptions))
		}
		var defaults []int
		for _, value := range control.Selected() {
			if current, ok := options.LabelOf(value); ok {
				defaults = append(defaults, indexOf(labels, current))
			}
		}
		indices, err := r.driver.MultiSelect(ctx, SelectConfig{
			Message:  label,
			Options:  labels,
			Defaults: defaults,
			Help:     help,
			PageSize: r.pageSize,
		})
		if err != nil {
			return err
		}
		chosen := defaultsFromIndices(labels, indices)
		if retry, err := r.commit(ctx, label, func() error { return control.SelectLabels(chosen) }); !retry {
			return err
		}
	}
}

func (r *Renderer) promptButton(ctx context.Context, label, help string, control controls.Pressable) error {
	press, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: "Run " + label + "?",
		Help:    help,
	})
	if err != nil || !press {
		return err
	}
	_, err = r.commit(ctx, label, control.Press)
	return err
}

// commit applies a write. Rejected values are reported and the prompt is
// retried; callback failures and cancellation end the session.
func (r *Renderer) commit(ctx context.Context, label string, write func() error) (bool, error) {
	err := write()
	if err == nil {
		return false, nil
	}
	var cbErr *trigger.CallbackError
	if errors.As(err, &cbErr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false, err
	}
	if infoErr := r.driver.Info(ctx, fmt.Sprintf("%s %s: %v", r.theme.ErrorPrefix, label, err)); infoErr != nil {
		return false, infoErr
	}
	return true, nil
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}
