package binding

import (
	"fmt"

	"github.com/goliatone/go-paramform/pkg/controls"
	"github.com/goliatone/go-paramform/pkg/param"
)

// DependentPathBinding is the editable path paired with a field whose options
// are resolved from that path. Editing it refreshes the primary control.
type DependentPathBinding struct {
	primary    *ControlBinding
	target     controls.Selectable
	control    *controls.Text
	sub        *controls.Subscription
	refreshing bool
}

func newDependentPathBinding(primary *ControlBinding) (*DependentPathBinding, error) {
	target, ok := primary.control.(controls.Selectable)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotSelectable, primary.control.Type())
	}
	d := &DependentPathBinding{
		primary: primary,
		target:  target,
		control: controls.NewText(controls.Spec{
			Name:  primary.field.Name + "_path",
			Value: primary.field.Path,
		}),
	}
	d.sub = d.control.Observe(changeHandler{
		session: primary.session,
		field:   primary.field.Name,
		source:  SourcePath,
	})
	return d, nil
}

// Control returns the path entry.
func (d *DependentPathBinding) Control() controls.Control { return d.control }

// Primary returns the binding whose options the path drives.
func (d *DependentPathBinding) Primary() *ControlBinding { return d.primary }

// SetPath edits the path entry as a user would, running the refresh when the
// path changes.
func (d *DependentPathBinding) SetPath(path string) error {
	return d.control.SetValue(path)
}

// refresh runs the dependent refresh for path. Steps are strictly ordered:
// the new default must be among the shown options before it is selected.
func (d *DependentPathBinding) refresh(path string) error {
	if d.refreshing {
		return ErrRefreshInProgress
	}
	s := d.primary.session
	name := d.primary.Name()

	d.refreshing = true
	s.deferred++
	done := func() {
		if d.refreshing {
			d.refreshing = false
			s.deferred--
		}
	}
	defer done()

	// 1. point the schema at the new path and re-resolve.
	if err := s.schema.SetPath(name, path); err != nil {
		return fmt.Errorf("binding: refresh %q: %w", name, err)
	}
	p, _ := s.schema.Parameter(name)
	def := p.Default

	// 2. the default as a collection.
	defaults := param.DefaultCollection(def)

	// 3. union the defaults into the options currently shown.
	d.target.MergeOptions(param.NamedOptions(defaults...))

	// 4. select the default. The control may already hold it, in which case
	// no event fires and the schema is written directly.
	if err := d.target.SetValue(def); err != nil {
		return fmt.Errorf("binding: refresh %q: select default: %w", name, err)
	}
	if err := s.schema.Set(name, d.target.Value()); err != nil {
		return fmt.Errorf("binding: refresh %q: %w", name, err)
	}

	// 5. replace the options with the full resolved range.
	options := p.Range()
	if err := d.target.SetOptions(options); err != nil {
		return fmt.Errorf("binding: refresh %q: replace options: %w", name, err)
	}

	// 6. fire once the refresh is complete.
	done()
	if options.Len() == 0 {
		s.logger.WithError(&OptionResolutionError{Field: name, Path: path}).Warn("refresh left no options")
		return nil
	}
	if s.Immediate() && s.deferred == 0 {
		return applied(s.Fire(s.ctx))
	}
	return nil
}
