package param

import (
	"fmt"
	"reflect"
)

// Bounds holds an optional inclusive lower and upper limit.
type Bounds struct {
	Min *float64
	Max *float64
}

// Between returns bounds with both limits set.
func Between(min, max float64) *Bounds {
	return &Bounds{Min: &min, Max: &max}
}

// AtLeast returns bounds with only a lower limit.
func AtLeast(min float64) *Bounds {
	return &Bounds{Min: &min}
}

// AtMost returns bounds with only an upper limit.
func AtMost(max float64) *Bounds {
	return &Bounds{Max: &max}
}

// Complete reports whether both limits are present.
func (b *Bounds) Complete() bool {
	return b != nil && b.Min != nil && b.Max != nil
}

func (b *Bounds) clone() *Bounds {
	if b == nil {
		return nil
	}
	out := &Bounds{}
	if b.Min != nil {
		v := *b.Min
		out.Min = &v
	}
	if b.Max != nil {
		v := *b.Max
		out.Max = &v
	}
	return out
}

// PathResolver recomputes the legal objects and the default of a dependent
// parameter from its path attribute.
type PathResolver func(path string) (objects *Options, def any, err error)

// ActionFunc is executed when an action parameter is invoked.
type ActionFunc func(*Schema) error

// Parameter declares one schema field.
type Parameter struct {
	Name       string
	Kind       Kind
	Default    any
	Doc        string
	Constant   bool
	Precedence *float64
	// Bounds are enforced on Set. SoftBounds only suggest a display range and
	// fall back to Bounds per side.
	Bounds     *Bounds
	SoftBounds *Bounds
	// Objects lists the legal values of selector kinds.
	Objects *Options
	// Path and Resolver make the parameter dependent: changing Path and calling
	// Update regenerates Objects and Default.
	Path     string
	Resolver PathResolver
	Action   ActionFunc
}

// Opt configures a Parameter at construction time.
type Opt func(*Parameter)

// WithDoc attaches documentation shown as a tooltip.
func WithDoc(doc string) Opt {
	return func(p *Parameter) {
		p.Doc = doc
	}
}

// WithPrecedence sets the layout tier. Negative values hide the parameter.
func WithPrecedence(precedence float64) Opt {
	return func(p *Parameter) {
		p.Precedence = &precedence
	}
}

// WithBounds sets the hard bounds enforced on Set.
func WithBounds(bounds *Bounds) Opt {
	return func(p *Parameter) {
		p.Bounds = bounds.clone()
	}
}

// WithSoftBounds sets the suggested display range.
func WithSoftBounds(bounds *Bounds) Opt {
	return func(p *Parameter) {
		p.SoftBounds = bounds.clone()
	}
}

// AsConstant marks the parameter immutable once the schema is built.
func AsConstant() Opt {
	return func(p *Parameter) {
		p.Constant = true
	}
}

// WithResolver overrides the resolver of a dependent parameter.
func WithResolver(resolver PathResolver) Opt {
	return func(p *Parameter) {
		p.Resolver = resolver
	}
}

// WithPath sets the path a dependent parameter resolves its objects from.
func WithPath(path string) Opt {
	return func(p *Parameter) {
		p.Path = path
	}
}

// WithObjects replaces the option set of a selector with explicit labels.
func WithObjects(objects *Options) Opt {
	return func(p *Parameter) {
		p.Objects = objects.Clone()
	}
}

func build(name string, kind Kind, def any, opts []Opt) *Parameter {
	p := &Parameter{Name: name, Kind: kind, Default: def}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// New declares a parameter of an arbitrary kind.
func New(name string, kind Kind, def any, opts ...Opt) *Parameter {
	return build(name, kind, def, opts)
}

// String declares a free text parameter.
func String(name, def string, opts ...Opt) *Parameter {
	return build(name, KindString, def, opts)
}

// Boolean declares a true/false parameter.
func Boolean(name string, def bool, opts ...Opt) *Parameter {
	return build(name, KindBoolean, def, opts)
}

// Number declares a real-valued parameter.
func Number(name string, def float64, opts ...Opt) *Parameter {
	return build(name, KindNumber, def, opts)
}

// Integer declares an integral parameter.
func Integer(name string, def int, opts ...Opt) *Parameter {
	return build(name, KindInteger, def, opts)
}

// Selector declares a parameter whose value is one of objects.
func Selector(name string, objects []any, def any, opts ...Opt) *Parameter {
	p := build(name, KindSelector, def, nil)
	p.Objects = NamedOptions(objects...)
	return apply(p, opts)
}

// ListSelector declares a parameter whose value is a subset of objects.
func ListSelector(name string, objects []any, def []any, opts ...Opt) *Parameter {
	p := build(name, KindListSelector, def, nil)
	p.Objects = NamedOptions(objects...)
	return apply(p, opts)
}

// FileSelector declares a parameter selecting one file matching a glob.
func FileSelector(name, path string, opts ...Opt) *Parameter {
	p := build(name, KindFileSelector, nil, nil)
	p.Path = path
	p.Resolver = GlobResolver(false)
	return apply(p, opts)
}

// MultiFileSelector declares a parameter selecting any files matching a glob.
// Its default is every match.
func MultiFileSelector(name, path string, opts ...Opt) *Parameter {
	p := build(name, KindMultiFileSelector, nil, nil)
	p.Path = path
	p.Resolver = GlobResolver(true)
	return apply(p, opts)
}

// Action declares a parameter rendered as a button that runs fn.
func Action(name string, fn ActionFunc, opts ...Opt) *Parameter {
	p := build(name, KindAction, nil, opts)
	p.Action = fn
	return p
}

func apply(p *Parameter, opts []Opt) *Parameter {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// HasRange reports whether the parameter exposes a legal option set.
func (p *Parameter) HasRange() bool {
	return p.Kind.Is(KindSelector)
}

// Range returns a copy of the legal option set.
func (p *Parameter) Range() *Options {
	if p.Objects == nil {
		return NewOptions()
	}
	return p.Objects.Clone()
}

// HasSoftBounds reports whether the parameter exposes a display range.
func (p *Parameter) HasSoftBounds() bool {
	return p.Kind.Is(KindNumber)
}

// SoftBoundsRange returns the display range, falling back to the hard bounds
// for each missing side.
func (p *Parameter) SoftBoundsRange() (min, max *float64) {
	if p.Bounds != nil {
		min, max = p.Bounds.Min, p.Bounds.Max
	}
	if p.SoftBounds != nil {
		if p.SoftBounds.Min != nil {
			min = p.SoftBounds.Min
		}
		if p.SoftBounds.Max != nil {
			max = p.SoftBounds.Max
		}
	}
	return min, max
}

// HasPath reports whether the parameter is dependent on a path attribute.
func (p *Parameter) HasPath() bool {
	return p.Resolver != nil
}

// Update re-resolves Objects and Default from Path. The resulting default is
// always part of Objects.
func (p *Parameter) Update() error {
	if p.Resolver == nil {
		return fmt.Errorf("param: %s: %w", p.Name, ErrNoPath)
	}
	objects, def, err := p.Resolver(p.Path)
	if err != nil {
		return fmt.Errorf("param: %s: resolve path %q: %w", p.Name, p.Path, err)
	}
	if objects == nil {
		objects = NewOptions()
	}
	objects.Merge(NamedOptions(missingDefaults(objects, def)...))
	p.Objects = objects
	p.Default = def
	return nil
}

// DefaultCollection returns the default as a collection. Scalars become a
// single element slice and nil an empty one.
func DefaultCollection(def any) []any {
	if def == nil {
		return nil
	}
	if values, ok := def.([]any); ok {
		return append([]any(nil), values...)
	}
	rv := reflect.ValueOf(def)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}
	return []any{def}
}

func missingDefaults(objects *Options, def any) []any {
	var missing []any
	for _, value := range DefaultCollection(def) {
		if !objects.Contains(value) {
			missing = append(missing, value)
		}
	}
	return missing
}
