package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-paramform/pkg/param"
)

const (
	precedenceExtensionKey = "x-precedence"
	pathExtensionKey       = "x-path"
	softMinExtensionKey    = "x-soft-minimum"
	softMaxExtensionKey    = "x-soft-maximum"
)

// ErrUnknownComponent is returned when the document has no component schema
// with the requested name.
var ErrUnknownComponent = errors.New("openapi: unknown component schema")

// Converter turns component schemas into parameter schemas.
type Converter struct {
	validate  bool
	resolvers map[string]param.PathResolver
}

// ConverterOption configures a Converter.
type ConverterOption func(*Converter)

// WithValidation validates the whole document before converting.
func WithValidation(enabled bool) ConverterOption {
	return func(c *Converter) {
		c.validate = enabled
	}
}

// WithResolver overrides the resolver of the property called name. Properties
// carrying x-path resolve file globs by default.
func WithResolver(name string, resolver param.PathResolver) ConverterOption {
	return func(c *Converter) {
		if resolver != nil {
			c.resolvers[name] = resolver
		}
	}
}

// NewConverter builds a Converter.
func NewConverter(options ...ConverterOption) *Converter {
	c := &Converter{resolvers: make(map[string]param.PathResolver)}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Components lists the component schema names of the document.
func (c *Converter) Components(ctx context.Context, data []byte) ([]string, error) {
	spec, err := c.load(ctx, data)
	if err != nil {
		return nil, err
	}
	if spec.Components == nil {
		return nil, nil
	}
	names := make([]string, 0, len(spec.Components.Schemas))
	for name := range spec.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// FromData parses data and converts the component schema called component.
// Each scalar property becomes a parameter. Object properties and
// compositions have no control and are skipped.
func (c *Converter) FromData(ctx context.Context, data []byte, component string) (*param.Schema, error) {
	spec, err := c.load(ctx, data)
	if err != nil {
		return nil, err
	}
	if spec.Components == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, component)
	}
	ref, ok := spec.Components.Schemas[component]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, component)
	}
	return c.convert(component, ref.Value)
}

func (c *Converter) load(ctx context.Context, data []byte) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if c.validate {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate: %w", err)
		}
	}
	return spec, nil
}

func (c *Converter) convert(component string, src *openapi3.Schema) (*param.Schema, error) {
	name := component
	if title := strings.TrimSpace(src.Title); title != "" {
		name = title
	}

	names := make([]string, 0, len(src.Properties))
	for property := range src.Properties {
		names = append(names, property)
	}
	sort.Strings(names)

	params := make([]*param.Parameter, 0, len(names))
	for _, property := range names {
		ref := src.Properties[property]
		if ref == nil || ref.Value == nil || property == param.IdentityField {
			continue
		}
		p, err := c.parameter(property, ref.Value)
		if err != nil {
			return nil, fmt.Errorf("openapi: %s.%s: %w", component, property, err)
		}
		if p != nil {
			params = append(params, p)
		}
	}

	schema, err := param.NewSchema(name, params...)
	if err != nil {
		return nil, fmt.Errorf("openapi: %s: %w", component, err)
	}
	return schema, nil
}

func (c *Converter) parameter(name string, src *openapi3.Schema) (*param.Parameter, error) {
	opts := []param.Opt{param.WithDoc(docOf(src))}
	if precedence, ok := number(src.Extensions[precedenceExtensionKey]); ok {
		opts = append(opts, param.WithPrecedence(precedence))
	}
	if src.ReadOnly {
		opts = append(opts, param.AsConstant())
	}
	if resolver, ok := c.resolvers[name]; ok {
		opts = append(opts, param.WithResolver(resolver))
	}

	typ := schemaType(src.Type)
	if path, ok := src.Extensions[pathExtensionKey].(string); ok {
		if typ == openapi3.TypeArray {
			return param.MultiFileSelector(name, path, opts...), nil
		}
		return param.FileSelector(name, path, opts...), nil
	}

	switch typ {
	case openapi3.TypeArray:
		if src.Items == nil || src.Items.Value == nil || len(src.Items.Value.Enum) == 0 {
			return nil, nil
		}
		def := src.Default
		if def == nil {
			def = []any{}
		}
		return param.New(name, param.KindListSelector, def,
			append(opts, param.WithObjects(param.NamedOptions(src.Items.Value.Enum...)))...), nil
	case openapi3.TypeObject, "":
		if len(src.Enum) == 0 {
			return nil, nil
		}
	}

	if len(src.Enum) > 0 {
		def := src.Default
		if def == nil {
			def = src.Enum[0]
		}
		return param.New(name, param.KindSelector, def,
			append(opts, param.WithObjects(param.NamedOptions(src.Enum...)))...), nil
	}

	switch typ {
	case openapi3.TypeBoolean:
		return param.New(name, param.KindBoolean, defaultOr(src.Default, false), opts...), nil
	case openapi3.TypeString:
		return param.New(name, param.KindString, defaultOr(src.Default, ""), opts...), nil
	case openapi3.TypeInteger, openapi3.TypeNumber:
		kind := param.KindNumber
		if typ == openapi3.TypeInteger {
			kind = param.KindInteger
		}
		bounds := &param.Bounds{Min: src.Min, Max: src.Max}
		if bounds.Min != nil || bounds.Max != nil {
			opts = append(opts, param.WithBounds(bounds))
		}
		soft := &param.Bounds{}
		if v, ok := number(src.Extensions[softMinExtensionKey]); ok {
			soft.Min = &v
		}
		if v, ok := number(src.Extensions[softMaxExtensionKey]); ok {
			soft.Max = &v
		}
		if soft.Min != nil || soft.Max != nil {
			opts = append(opts, param.WithSoftBounds(soft))
		}
		return param.New(name, kind, defaultOr(src.Default, numericZero(bounds)), opts...), nil
	default:
		return nil, nil
	}
}

func docOf(src *openapi3.Schema) string {
	if doc := strings.TrimSpace(src.Description); doc != "" {
		return doc
	}
	return strings.TrimSpace(src.Title)
}

func schemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	for _, typ := range types.Slice() {
		if typ != "null" {
			return typ
		}
	}
	return ""
}

func defaultOr(value, fallback any) any {
	if value == nil {
		return fallback
	}
	return value
}

// numericZero is the fallback default of a number without one: zero, moved
// inside the bounds when they exclude it.
func numericZero(bounds *param.Bounds) float64 {
	switch {
	case bounds.Min != nil && *bounds.Min > 0:
		return *bounds.Min
	case bounds.Max != nil && *bounds.Max < 0:
		return *bounds.Max
	default:
		return 0
	}
}

func number(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}
	f, err := param.ToFloat(value)
	if err != nil {
		return 0, false
	}
	return f, true
}
