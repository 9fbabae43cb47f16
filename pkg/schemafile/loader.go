package schemafile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-paramform/pkg/param"
)

// ErrUnknownSchema is returned by Store.Schema for names no file declared.
var ErrUnknownSchema = errors.New("schemafile: unknown schema")

// Option attaches behaviour that cannot be declared in a file.
type Option func(*settings)

type settings struct {
	actions   map[string]param.ActionFunc
	resolvers map[string]param.PathResolver
}

// WithAction binds fn to the action parameter called name.
func WithAction(name string, fn param.ActionFunc) Option {
	return func(s *settings) {
		if fn != nil {
			s.actions[name] = fn
		}
	}
}

// WithResolver overrides the path resolver of the dependent parameter called
// name. File selector kinds resolve globs by default.
func WithResolver(name string, resolver param.PathResolver) Option {
	return func(s *settings) {
		if resolver != nil {
			s.resolvers[name] = resolver
		}
	}
}

func newSettings(options []Option) *settings {
	s := &settings{
		actions:   make(map[string]param.ActionFunc),
		resolvers: make(map[string]param.PathResolver),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Parse decodes a single document and builds its schema. source names the
// document in errors and provides the schema name when the document omits
// one.
func Parse(data []byte, source string, options ...Option) (*param.Schema, error) {
	doc, err := parseDocument(data, source)
	if err != nil {
		return nil, err
	}
	return build(doc, source, newSettings(options))
}

// Load reads name from fsys and parses it.
func Load(fsys fs.FS, name string, options ...Option) (*param.Schema, error) {
	if fsys == nil {
		return nil, fmt.Errorf("schemafile: filesystem is required")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("schemafile: read %s: %w", name, err)
	}
	return Parse(data, name, options...)
}

// LoadFS walks fsys and indexes every JSON or YAML schema document. When fsys
// is nil or holds no schema files the store is empty.
func LoadFS(fsys fs.FS, options ...Option) (*Store, error) {
	store := &Store{
		documents: make(map[string]Document),
		sources:   make(map[string]string),
		options:   options,
	}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(name string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(name) {
			return nil
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("schemafile: read %s: %w", name, err)
		}
		doc, err := parseDocument(data, name)
		if err != nil {
			return err
		}

		id := schemaName(doc, name)
		if previous, exists := store.sources[id]; exists {
			return fmt.Errorf("schemafile: duplicate schema %q (files %s and %s)", id, previous, name)
		}
		store.documents[id] = doc
		store.sources[id] = name
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Names lists the indexed schemas in lexical order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.documents))
	for name := range s.documents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds any schema.
func (s *Store) Empty() bool {
	return s == nil || len(s.documents) == 0
}

// Source returns the file a schema was read from.
func (s *Store) Source(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	source, ok := s.sources[name]
	return source, ok
}

// Schema builds a fresh schema for name. Options given here are applied after
// the ones passed to LoadFS.
func (s *Store) Schema(name string, options ...Option) (*param.Schema, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchema, name)
	}
	doc, ok := s.documents[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchema, name)
	}
	all := append(append([]Option(nil), s.options...), options...)
	return build(doc, s.sources[name], newSettings(all))
}

func parseDocument(data []byte, source string) (Document, error) {
	var doc Document
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("schemafile: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = Document{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return Document{}, fmt.Errorf("schemafile: parse %s: invalid JSON or YAML", source)
}

func build(doc Document, source string, s *settings) (*param.Schema, error) {
	params := make([]*param.Parameter, 0, len(doc.Parameters))
	for idx, raw := range doc.Parameters {
		p, err := newParameter(raw, s)
		if err != nil {
			return nil, fmt.Errorf("schemafile: %s parameter %d: %w", source, idx, err)
		}
		params = append(params, p)
	}
	schema, err := param.NewSchema(schemaName(doc, source), params...)
	if err != nil {
		return nil, fmt.Errorf("schemafile: %s: %w", source, err)
	}
	return schema, nil
}

func newParameter(raw ParameterFile, s *settings) (*param.Parameter, error) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	kind, err := param.ParseKind(raw.Type)
	if err != nil {
		return nil, err
	}

	opts := []param.Opt{param.WithDoc(raw.Doc)}
	if raw.Precedence != nil {
		opts = append(opts, param.WithPrecedence(*raw.Precedence))
	}
	if bounds := raw.Bounds.bounds(); bounds != nil {
		opts = append(opts, param.WithBounds(bounds))
	}
	if soft := raw.SoftBounds.bounds(); soft != nil {
		opts = append(opts, param.WithSoftBounds(soft))
	}
	if resolver, ok := s.resolvers[name]; ok {
		opts = append(opts, param.WithResolver(resolver))
	}
	if raw.Constant {
		opts = append(opts, param.AsConstant())
	}

	var p *param.Parameter
	switch kind {
	case param.KindFileSelector:
		p = param.FileSelector(name, raw.Path, opts...)
	case param.KindMultiFileSelector:
		p = param.MultiFileSelector(name, raw.Path, opts...)
	case param.KindAction:
		fn, ok := s.actions[name]
		if !ok {
			return nil, fmt.Errorf("action %q has no handler", name)
		}
		p = param.Action(name, fn, opts...)
	default:
		if raw.Path != "" {
			if _, ok := s.resolvers[name]; !ok {
				return nil, fmt.Errorf("%q declares a path but has no resolver", name)
			}
			opts = append(opts, param.WithPath(raw.Path))
		}
		p = param.New(name, kind, raw.Default, opts...)
	}

	if len(raw.Objects) > 0 {
		objects, err := newObjects(raw.Objects, raw.Labels)
		if err != nil {
			return nil, err
		}
		p.Objects = objects
	}
	return p, nil
}

func newObjects(values []any, labels []string) (*param.Options, error) {
	if len(labels) == 0 {
		return param.NamedOptions(values...), nil
	}
	if len(labels) != len(values) {
		return nil, fmt.Errorf("labels has %d entries for %d objects", len(labels), len(values))
	}
	objects := param.NewOptions()
	for i, value := range values {
		objects.Set(labels[i], value)
	}
	return objects, nil
}

func schemaName(doc Document, source string) string {
	if name := strings.TrimSpace(doc.Name); name != "" {
		return name
	}
	base := path.Base(filepath.ToSlash(source))
	return strings.TrimSuffix(base, path.Ext(base))
}

func isSchemaFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
