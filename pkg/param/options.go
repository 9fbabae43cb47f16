package param

import (
	"fmt"
	"reflect"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Named is implemented by values that carry their own display name. Option
// labels prefer it over the stringified value.
type Named interface {
	Name() string
}

// Options is an insertion-ordered mapping from label to value. The zero value
// and a nil pointer are both empty option sets.
type Options struct {
	entries *orderedmap.OrderedMap[string, any]
}

// Option pairs a label with its value.
type Option struct {
	Label string
	Value any
}

// NewOptions builds an option set from explicit label/value pairs.
func NewOptions(pairs ...Option) *Options {
	opts := &Options{entries: orderedmap.New[string, any]()}
	for _, pair := range pairs {
		opts.Set(pair.Label, pair.Value)
	}
	return opts
}

// NamedOptions labels every value by its Name() when available and by its
// stringified form otherwise.
func NamedOptions(values ...any) *Options {
	opts := NewOptions()
	for _, value := range values {
		opts.Set(OptionLabel(value), value)
	}
	return opts
}

// OptionLabel derives the label used for value in an option set.
func OptionLabel(value any) string {
	if named, ok := value.(Named); ok && named != nil {
		if name := named.Name(); name != "" {
			return name
		}
	}
	return fmt.Sprint(value)
}

func (o *Options) ensure() {
	if o.entries == nil {
		o.entries = orderedmap.New[string, any]()
	}
}

// Set adds or replaces the value stored under label. Replacing keeps the
// original position.
func (o *Options) Set(label string, value any) {
	o.ensure()
	o.entries.Set(label, value)
}

// Get returns the value stored under label.
func (o *Options) Get(label string) (any, bool) {
	if o == nil || o.entries == nil {
		return nil, false
	}
	return o.entries.Get(label)
}

// Len reports the number of entries.
func (o *Options) Len() int {
	if o == nil || o.entries == nil {
		return 0
	}
	return o.entries.Len()
}

// Pairs returns the entries in order.
func (o *Options) Pairs() []Option {
	if o == nil || o.entries == nil {
		return nil
	}
	out := make([]Option, 0, o.entries.Len())
	for pair := o.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Option{Label: pair.Key, Value: pair.Value})
	}
	return out
}

// Labels returns the labels in order.
func (o *Options) Labels() []string {
	pairs := o.Pairs()
	if len(pairs) == 0 {
		return nil
	}
	out := make([]string, len(pairs))
	for i, pair := range pairs {
		out[i] = pair.Label
	}
	return out
}

// Values returns the values in order.
func (o *Options) Values() []any {
	pairs := o.Pairs()
	if len(pairs) == 0 {
		return nil
	}
	out := make([]any, len(pairs))
	for i, pair := range pairs {
		out[i] = pair.Value
	}
	return out
}

// LabelOf returns the first label whose value equals value.
func (o *Options) LabelOf(value any) (string, bool) {
	for _, pair := range o.Pairs() {
		if reflect.DeepEqual(pair.Value, value) {
			return pair.Label, true
		}
	}
	return "", false
}

// Contains reports whether value is one of the option values.
func (o *Options) Contains(value any) bool {
	_, ok := o.LabelOf(value)
	return ok
}

// Merge copies every entry of other into o. Existing labels keep their
// position; entries already present are never removed.
func (o *Options) Merge(other *Options) {
	for _, pair := range other.Pairs() {
		o.Set(pair.Label, pair.Value)
	}
}

// Clone returns an independent copy.
func (o *Options) Clone() *Options {
	return NewOptions(o.Pairs()...)
}

// Map flattens the option set into a plain map, losing order.
func (o *Options) Map() map[string]any {
	pairs := o.Pairs()
	out := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		out[pair.Label] = pair.Value
	}
	return out
}
