package schemafile

import (
	"github.com/goliatone/go-paramform/pkg/param"
)

// Document is the decoded shape of a schema file.
type Document struct {
	Name       string          `json:"name" yaml:"name"`
	Parameters []ParameterFile `json:"parameters" yaml:"parameters"`
}

// ParameterFile declares one parameter.
type ParameterFile struct {
	Name       string      `json:"name" yaml:"name"`
	Type       string      `json:"type" yaml:"type"`
	Default    any         `json:"default" yaml:"default"`
	Doc        string      `json:"doc" yaml:"doc"`
	Constant   bool        `json:"constant" yaml:"constant"`
	Precedence *float64    `json:"precedence" yaml:"precedence"`
	Bounds     *BoundsFile `json:"bounds" yaml:"bounds"`
	SoftBounds *BoundsFile `json:"softBounds" yaml:"softBounds"`
	Objects    []any       `json:"objects" yaml:"objects"`
	// Labels pairs with Objects by position and replaces the derived labels.
	Labels []string `json:"labels" yaml:"labels"`
	Path   string   `json:"path" yaml:"path"`
}

// BoundsFile holds optional numeric limits.
type BoundsFile struct {
	Min *float64 `json:"min" yaml:"min"`
	Max *float64 `json:"max" yaml:"max"`
}

func (b *BoundsFile) bounds() *param.Bounds {
	if b == nil || (b.Min == nil && b.Max == nil) {
		return nil
	}
	return &param.Bounds{Min: b.Min, Max: b.Max}
}

// Store keeps the documents found by LoadFS keyed by schema name. Schemas are
// built on request because a schema carries mutable values.
type Store struct {
	documents map[string]Document
	sources   map[string]string
	options   []Option
}
