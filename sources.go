package paramform

import (
	"io/fs"

	"github.com/goliatone/go-paramform/pkg/openapi"
	"github.com/goliatone/go-paramform/pkg/param"
	"github.com/goliatone/go-paramform/pkg/schemafile"
)

// NewOpenAPIAdapter builds an adapter from loader options with the default
// converter.
func NewOpenAPIAdapter(options ...openapi.LoaderOption) *openapi.Adapter {
	return openapi.NewAdapter(openapi.NewLoader(options...), nil)
}

// LoadSchemaFile reads a JSON or YAML schema document from fsys.
func LoadSchemaFile(fsys fs.FS, name string, options ...schemafile.Option) (*param.Schema, error) {
	return schemafile.Load(fsys, name, options...)
}
