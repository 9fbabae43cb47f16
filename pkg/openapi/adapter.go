package openapi

import (
	"context"
	"fmt"

	"github.com/goliatone/go-paramform/pkg/param"
)

// Adapter chains a Loader and a Converter.
type Adapter struct {
	loader    *Loader
	converter *Converter
}

// NewAdapter builds an Adapter. Nil arguments fall back to defaults.
func NewAdapter(loader *Loader, converter *Converter) *Adapter {
	if loader == nil {
		loader = NewLoader()
	}
	if converter == nil {
		converter = NewConverter()
	}
	return &Adapter{loader: loader, converter: converter}
}

// Schema loads src and converts its component schema.
func (a *Adapter) Schema(ctx context.Context, src Source, component string) (*param.Schema, error) {
	data, err := a.loader.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("openapi: load %s: %w", src.Location(), err)
	}
	return a.converter.FromData(ctx, data, component)
}

// Components lists the component schemas available at src.
func (a *Adapter) Components(ctx context.Context, src Source) ([]string, error) {
	data, err := a.loader.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("openapi: load %s: %w", src.Location(), err)
	}
	return a.converter.Components(ctx, data)
}
