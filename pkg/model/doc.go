// Package model normalises a parameter schema into field descriptors, the
// typed snapshot consumed by control selection, layout ordering and binding.
// Capabilities are resolved once here (option range, soft bounds, dependent
// path) so later stages never probe the schema again.
package model
