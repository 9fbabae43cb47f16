// Package param declares parameter schemas: named, typed, bounded fields whose
// values can be read and written by name. Capabilities that the binding engine
// consumes (option ranges, soft bounds, dependent paths) are exposed as
// explicit methods on Parameter instead of being probed dynamically.
//
// Kinds form a small closed hierarchy. Each Kind reports its lineage from the
// most specific tag to the root "parameter" tag so control selection can walk
// it without reflection.
package param
