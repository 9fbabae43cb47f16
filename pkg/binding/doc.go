// Package binding connects a parameter schema to live controls.
//
// A Session owns one ControlBinding per field, created lazily by Bind and
// cached until Close. Every committed control edit is written back onto the
// schema and, unless the session waits for a confirm button, fires the
// execution trigger. Fields whose options come from an editable path also get
// a DependentPathBinding: editing the path re-resolves the field, merges the
// new default into the shown options, selects it, replaces the options with
// the freshly resolved range and finally fires the trigger.
package binding
