// Package schemafile declares parameter schemas in JSON or YAML documents so a
// form can be described without Go code. Actions and custom path resolvers
// cannot be expressed in a file and are attached with options at load time.
package schemafile
