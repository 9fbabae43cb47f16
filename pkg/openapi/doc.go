// Package openapi derives parameter schemas from component schemas of an
// OpenAPI 3 document. Documents are read from files, an fs.FS or HTTP and
// parsed with kin-openapi.
package openapi
