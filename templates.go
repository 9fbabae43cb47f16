package paramform

import (
	"io/fs"

	"github.com/goliatone/go-paramform/pkg/renderers/html"
)

// EmbeddedTemplates exposes the built-in HTML sink templates so callers can
// reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.Templates()
}
