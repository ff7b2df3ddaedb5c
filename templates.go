package binsize

import (
	"io/fs"

	"github.com/goliatone/go-binsize/pkg/renderers/html"
)

// EmbeddedTemplates exposes the built-in HTML report templates so callers can
// reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}
