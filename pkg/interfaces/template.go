package interfaces

import (
	"io"
)

// TemplateRenderer abstracts the template engine used to emit static pages.
// Implementations must be safe for concurrent use by the generator workers.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
