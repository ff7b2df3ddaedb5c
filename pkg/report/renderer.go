package report

import "context"

// Renderer converts a Report into a byte representation (HTML, text, JSON, or
// an interactive session transcript).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, rep Report, options RenderOptions) ([]byte, error)
}
