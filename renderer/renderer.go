// Package renderer is the output boundary of the layout pipeline.
package renderer

import "etiketka/layout"

// Renderer turns a built layout result into final output bytes,
// for example a PDF document.
type Renderer interface {
	Render(result *layout.Result) ([]byte, error)
}
