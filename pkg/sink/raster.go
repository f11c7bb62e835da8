package sink

import "github.com/matzehuels/cupstack/pkg/canvas"

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []SVGOption
	scale   float64
}

// WithPNGSVGOptions passes options through to the underlying SVG renderer.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithScale sets the PNG scale factor (default 2.0).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// RenderPNG renders the rectangles as PNG via SVG conversion.
// Requires librsvg.
func RenderPNG(rects []canvas.Rect, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	return ToPNG(RenderSVG(rects, r.svgOpts...), r.scale)
}

// RenderPDF renders the rectangles as PDF via SVG conversion.
// Requires librsvg.
func RenderPDF(rects []canvas.Rect, opts ...SVGOption) ([]byte, error) {
	return ToPDF(RenderSVG(rects, opts...))
}
