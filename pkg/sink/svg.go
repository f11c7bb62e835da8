package sink

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/cupstack/pkg/canvas"
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	margin     int
	background string
	title      string
	cropped    bool
}

// WithMargin adds empty space around the drawing, in pixels.
func WithMargin(px int) SVGOption { return func(r *svgRenderer) { r.margin = max(px, 0) } }

// WithBackground fills the canvas with a color before drawing.
func WithBackground(color string) SVGOption { return func(r *svgRenderer) { r.background = color } }

// WithTitle sets the document <title>.
func WithTitle(s string) SVGOption { return func(r *svgRenderer) { r.title = s } }

// WithCrop moves the drawing so its top-left corner sits at the margin
// instead of keeping absolute canvas coordinates.
func WithCrop() SVGOption { return func(r *svgRenderer) { r.cropped = true } }

// RenderSVG writes one <rect> per rectangle, in the given order, so later
// rectangles are painted over earlier ones. Pass [canvas.Scene.Rects] to
// export exactly what is visible.
func RenderSVG(rects []canvas.Rect, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	minX, minY, maxX, maxY := extent(rects)
	dx, dy := r.margin, r.margin
	if r.cropped {
		dx -= minX
		dy -= minY
		maxX -= minX
		maxY -= minY
	}
	width := maxX + 2*r.margin
	height := maxY + 2*r.margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		width, height, width, height)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", html.EscapeString(r.title))
	}
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", Hex(r.background))
	}
	for _, rc := range rects {
		if rc.Empty() {
			continue
		}
		fmt.Fprintf(&buf, `  <rect id="shape-%d" x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
			rc.ID, rc.X+dx, rc.Y+dy, rc.Width, rc.Height, html.EscapeString(Hex(rc.Color)))
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// extent returns the bounding box of the non-empty rectangles. An empty list
// yields all zeros.
func extent(rects []canvas.Rect) (minX, minY, maxX, maxY int) {
	first := true
	for _, r := range rects {
		if r.Empty() {
			continue
		}
		if first {
			minX, minY, maxX, maxY = r.X, r.Y, r.Right(), r.Bottom()
			first = false
			continue
		}
		minX = min(minX, r.X)
		minY = min(minY, r.Y)
		maxX = max(maxX, r.Right())
		maxY = max(maxY, r.Bottom())
	}
	return minX, minY, maxX, maxY
}
