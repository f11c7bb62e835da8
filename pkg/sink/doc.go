// Package sink exports a drawn tower to files and terminals.
//
// # Overview
//
// A "sink" turns what a tower put on a [canvas.Scene] (or the tower's own
// description) into a final output format:
//
//   - SVG: one <rect> per visible rectangle, in z-order
//   - JSON: the tower description (bounds, height, items, placements)
//   - PDF and PNG: SVG converted with rsvg-convert
//   - Terminal: rectangles rasterized onto a character grid
//   - DOT: the stacking order as a Graphviz chain
//
// # Usage
//
//	scene := canvas.NewScene()
//	t := tower.New(10, 20, tower.WithCanvas(scene))
//	t.PushCup(2)
//	t.MakeVisible()
//
//	svg := sink.RenderSVG(scene.Rects(), sink.WithMargin(10))
//	fmt.Print(sink.RenderTerminal(scene.Rects()))
//
// # Colors
//
// Towers use color names ("red", "magenta"). [Hex] maps the names a tower
// palette normally uses onto hex values; anything already in hex, or unknown,
// passes through unchanged.
//
// # External Dependencies
//
// PDF and PNG output require librsvg:
//
//	brew install librsvg          # macOS
//	apt install librsvg2-bin      # Linux
package sink
