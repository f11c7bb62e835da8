// Package canvas provides drawing surfaces for a tower.
//
// A tower only knows the [tower.Canvas] capability: it asks for rectangles
// and moves, resizes, recolors, shows and hides them. This package offers two
// implementations:
//
//   - [Null] discards everything. Useful for headless use and tests that
//     only care about the stack contents.
//   - [Scene] retains every rectangle with its z-order so that sinks can
//     export exactly what is currently visible.
//
// The caller owns the canvas and its lifetime; the same Scene can be shared
// by several towers.
package canvas

import "github.com/matzehuels/cupstack/pkg/tower"

// Null is a canvas whose shapes do nothing.
type Null struct{}

// NewNull creates a null canvas.
func NewNull() tower.Canvas {
	return Null{}
}

// NewShape returns a shape that ignores every call.
func (Null) NewShape() tower.Shape { return nullShape{} }

type nullShape struct{}

func (nullShape) SetSize(int, int)     {}
func (nullShape) SetColor(string)      {}
func (nullShape) SetPosition(int, int) {}
func (nullShape) Show()                {}
func (nullShape) Hide()                {}

// Ensure Null implements tower.Canvas.
var _ tower.Canvas = Null{}
