package canvas

import (
	"slices"

	"github.com/matzehuels/cupstack/pkg/tower"
)

// Rect is a visible rectangle. X and Y are the top-left corner in pixels.
type Rect struct {
	ID     int    `json:"id"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Color  string `json:"color"`
}

// Right returns the first pixel column past the rectangle.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first pixel row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Empty reports whether the rectangle covers no pixel.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Scene is a retained-mode canvas. Showing a shape raises it above every
// other visible shape; hiding it removes it from the visible list.
//
// Scene is not safe for concurrent use.
type Scene struct {
	shapes []*sceneShape
	order  []*sceneShape // visible shapes, bottom to top
	nextID int
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// NewShape allocates a hidden shape.
func (s *Scene) NewShape() tower.Shape {
	s.nextID++
	sh := &sceneShape{scene: s, rect: Rect{ID: s.nextID}}
	s.shapes = append(s.shapes, sh)
	return sh
}

// Rects returns the visible rectangles bottom to top, skipping empty ones.
func (s *Scene) Rects() []Rect {
	out := make([]Rect, 0, len(s.order))
	for _, sh := range s.order {
		if !sh.rect.Empty() {
			out = append(out, sh.rect)
		}
	}
	return out
}

// Len returns the number of shapes ever allocated.
func (s *Scene) Len() int { return len(s.shapes) }

// Bounds returns the smallest width and height, measured from the origin,
// that contain every visible rectangle.
func (s *Scene) Bounds() (width, height int) {
	for _, r := range s.Rects() {
		width = max(width, r.Right())
		height = max(height, r.Bottom())
	}
	return width, height
}

// Clear hides every shape.
func (s *Scene) Clear() {
	for _, sh := range s.order {
		sh.visible = false
	}
	s.order = s.order[:0]
}

func (s *Scene) raise(sh *sceneShape) {
	s.drop(sh)
	s.order = append(s.order, sh)
}

func (s *Scene) drop(sh *sceneShape) {
	if i := slices.Index(s.order, sh); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
}

type sceneShape struct {
	scene   *Scene
	rect    Rect
	visible bool
}

func (sh *sceneShape) SetSize(height, width int) {
	sh.rect.Height = height
	sh.rect.Width = width
}

func (sh *sceneShape) SetColor(color string) { sh.rect.Color = color }

func (sh *sceneShape) SetPosition(x, y int) {
	sh.rect.X = x
	sh.rect.Y = y
}

func (sh *sceneShape) Show() {
	sh.visible = true
	sh.scene.raise(sh)
}

func (sh *sceneShape) Hide() {
	if !sh.visible {
		return
	}
	sh.visible = false
	sh.scene.drop(sh)
}

// Ensure Scene implements tower.Canvas.
var _ tower.Canvas = (*Scene)(nil)
