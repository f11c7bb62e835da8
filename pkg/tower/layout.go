package tower

import "github.com/matzehuels/cupstack/pkg/observability"

// Pixel sizes of the drawn parts that do not scale with the tower unit.
const (
	wallPx   = 8 // cup side walls
	floorPx  = 5 // cup bottom
	borderPx = 2 // tower frame
	markPx   = 1 // level marks
)

const frameColor = "black"

// Placement is the derived on-screen box of one cup, lid included.
// Coordinates are absolute pixels; Y grows downwards.
type Placement struct {
	ID        int    `json:"id"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	LidHeight int    `json:"lid_height,omitempty"`
	Color     string `json:"color"`
	LidColor  string `json:"lid_color,omitempty"`
}

// CupTop is the y coordinate of the cup rim, just below the lid.
func (p Placement) CupTop() int { return p.Y + p.LidHeight }

// Bottom is the y coordinate the cup rests on.
func (p Placement) Bottom() int { return p.Y + p.Height }

// Layout derives every cup's placement from the current order and bounds,
// base to top. It is a pure function of the tower state.
func (t *Tower) Layout() []Placement {
	s := t.geom.Scale
	y := t.groundY()
	out := make([]Placement, len(t.cups))
	for i, c := range t.cups {
		h := c.TotalHeight() * s
		y -= h
		p := Placement{
			ID:     c.id,
			X:      t.geom.OriginX + (t.width-c.width)*s/2,
			Y:      y,
			Width:  c.width * s,
			Height: h,
			Color:  c.DisplayColor(),
		}
		if c.lid != nil {
			p.LidHeight = c.lid.height * s
			p.LidColor = c.lid.color
		}
		out[i] = p
	}
	return out
}

// groundY is the pixel row the base cup rests on.
func (t *Tower) groundY() int { return t.geom.OriginY + t.maxHeight*t.geom.Scale }

// fitsDisplay reports whether groundY stays within DisplayLimit, without
// computing the product for heights that would overflow it.
func (t *Tower) fitsDisplay() bool {
	g := t.geom
	if g.Scale <= 0 {
		return g.OriginY <= g.DisplayLimit
	}
	return t.maxHeight <= (g.DisplayLimit-g.OriginY)/g.Scale
}

// reposition recomputes every placement and, while visible, pushes them to
// the canvas.
func (t *Tower) reposition() {
	placements := t.Layout()
	if !t.visible {
		return
	}
	for i, c := range t.cups {
		t.drawCup(c, placements[i])
	}
	observability.Tower().OnRedraw(len(t.cups))
}

// =============================================================================
// Cup shapes
// =============================================================================

type cupShapes struct {
	left, right, bottom, inside Shape
}

func (cs *cupShapes) hide() {
	if cs == nil {
		return
	}
	cs.left.Hide()
	cs.right.Hide()
	cs.bottom.Hide()
	cs.inside.Hide()
}

func (t *Tower) drawCup(c *Cup, p Placement) {
	if c.shapes == nil {
		c.shapes = &cupShapes{
			left:   t.canvas.NewShape(),
			right:  t.canvas.NewShape(),
			bottom: t.canvas.NewShape(),
			inside: t.canvas.NewShape(),
		}
	}
	s := t.geom.Scale
	hPx := c.height * s
	wPx := c.width * s
	wall := min(wallPx, wPx/2)
	floor := min(floorPx, hPx)
	top := p.CupTop()
	color := c.DisplayColor()

	cs := c.shapes
	cs.left.SetSize(hPx, wall)
	cs.left.SetPosition(p.X, top)
	cs.left.SetColor(color)

	cs.right.SetSize(hPx, wall)
	cs.right.SetPosition(p.X+wPx-wall, top)
	cs.right.SetColor(color)

	cs.bottom.SetSize(floor, wPx)
	cs.bottom.SetPosition(p.X, top+hPx-floor)
	cs.bottom.SetColor(color)

	cs.inside.SetSize(hPx-floor, wPx-2*wall)
	cs.inside.SetPosition(p.X+wall, top)
	cs.inside.SetColor(insideColor)

	cs.left.Show()
	cs.right.Show()
	cs.bottom.Show()
	cs.inside.Show()

	if c.lid != nil {
		if c.lid.shape == nil {
			c.lid.shape = t.canvas.NewShape()
		}
		c.lid.shape.SetSize(p.LidHeight, c.lid.width*s)
		c.lid.shape.SetPosition(p.X, p.Y)
		c.lid.shape.SetColor(c.lid.color)
		c.lid.shape.Show()
	}
}

func hideLid(l *Lid) {
	if l != nil && l.shape != nil {
		l.shape.Hide()
	}
}

// =============================================================================
// Frame
// =============================================================================

type frameShapes struct {
	left, right, base Shape
	marks             []Shape
}

// drawFrame draws the two side borders, the base and one mark per unit of
// height. Shapes are created on first use and reused afterwards.
func (t *Tower) drawFrame() {
	s := t.geom.Scale
	x, y := t.geom.OriginX, t.geom.OriginY
	hPx := t.maxHeight * s
	wPx := t.width * s

	if t.frame == nil {
		t.frame = &frameShapes{
			left:  t.canvas.NewShape(),
			right: t.canvas.NewShape(),
			base:  t.canvas.NewShape(),
			marks: make([]Shape, max(t.maxHeight, 0)),
		}
		for i := range t.frame.marks {
			t.frame.marks[i] = t.canvas.NewShape()
		}
	}

	f := t.frame
	place := func(sh Shape, x, y, h, w int) {
		sh.SetSize(h, w)
		sh.SetColor(frameColor)
		sh.SetPosition(x, y)
		sh.Show()
	}
	place(f.left, x, y, hPx, borderPx)
	place(f.right, x+wPx, y, hPx, borderPx)
	place(f.base, x, y+hPx, borderPx, wPx+borderPx)

	ground := t.groundY()
	for i, m := range f.marks {
		place(m, x, ground-(i+1)*s, markPx, wPx)
	}
}

func (t *Tower) hideFrame() {
	if t.frame == nil {
		return
	}
	t.frame.left.Hide()
	t.frame.right.Hide()
	t.frame.base.Hide()
	for _, m := range t.frame.marks {
		m.Hide()
	}
}
