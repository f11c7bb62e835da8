package tower

const (
	// LidHeight is the height of every lid, in tower units.
	LidHeight = 1

	// DefaultLiddedColor is the color a cup's walls take while it is covered.
	DefaultLiddedColor = "black"

	// insideColor fills the hollow part of every cup.
	insideColor = "white"
)

// CupHeight returns the conventional height of cup i: 2i-1.
// Cup 1 is one unit tall, cup 2 three units, cup 3 five units.
func CupHeight(i int) int { return 2*i - 1 }

// Lid is a fixed-height cover owned by exactly one [Cup].
type Lid struct {
	id     int
	height int
	width  int
	color  string
	shape  Shape
}

// NewLid creates a lid for cup id.
func NewLid(id, width int, color string) *Lid {
	return &Lid{id: id, height: LidHeight, width: width, color: color}
}

func (l *Lid) ID() int       { return l.id }
func (l *Lid) Height() int   { return l.height }
func (l *Lid) Width() int    { return l.width }
func (l *Lid) Color() string { return l.color }

// Cup is a stackable block. Height and width are in tower units.
// Callers are expected to pass a positive height; it is not validated.
type Cup struct {
	id          int
	height      int
	width       int
	color       string
	liddedColor string
	lid         *Lid
	shapes      *cupShapes
}

// NewCup creates a cup without a lid.
func NewCup(id, height, width int, color string) *Cup {
	return &Cup{
		id:          id,
		height:      height,
		width:       width,
		color:       color,
		liddedColor: DefaultLiddedColor,
	}
}

func (c *Cup) ID() int       { return c.id }
func (c *Cup) Height() int   { return c.height }
func (c *Cup) Width() int    { return c.width }
func (c *Cup) Color() string { return c.color }
func (c *Cup) HasLid() bool  { return c.lid != nil }
func (c *Cup) Lid() *Lid     { return c.lid }

// TotalHeight is the cup height plus the lid height when covered.
func (c *Cup) TotalHeight() int {
	if c.lid != nil {
		return c.height + c.lid.height
	}
	return c.height
}

// DisplayColor is the color the cup walls are drawn with.
func (c *Cup) DisplayColor() string {
	if c.lid != nil {
		return c.liddedColor
	}
	return c.color
}

// AttachLid covers the cup. It returns false and leaves the cup unchanged
// when a lid is already attached.
func (c *Cup) AttachLid(l *Lid) bool {
	if c.lid != nil || l == nil {
		return false
	}
	c.lid = l
	return true
}

// DetachLid uncovers the cup and returns the removed lid, or nil when the cup
// had none.
func (c *Cup) DetachLid() *Lid {
	l := c.lid
	c.lid = nil
	return l
}

// CupInfo is a read-only snapshot of a stacked cup.
type CupInfo struct {
	ID       int    `json:"id"`
	Height   int    `json:"height"`
	Width    int    `json:"width"`
	Color    string `json:"color"`
	Lidded   bool   `json:"lidded"`
	LidColor string `json:"lid_color,omitempty"`
}

// TotalHeight mirrors [Cup.TotalHeight] for the snapshot.
func (c CupInfo) TotalHeight() int {
	if c.Lidded {
		return c.Height + LidHeight
	}
	return c.Height
}

func (c *Cup) info() CupInfo {
	ci := CupInfo{ID: c.id, Height: c.height, Width: c.width, Color: c.color}
	if c.lid != nil {
		ci.Lidded = true
		ci.LidColor = c.lid.color
	}
	return ci
}
