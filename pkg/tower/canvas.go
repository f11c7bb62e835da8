package tower

// Shape is an opaque rectangle owned by a [Canvas]. Positions are absolute
// and refer to the top-left corner.
type Shape interface {
	SetSize(height, width int)
	SetColor(color string)
	SetPosition(x, y int)
	Show()
	Hide()
}

// Canvas hands out shapes. The tower never reads positions back from it.
type Canvas interface {
	NewShape() Shape
}

// Notifier receives user-facing failure messages while the tower is visible.
type Notifier interface {
	NotifyError(msg string)
}

// NotifierFunc adapts a function to [Notifier].
type NotifierFunc func(msg string)

// NotifyError calls f(msg).
func (f NotifierFunc) NotifyError(msg string) { f(msg) }

type nopCanvas struct{}

func (nopCanvas) NewShape() Shape { return nopShape{} }

type nopShape struct{}

func (nopShape) SetSize(int, int)     {}
func (nopShape) SetColor(string)      {}
func (nopShape) SetPosition(int, int) {}
func (nopShape) Show()                {}
func (nopShape) Hide()                {}

type nopNotifier struct{}

func (nopNotifier) NotifyError(string) {}

// Geometry maps tower units onto the display.
type Geometry struct {
	Scale        int // pixels per tower unit
	OriginX      int // left edge of the tower frame
	OriginY      int // top edge of the tower frame
	DisplayLimit int // largest y coordinate the display can show
}

// DefaultGeometry returns a 10px scale with the frame at (50, 50) on an
// 800px-tall display.
func DefaultGeometry() Geometry {
	return Geometry{Scale: 10, OriginX: 50, OriginY: 50, DisplayLimit: 800}
}
