package tower

import (
	"cmp"
	"slices"

	"github.com/matzehuels/cupstack/pkg/errors"
	"github.com/matzehuels/cupstack/pkg/observability"
)

const (
	// DefaultWidth and DefaultMaxHeight are the bounds used by [NewWithCups].
	DefaultWidth     = 10
	DefaultMaxHeight = 20
)

// Tower is an ordered stack of cups bounded by a maximum total height.
//
// A Tower is not safe for concurrent use; callers that share one must
// serialize access.
type Tower struct {
	width     int
	maxHeight int
	cups      []*Cup // base to top
	visible   bool
	lastOK    bool

	geom        Geometry
	canvas      Canvas
	notifier    Notifier
	palette     []string
	lidColor    string
	liddedColor string
	frame       *frameShapes
}

// New creates an empty tower. width and maxHeight are fixed for its lifetime.
func New(width, maxHeight int, opts ...Option) *Tower {
	t := &Tower{
		width:       width,
		maxHeight:   maxHeight,
		lastOK:      true,
		geom:        DefaultGeometry(),
		canvas:      nopCanvas{},
		notifier:    nopNotifier{},
		palette:     DefaultPalette,
		lidColor:    DefaultLidColor,
		liddedColor: DefaultLiddedColor,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewWithCups creates a tower with the default bounds and pushes cups 1..n.
// Cups that do not fit are rejected like any other push; [Tower.Ok]
// reflects the last of them.
func NewWithCups(n int, opts ...Option) *Tower {
	t := New(DefaultWidth, DefaultMaxHeight, opts...)
	for i := 1; i <= n; i++ {
		_ = t.PushCup(i)
	}
	return t
}

// =============================================================================
// Cups
// =============================================================================

// PushCup stacks cup id on top using the conventional height [CupHeight],
// the tower width and a palette color.
func (t *Tower) PushCup(id int) error {
	if id <= 0 {
		return t.fail("pushCup", errors.New(errors.ErrCodeInvalidInput, "cup number must be positive, got %d", id))
	}
	// Past (maxHeight+1)/2 the cup cannot fit even an empty tower, and
	// CupHeight would overflow for ids near MaxInt.
	if t.find(id) == nil && id > (t.maxHeight+1)/2 {
		return t.fail("pushCup", errors.New(errors.ErrCodeCapacityExceeded, "no room in the tower for cup %d", id))
	}
	return t.addCup("pushCup", id, CupHeight(id), t.width, t.colorFor(id))
}

// AddCup stacks a cup with explicit dimensions on top of the tower.
// It fails when id is already stacked or when the cup would not fit.
func (t *Tower) AddCup(id, height, width int, color string) error {
	return t.addCup("pushCup", id, height, width, color)
}

func (t *Tower) addCup(op string, id, height, width int, color string) error {
	if t.find(id) != nil {
		return t.fail(op, errors.New(errors.ErrCodeDuplicateID, "cup %d is already in the tower", id))
	}
	if height <= 0 || width <= 0 {
		return t.fail(op, errors.New(errors.ErrCodeInvalidInput, "cup %d needs a positive size, got %dx%d", id, width, height))
	}
	if height > t.room() {
		return t.fail(op, errors.New(errors.ErrCodeCapacityExceeded, "no room in the tower for cup %d", id))
	}
	c := NewCup(id, height, width, color)
	c.liddedColor = t.liddedColor
	t.cups = append(t.cups, c)
	t.reposition()
	return t.succeed(op)
}

// PopCup removes the top cup together with its lid.
func (t *Tower) PopCup() error {
	if len(t.cups) == 0 {
		return t.fail("popCup", errors.New(errors.ErrCodeEmptyTower, "the tower is empty"))
	}
	top := t.cups[len(t.cups)-1]
	t.cups = t.cups[:len(t.cups)-1]
	t.destroy(top)
	t.reposition()
	return t.succeed("popCup")
}

// RemoveCup removes cup id wherever it sits in the stack.
func (t *Tower) RemoveCup(id int) error {
	i := t.index(id)
	if i < 0 {
		return t.fail("removeCup", errors.New(errors.ErrCodeNotFound, "cup %d is not in the tower", id))
	}
	c := t.cups[i]
	t.cups = slices.Delete(t.cups, i, i+1)
	t.destroy(c)
	t.reposition()
	return t.succeed("removeCup")
}

// =============================================================================
// Lids
// =============================================================================

// PushLid covers cup id with a lid of the configured lid color.
func (t *Tower) PushLid(id int) error {
	return t.PushLidColor(id, t.lidColor)
}

// PushLidColor covers cup id with a lid of the given color. It fails when
// the cup is missing, already covered, or when one more unit would not fit.
func (t *Tower) PushLidColor(id int, color string) error {
	c := t.find(id)
	if c == nil {
		return t.fail("pushLid", errors.New(errors.ErrCodeNotFound, "cup %d is not in the tower", id))
	}
	if c.HasLid() {
		return t.fail("pushLid", errors.New(errors.ErrCodeAlreadyCovered, "cup %d already has a lid", id))
	}
	if LidHeight > t.room() {
		return t.fail("pushLid", errors.New(errors.ErrCodeCapacityExceeded, "no room in the tower for a lid on cup %d", id))
	}
	c.AttachLid(NewLid(id, c.width, color))
	t.reposition()
	return t.succeed("pushLid")
}

// PopLid removes the lid closest to the top of the tower.
func (t *Tower) PopLid() error {
	for i := len(t.cups) - 1; i >= 0; i-- {
		if t.cups[i].HasLid() {
			hideLid(t.cups[i].DetachLid())
			t.reposition()
			return t.succeed("popLid")
		}
	}
	return t.fail("popLid", errors.New(errors.ErrCodeNoLid, "no cup in the tower has a lid"))
}

// RemoveLid uncovers cup id.
func (t *Tower) RemoveLid(id int) error {
	c := t.find(id)
	if c == nil {
		return t.fail("removeLid", errors.New(errors.ErrCodeNotFound, "cup %d is not in the tower", id))
	}
	if !c.HasLid() {
		return t.fail("removeLid", errors.New(errors.ErrCodeNoLid, "cup %d has no lid", id))
	}
	hideLid(c.DetachLid())
	t.reposition()
	return t.succeed("removeLid")
}

// Cover lids every uncovered cup from the base upwards. It stops at the
// first cup whose lid would not fit; lids placed before that point stay.
func (t *Tower) Cover() error {
	for _, c := range t.cups {
		if c.HasLid() {
			continue
		}
		if LidHeight > t.room() {
			t.reposition()
			return t.fail("cover", errors.New(errors.ErrCodeCapacityExceeded, "no room in the tower to cover cup %d", c.id))
		}
		c.AttachLid(NewLid(c.id, c.width, t.lidColor))
	}
	t.reposition()
	return t.succeed("cover")
}

// =============================================================================
// Reordering
// =============================================================================

// OrderTower sorts the stack so the largest number rests at the base and the
// smallest sits on top.
func (t *Tower) OrderTower() error {
	slices.SortFunc(t.cups, func(a, b *Cup) int { return cmp.Compare(b.id, a.id) })
	t.reposition()
	return t.succeed("orderTower")
}

// ReverseTower flips the stack order.
func (t *Tower) ReverseTower() error {
	slices.Reverse(t.cups)
	t.reposition()
	return t.succeed("reverseTower")
}

// Swap exchanges the positions of two cups. Both operands must be cup
// references to cups currently in the tower.
func (t *Tower) Swap(a, b Item) error {
	for _, it := range []Item{a, b} {
		if it.Kind != KindCup {
			return t.fail("swap", errors.New(errors.ErrCodeInvalidReference, "only cups can be swapped, got %q", it.Kind))
		}
	}
	i, j := t.index(a.ID), t.index(b.ID)
	if i < 0 {
		return t.fail("swap", errors.New(errors.ErrCodeNotFound, "cup %d is not in the tower", a.ID))
	}
	if j < 0 {
		return t.fail("swap", errors.New(errors.ErrCodeNotFound, "cup %d is not in the tower", b.ID))
	}
	t.cups[i], t.cups[j] = t.cups[j], t.cups[i]
	t.reposition()
	return t.succeed("swap")
}

// SwapToReduce searches cup pairs (i < j, i ascending then j ascending) for
// an exchange that would lower the tower height and returns the first one.
// The tower is left as it was and the last-operation flag is not touched.
//
// The height is a sum over the cups in the tower, so no exchange can lower
// it and the search reports found == false for every tower.
func (t *Tower) SwapToReduce() (a, b Item, found bool) {
	current := t.Height()
	for i := 0; i < len(t.cups); i++ {
		for j := i + 1; j < len(t.cups); j++ {
			t.cups[i], t.cups[j] = t.cups[j], t.cups[i]
			h := t.Height()
			t.cups[i], t.cups[j] = t.cups[j], t.cups[i]
			if h < current {
				return CupRef(t.cups[i].id), CupRef(t.cups[j].id), true
			}
		}
	}
	return Item{}, Item{}, false
}

// =============================================================================
// Visibility
// =============================================================================

// MakeVisible draws the frame, the level marks and every cup. It fails when
// the tower is taller than the display can show. Calling it again redraws
// the same shapes.
func (t *Tower) MakeVisible() error {
	if t.width <= 0 || t.maxHeight <= 0 {
		return t.fail("makeVisible", errors.New(errors.ErrCodeDisplayBound,
			"a %dx%d tower cannot be drawn", t.width, t.maxHeight))
	}
	if !t.fitsDisplay() {
		return t.fail("makeVisible", errors.New(errors.ErrCodeDisplayBound,
			"a tower %d units tall does not fit the display", t.maxHeight))
	}
	t.visible = true
	t.drawFrame()
	t.reposition()
	return t.succeed("makeVisible")
}

// MakeInvisible hides the frame, marks and cups.
func (t *Tower) MakeInvisible() error {
	t.visible = false
	t.hideFrame()
	for _, c := range t.cups {
		c.shapes.hide()
		if c.lid != nil {
			hideLid(c.lid)
		}
	}
	return t.succeed("makeInvisible")
}

// =============================================================================
// Queries
// =============================================================================

// Ok reports whether the most recent mutating operation succeeded.
func (t *Tower) Ok() bool { return t.lastOK }

// Visible reports whether the tower is being drawn.
func (t *Tower) Visible() bool { return t.visible }

// Width returns the tower width in units.
func (t *Tower) Width() int { return t.width }

// MaxHeight returns the largest total height the tower accepts.
func (t *Tower) MaxHeight() int { return t.maxHeight }

// Len returns the number of cups in the tower.
func (t *Tower) Len() int { return len(t.cups) }

// Geometry returns the unit-to-pixel mapping used for drawing.
func (t *Tower) Geometry() Geometry { return t.geom }

// room is the height still free below MaxHeight. Written as a difference so
// callers compare against it without overflowing on large operands.
func (t *Tower) room() int { return t.maxHeight - t.Height() }

// Height is the sum of the total heights of all cups.
func (t *Tower) Height() int {
	h := 0
	for _, c := range t.cups {
		h += c.TotalHeight()
	}
	return h
}

// LidedCups returns the numbers of all covered cups in ascending order.
func (t *Tower) LidedCups() []int {
	ids := []int{}
	for _, c := range t.cups {
		if c.HasLid() {
			ids = append(ids, c.id)
		}
	}
	slices.Sort(ids)
	return ids
}

// StackingItems lists the tower contents from base to top: each cup, then
// its lid when covered.
func (t *Tower) StackingItems() []Item {
	items := make([]Item, 0, len(t.cups)*2)
	for _, c := range t.cups {
		items = append(items, CupRef(c.id))
		if c.HasLid() {
			items = append(items, LidRef(c.id))
		}
	}
	return items
}

// Cups returns a snapshot of the stacked cups, base to top.
func (t *Tower) Cups() []CupInfo {
	out := make([]CupInfo, len(t.cups))
	for i, c := range t.cups {
		out[i] = c.info()
	}
	return out
}

// =============================================================================
// Helpers
// =============================================================================

func (t *Tower) find(id int) *Cup {
	if i := t.index(id); i >= 0 {
		return t.cups[i]
	}
	return nil
}

func (t *Tower) index(id int) int {
	return slices.IndexFunc(t.cups, func(c *Cup) bool { return c.id == id })
}

func (t *Tower) colorFor(id int) string {
	if id < 0 {
		id = -id
	}
	return t.palette[id%len(t.palette)]
}

// destroy hides every shape of a cup leaving the tower.
func (t *Tower) destroy(c *Cup) {
	c.shapes.hide()
	if l := c.DetachLid(); l != nil {
		hideLid(l)
	}
}

func (t *Tower) succeed(op string) error {
	t.lastOK = true
	observability.Tower().OnOperation(op, t.Height(), nil)
	return nil
}

func (t *Tower) fail(op string, err *errors.Error) error {
	t.lastOK = false
	if t.visible {
		t.notifier.NotifyError(err.Message)
	}
	observability.Tower().OnOperation(op, t.Height(), err)
	return err
}
