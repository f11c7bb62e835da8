package tower_test

import (
	"math"
	"reflect"
	"slices"
	"testing"

	"github.com/matzehuels/cupstack/pkg/canvas"
	"github.com/matzehuels/cupstack/pkg/errors"
	"github.com/matzehuels/cupstack/pkg/observability"
	"github.com/matzehuels/cupstack/pkg/tower"
)

func mustOK(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func wantCode(t *testing.T, tw *tower.Tower, err error, code errors.Code) {
	t.Helper()
	if !errors.Is(err, code) {
		t.Errorf("error = %v, want code %s", err, code)
	}
	if tw.Ok() {
		t.Error("Ok() = true after failed operation")
	}
}

func cups(ids ...int) []tower.Item {
	items := make([]tower.Item, len(ids))
	for i, id := range ids {
		items[i] = tower.CupRef(id)
	}
	return items
}

func TestPushCupHeight(t *testing.T) {
	tw := tower.New(10, 20)
	mustOK(t, tw.PushCup(1))
	mustOK(t, tw.PushCup(2))

	if got := tw.Height(); got != 4 {
		t.Errorf("Height() = %d, want 4", got)
	}
	if !tw.Ok() {
		t.Error("Ok() = false after successful pushes")
	}
	if !reflect.DeepEqual(tw.StackingItems(), cups(1, 2)) {
		t.Errorf("StackingItems() = %v", tw.StackingItems())
	}
}

func TestAddCupExplicitDimensions(t *testing.T) {
	tw := tower.New(10, 20)
	mustOK(t, tw.AddCup(7, 4, 6, "teal"))

	got := tw.Cups()
	if len(got) != 1 || got[0].Height != 4 || got[0].Width != 6 || got[0].Color != "teal" {
		t.Errorf("Cups() = %+v", got)
	}
	if tw.Height() != 4 {
		t.Errorf("Height() = %d, want 4", tw.Height())
	}
}

func TestPushCupDuplicate(t *testing.T) {
	tw := tower.New(10, 20)
	mustOK(t, tw.PushCup(1))
	mustOK(t, tw.PushCup(2))
	before := tw.StackingItems()

	err := tw.PushCup(2)
	wantCode(t, tw, err, errors.ErrCodeDuplicateID)

	if tw.Height() != 4 {
		t.Errorf("Height() = %d, want 4", tw.Height())
	}
	if !reflect.DeepEqual(tw.StackingItems(), before) {
		t.Errorf("StackingItems() changed: %v", tw.StackingItems())
	}
}

func TestPushCupCapacity(t *testing.T) {
	tw := tower.New(10, 5)
	mustOK(t, tw.PushCup(1))
	mustOK(t, tw.PushCup(2))

	err := tw.PushCup(3)
	wantCode(t, tw, err, errors.ErrCodeCapacityExceeded)

	if tw.Len() != 2 || tw.Height() != 4 {
		t.Errorf("Len() = %d, Height() = %d; want 2, 4", tw.Len(), tw.Height())
	}

	// Exactly filling the tower is allowed.
	tw = tower.New(10, 4)
	mustOK(t, tw.PushCup(1))
	mustOK(t, tw.PushCup(2))
}

func TestCapacityLargeOperands(t *testing.T) {
	tests := []struct {
		name string
		op   func(*tower.Tower) error
		code errors.Code
	}{
		{"add max height", func(tw *tower.Tower) error { return tw.AddCup(2, math.MaxInt, 10, "red") }, errors.ErrCodeCapacityExceeded},
		{"push id beyond max height", func(tw *tower.Tower) error { return tw.PushCup(11) }, errors.ErrCodeCapacityExceeded},
		{"push id that overflows", func(tw *tower.Tower) error { return tw.PushCup(4611686018427387905) }, errors.ErrCodeCapacityExceeded},
		{"push max id", func(tw *tower.Tower) error { return tw.PushCup(math.MaxInt) }, errors.ErrCodeCapacityExceeded},
		{"add zero height", func(tw *tower.Tower) error { return tw.AddCup(2, 0, 10, "red") }, errors.ErrCodeInvalidInput},
		{"add negative width", func(tw *tower.Tower) error { return tw.AddCup(2, 3, -1, "red") }, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := tower.New(10, 20)
			mustOK(t, tw.PushCup(1))
			wantCode(t, tw, tt.op(tw), tt.code)
			if tw.Len() != 1 || tw.Height() != 1 {
				t.Errorf("Len() = %d, Height() = %d; want 1, 1", tw.Len(), tw.Height())
			}
		})
	}
}

func TestPushCupDuplicateBeforeCapacity(t *testing.T) {
	tw := tower.New(10, 20)
	mustOK(t, tw.AddCup(1000, 1, 10, "red"))
	wantCode(t, tw, tw.PushCup(1000), errors.ErrCodeDuplicateID)
}

func TestPushCupRejectsNonPositive(t *testing.T) {
	tw := tower.New(10, 20)
	wantCode(t, tw, tw.PushCup(0), errors.ErrCodeInvalidInput)
	wantCode(t, tw, tw.PushCup(-2), errors.ErrCodeInvalidInput)
	if tw.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tw.Len())
	}
}

func TestPopCup(t *testing.T) {
	tw := tower.New(10, 20)
	wantCode(t, tw, tw.PopCup(), errors.ErrCodeEmptyTower)

	mustOK(t, tw.PushCup(1))
	mustOK(t, tw.PushCup(3))
	mustOK(t, tw.PushLid(3))
	before := tw.Height()

	mustOK(t, tw.PopCup())
	if !tw.Ok() {
		t.Error("Ok() = false after PopCup")
	}
	if got := before - tw.Height(); got != 5+tower.LidHeight {
		t.Errorf("height dropped by %d, want %d", got, 5+tower.LidHeight)
	}
	if !reflect.DeepEqual(tw.StackingItems(), cups(1)) {
		t.Errorf("StackingItems() = %v", tw.StackingItems())
	}
	if len(tw.LidedCups()) != 0 {
		t.Errorf("LidedCups() = %v, lid should leave with its cup", tw.LidedCups())
	}
}

func TestRemoveCup(t *testing.T) {
	tw := tower.New(10, 20)
	for _, id := range []int{1, 2, 3} {
		mustOK(t, tw.PushCup(id))
	}

	mustOK(t, tw.RemoveCup(2))
	if !reflect.DeepEqual(tw.StackingItems(), cups(1, 3)) {
		t.Errorf("StackingItems() = %v", tw.StackingItems())
	}
	if tw.Height() != 6 {
		t.Errorf("Height() = %d, want 6", tw.Height())
	}

	wantCode(t, tw, tw.RemoveCup(2), errors.ErrCodeNotFound)
	if tw.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tw.Len())
	}
}

func TestLids(t *testing.T) {
	tw := tower.New(10, 20)
	for _, id := range []int{1, 2, 3} {
		mustOK(t, tw.PushCup(id))
	}

	mustOK(t, tw.PushLid(3))
	mustOK(t, tw.PushLid(1))
	if got := tw.LidedCups(); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("LidedCups() = %v, want [1 3]", got)
	}
	if tw.Height() != 9+2 {
		t.Errorf("Height() = %d, want 11", tw.Height())
	}

	wantCode(t, tw, tw.PushLid(3), errors.ErrCodeAlreadyCovered)
	wantCode(t, tw, tw.PushLid(9), errors.ErrCodeNotFound)

	mustOK(t, tw.RemoveLid(3))
	if got := tw.LidedCups(); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("LidedCups() = %v, want [1]", got)
	}
	wantCode(t, tw, tw.RemoveLid(3), errors.ErrCodeNoLid)
	wantCode(t, tw, tw.RemoveLid(8), errors.ErrCodeNotFound)
}

func TestLidedCupsEmpty(t *testing.T) {
	tw := tower.New(10, 20)
	if got := tw.LidedCups(); got == nil || len(got) != 0 {
		t.Errorf("LidedCups() = %#v, want empty non-nil slice", got)
	}
}

func TestPushLidCapacity(t *testing.T) {
	tw := tower.New(10, 4)
	mustOK(t, tw.PushCup(1))
	mustOK(t, tw.PushCup(2))

	wantCode(t, tw, tw.PushLid(1), errors.ErrCodeCapacityExceeded)
	if len(tw.LidedCups()) != 0 {
		t.Errorf("LidedCups() = %v, want none", tw.LidedCups())
	}
}

func TestPushLidColor(t *testing.T) {
	tw := tower.New(10, 20)
	mustOK(t, tw.PushCup(2))
	mustOK(t, tw.PushLidColor(2, "orange"))

	got := tw.Cups()[0]
	if !got.Lidded || got.LidColor != "orange" {
		t.Errorf("Cups()[0] = %+v, want orange lid", got)
	}
}

func TestPopLidNearestTop(t *testing.T) {
	tw := tower.New(10, 20)
	for _, id := range []int{1, 2, 3} {
		mustOK(t, tw.PushCup(id))
	}
	mustOK(t, tw.PushLid(2))
	mustOK(t, tw.PushLid(1))

	mustOK(t, tw.PopLid())
	if got := tw.LidedCups(); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("LidedCups() = %v, want [1]", got)
	}

	// Reordering changes which lid is nearest the top.
	mustOK(t, tw.PushLid(2))
	mustOK(t, tw.ReverseTower()) // 3, 2, 1
	mustOK(t, tw.PopLid())
	if got := tw.LidedCups(); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("LidedCups() = %v, want [2]", got)
	}

	mustOK(t, tw.PopLid())
	wantCode(t, tw, tw.PopLid(), errors.ErrCodeNoLid)
}

func TestOrderTower(t *testing.T) {
	tw := tower.New(10, 20)
	for _, id := range []int{1, 3, 2} {
		mustOK(t, tw.PushCup(id))
	}
	mustOK(t, tw.OrderTower())

	if got := tw.StackingItems(); !reflect.DeepEqual(got, cups(3, 2, 1)) {
		t.Errorf("StackingItems() = %v, want [cup 3, cup 2, cup 1]", got)
	}
}

func TestReverseTower(t *testing.T) {
	tw := tower.New(10, 20)
	mustOK(t, tw.PushCup(1))
	mustOK(t, tw.PushCup(2))
	mustOK(t, tw.ReverseTower())

	if got := tw.StackingItems(); !reflect.DeepEqual(got, cups(2, 1)) {
		t.Errorf("StackingItems() = %v, want [cup 2, cup 1]", got)
	}
}

func TestReorderAlwaysSucceeds(t *testing.T) {
	tw := tower.New(10, 20)
	_ = tw.PopCup()
	mustOK(t, tw.OrderTower())
	if !tw.Ok() {
		t.Error("OrderTower on empty tower should set Ok()")
	}
	_ = tw.PopCup()
	mustOK(t, tw.ReverseTower())
	if !tw.Ok() {
		t.Error("ReverseTower on empty tower should set Ok()")
	}
}

func TestStackingItemsWithLids(t *testing.T) {
	tw := tower.New(10, 20)
	mustOK(t, tw.PushCup(1))
	mustOK(t, tw.PushCup(2))
	mustOK(t, tw.PushLid(1))

	want := []tower.Item{tower.CupRef(1), tower.LidRef(1), tower.CupRef(2)}
	if got := tw.StackingItems(); !reflect.DeepEqual(got, want) {
		t.Errorf("StackingItems() = %v, want %v", got, want)
	}
}

func TestSwap(t *testing.T) {
	newTower := func() *tower.Tower {
		tw := tower.New(10, 20)
		for _, id := range []int{1, 2, 3} {
			mustOK(t, tw.PushCup(id))
		}
		return tw
	}

	t.Run("valid", func(t *testing.T) {
		tw := newTower()
		mustOK(t, tw.Swap(tower.CupRef(1), tower.CupRef(3)))
		if got := tw.StackingItems(); !reflect.DeepEqual(got, cups(3, 2, 1)) {
			t.Errorf("StackingItems() = %v", got)
		}
	})

	tests := []struct {
		name string
		a, b tower.Item
		code errors.Code
	}{
		{"lid operand", tower.LidRef(1), tower.CupRef(2), errors.ErrCodeInvalidReference},
		{"unknown kind", tower.CupRef(1), tower.Item{Kind: "saucer", ID: 2}, errors.ErrCodeInvalidReference},
		{"first absent", tower.CupRef(9), tower.CupRef(2), errors.ErrCodeNotFound},
		{"second absent", tower.CupRef(1), tower.CupRef(99), errors.ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := newTower()
			err := tw.Swap(tt.a, tt.b)
			wantCode(t, tw, err, tt.code)
			if got := tw.StackingItems(); !reflect.DeepEqual(got, cups(1, 2, 3)) {
				t.Errorf("stack changed: %v", got)
			}
		})
	}
}

func TestCover(t *testing.T) {
	t.Run("all fit", func(t *testing.T) {
		tw := tower.NewWithCups(3)
		mustOK(t, tw.Cover())
		if got := tw.LidedCups(); !reflect.DeepEqual(got, []int{1, 2, 3}) {
			t.Errorf("LidedCups() = %v", got)
		}
		if tw.Height() != 12 {
			t.Errorf("Height() = %d, want 12", tw.Height())
		}
	})

	t.Run("partial", func(t *testing.T) {
		tw := tower.New(10, 5)
		mustOK(t, tw.PushCup(1))
		mustOK(t, tw.PushCup(2))

		err := tw.Cover()
		wantCode(t, tw, err, errors.ErrCodeCapacityExceeded)
		if got := tw.LidedCups(); !reflect.DeepEqual(got, []int{1}) {
			t.Errorf("LidedCups() = %v, want [1] (no rollback)", got)
		}
		if tw.Height() != 5 {
			t.Errorf("Height() = %d, want 5", tw.Height())
		}
	})

	t.Run("skips covered cups", func(t *testing.T) {
		tw := tower.New(10, 20)
		mustOK(t, tw.PushCup(1))
		mustOK(t, tw.PushCup(2))
		mustOK(t, tw.PushLidColor(2, "orange"))
		mustOK(t, tw.Cover())
		got := tw.Cups()
		if got[1].LidColor != "orange" || got[0].LidColor != tower.DefaultLidColor {
			t.Errorf("Cups() = %+v", got)
		}
	})

	t.Run("empty tower", func(t *testing.T) {
		tw := tower.NewWithCups(0)
		mustOK(t, tw.Cover())
		if !tw.Ok() {
			t.Error("Ok() = false")
		}
	})
}

func TestSwapToReduce(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"empty", 0},
		{"single", 1},
		{"three", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := tower.NewWithCups(tt.n)
			_ = tw.PopLid() // leave the flag false to show it is untouched
			before := tw.StackingItems()

			_, _, found := tw.SwapToReduce()
			if found {
				t.Error("SwapToReduce() found a pair; height does not depend on order")
			}
			if !reflect.DeepEqual(tw.StackingItems(), before) {
				t.Error("SwapToReduce() mutated the tower")
			}
			if tw.Ok() {
				t.Error("SwapToReduce() touched the last-operation flag")
			}
		})
	}
}

func TestNewWithCups(t *testing.T) {
	tw := tower.NewWithCups(3)
	if tw.Height() != 9 {
		t.Errorf("Height() = %d, want 9", tw.Height())
	}
	if tw.Width() != tower.DefaultWidth || tw.MaxHeight() != tower.DefaultMaxHeight {
		t.Errorf("bounds = %dx%d", tw.Width(), tw.MaxHeight())
	}

	// 1+3+5+7 = 16 fits, cup 5 (9 units) does not.
	tw = tower.NewWithCups(5)
	if !reflect.DeepEqual(tw.StackingItems(), cups(1, 2, 3, 4)) {
		t.Errorf("StackingItems() = %v", tw.StackingItems())
	}
	if tw.Ok() {
		t.Error("Ok() should reflect the rejected cup 5")
	}
}

func TestPaletteColors(t *testing.T) {
	tw := tower.New(10, 50, tower.WithPalette([]string{"a", "b"}))
	for _, id := range []int{1, 2, 3} {
		mustOK(t, tw.PushCup(id))
	}
	var colors []string
	for _, c := range tw.Cups() {
		colors = append(colors, c.Color)
	}
	if !slices.Equal(colors, []string{"b", "a", "b"}) {
		t.Errorf("colors = %v", colors)
	}
}

func TestLayout(t *testing.T) {
	tw := tower.New(10, 20)
	mustOK(t, tw.PushCup(1))
	mustOK(t, tw.PushCup(2))
	mustOK(t, tw.PushLid(1))

	// ground = 50 + 20*10 = 250
	got := tw.Layout()
	want := []tower.Placement{
		{ID: 1, X: 50, Y: 230, Width: 100, Height: 20, LidHeight: 10, Color: tower.DefaultLiddedColor, LidColor: tower.DefaultLidColor},
		{ID: 2, X: 50, Y: 200, Width: 100, Height: 30, Color: "green"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Layout() =\n%+v\nwant\n%+v", got, want)
	}
	if got[0].Bottom() != 250 || got[1].Bottom() != got[0].Y {
		t.Error("cups must rest on each other")
	}
}

func TestLayoutCentersNarrowCups(t *testing.T) {
	tw := tower.New(10, 20)
	mustOK(t, tw.AddCup(1, 2, 6, "red"))

	p := tw.Layout()[0]
	if p.X != 50+20 {
		t.Errorf("X = %d, want 70", p.X)
	}
}

func TestLayoutFollowsOrder(t *testing.T) {
	tw := tower.New(10, 20)
	mustOK(t, tw.PushCup(1))
	mustOK(t, tw.PushCup(2))
	mustOK(t, tw.ReverseTower())

	l := tw.Layout()
	if l[0].ID != 2 || l[0].Y != 220 || l[1].ID != 1 || l[1].Y != 210 {
		t.Errorf("Layout() = %+v", l)
	}
}

func TestMakeVisible(t *testing.T) {
	scene := canvas.NewScene()
	tw := tower.New(10, 20, tower.WithCanvas(scene))
	mustOK(t, tw.PushCup(1))
	mustOK(t, tw.PushCup(2))

	if n := len(scene.Rects()); n != 0 {
		t.Fatalf("invisible tower drew %d rects", n)
	}

	mustOK(t, tw.MakeVisible())
	if !tw.Visible() {
		t.Fatal("Visible() = false")
	}
	// 3 frame parts + 20 marks + 4 parts per cup
	if n := len(scene.Rects()); n != 3+20+8 {
		t.Errorf("visible rects = %d, want %d", n, 3+20+8)
	}

	mustOK(t, tw.PushLid(2))
	if n := len(scene.Rects()); n != 3+20+9 {
		t.Errorf("visible rects after lid = %d, want %d", n, 3+20+9)
	}

	mustOK(t, tw.PopCup())
	if n := len(scene.Rects()); n != 3+20+4 {
		t.Errorf("visible rects after pop = %d, want %d", n, 3+20+4)
	}

	mustOK(t, tw.MakeInvisible())
	if n := len(scene.Rects()); n != 0 {
		t.Errorf("visible rects after MakeInvisible = %d, want 0", n)
	}
	if tw.Visible() {
		t.Error("Visible() = true after MakeInvisible")
	}
}

func TestMakeVisibleIdempotent(t *testing.T) {
	scene := canvas.NewScene()
	tw := tower.New(10, 20, tower.WithCanvas(scene))
	mustOK(t, tw.PushCup(1))
	mustOK(t, tw.PushCup(3))
	mustOK(t, tw.PushLid(1))

	mustOK(t, tw.MakeVisible())
	first := scene.Rects()
	allocated := scene.Len()

	mustOK(t, tw.MakeVisible())
	if got := scene.Rects(); !reflect.DeepEqual(got, first) {
		t.Error("second MakeVisible changed the rendered scene")
	}
	if scene.Len() != allocated {
		t.Errorf("second MakeVisible allocated %d new shapes", scene.Len()-allocated)
	}
}

func TestMakeVisibleRejectsUndrawableSize(t *testing.T) {
	tests := []struct {
		name             string
		width, maxHeight int
	}{
		{"negative height", 10, -5},
		{"zero height", 10, 0},
		{"zero width", 0, 20},
		{"huge height", 10, math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := tower.New(tt.width, tt.maxHeight, tower.WithCanvas(canvas.NewScene()))
			wantCode(t, tw, tw.MakeVisible(), errors.ErrCodeDisplayBound)
			if tw.Visible() {
				t.Error("Visible() = true after failed MakeVisible")
			}
		})
	}
}

func TestMakeVisibleDisplayBound(t *testing.T) {
	geom := tower.DefaultGeometry()
	geom.DisplayLimit = 200 // 50 + 20*10 = 250 does not fit
	scene := canvas.NewScene()
	tw := tower.New(10, 20, tower.WithCanvas(scene), tower.WithGeometry(geom))

	wantCode(t, tw, tw.MakeVisible(), errors.ErrCodeDisplayBound)
	if tw.Visible() {
		t.Error("Visible() = true after failed MakeVisible")
	}
	if len(scene.Rects()) != 0 {
		t.Error("failed MakeVisible drew shapes")
	}
}

func TestNotifierOnlyWhileVisible(t *testing.T) {
	var messages []string
	n := tower.NotifierFunc(func(msg string) { messages = append(messages, msg) })
	tw := tower.New(10, 20, tower.WithNotifier(n))

	_ = tw.PopCup()
	if len(messages) != 0 {
		t.Fatalf("invisible tower notified: %v", messages)
	}

	mustOK(t, tw.MakeVisible())
	_ = tw.PopCup()
	if len(messages) != 1 || messages[0] != "the tower is empty" {
		t.Errorf("messages = %v", messages)
	}
	if tw.Ok() {
		t.Error("notifier must not affect Ok()")
	}
}

func TestOkReflectsLastOperation(t *testing.T) {
	tw := tower.New(10, 20)
	if !tw.Ok() {
		t.Error("new tower should report Ok()")
	}
	_ = tw.PopCup()
	if tw.Ok() {
		t.Error("Ok() = true after failure")
	}
	mustOK(t, tw.PushCup(1))
	if !tw.Ok() {
		t.Error("Ok() = false after success")
	}
	_ = tw.Height()
	_ = tw.LidedCups()
	if !tw.Ok() {
		t.Error("queries must not change Ok()")
	}
}

type recordingHooks struct {
	observability.NoopTowerHooks
	ops    []string
	failed []string
}

func (r *recordingHooks) OnOperation(op string, _ int, err error) {
	r.ops = append(r.ops, op)
	if err != nil {
		r.failed = append(r.failed, op)
	}
}

func TestOperationHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetTowerHooks(hooks)
	defer observability.Reset()

	tw := tower.New(10, 20)
	mustOK(t, tw.PushCup(1))
	_ = tw.PopLid()
	mustOK(t, tw.OrderTower())

	if !slices.Equal(hooks.ops, []string{"pushCup", "popLid", "orderTower"}) {
		t.Errorf("ops = %v", hooks.ops)
	}
	if !slices.Equal(hooks.failed, []string{"popLid"}) {
		t.Errorf("failed = %v", hooks.failed)
	}
}
