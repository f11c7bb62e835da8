package canvas

import (
	"reflect"
	"testing"
)

func TestSceneShowHide(t *testing.T) {
	s := NewScene()
	a := s.NewShape()
	b := s.NewShape()

	if len(s.Rects()) != 0 {
		t.Fatal("new shapes must start hidden")
	}

	a.SetSize(10, 20)
	a.SetPosition(1, 2)
	a.SetColor("red")
	b.SetSize(5, 5)
	b.SetColor("blue")
	a.Show()
	b.Show()

	want := []Rect{
		{ID: 1, X: 1, Y: 2, Width: 20, Height: 10, Color: "red"},
		{ID: 2, Width: 5, Height: 5, Color: "blue"},
	}
	if got := s.Rects(); !reflect.DeepEqual(got, want) {
		t.Errorf("Rects() = %+v, want %+v", got, want)
	}

	// Showing again raises the shape to the top.
	a.Show()
	if got := s.Rects(); got[1].ID != 1 {
		t.Errorf("Rects() order = %+v, want shape 1 on top", got)
	}

	a.Hide()
	a.Hide()
	if got := s.Rects(); len(got) != 1 || got[0].ID != 2 {
		t.Errorf("Rects() after Hide = %+v", got)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestSceneSkipsEmptyRects(t *testing.T) {
	s := NewScene()
	sh := s.NewShape()
	sh.SetSize(0, 10)
	sh.Show()
	if len(s.Rects()) != 0 {
		t.Error("zero-height shape should not be reported")
	}
}

func TestSceneBounds(t *testing.T) {
	s := NewScene()
	for _, r := range []Rect{
		{X: 10, Y: 10, Width: 5, Height: 5},
		{X: 0, Y: 30, Width: 40, Height: 2},
	} {
		sh := s.NewShape()
		sh.SetPosition(r.X, r.Y)
		sh.SetSize(r.Height, r.Width)
		sh.Show()
	}

	w, h := s.Bounds()
	if w != 40 || h != 32 {
		t.Errorf("Bounds() = %d, %d; want 40, 32", w, h)
	}

	s.Clear()
	if w, h := s.Bounds(); w != 0 || h != 0 {
		t.Errorf("Bounds() after Clear = %d, %d", w, h)
	}
}

func TestNull(t *testing.T) {
	sh := NewNull().NewShape()
	sh.SetSize(1, 1)
	sh.SetColor("red")
	sh.SetPosition(1, 1)
	sh.Show()
	sh.Hide()
}
