package sink

import (
	"strings"
	"testing"

	"github.com/matzehuels/cupstack/pkg/tower"
)

func TestToDOT(t *testing.T) {
	tw := tower.New(10, 20)
	_ = tw.PushCup(1)
	_ = tw.PushCup(2)
	_ = tw.PushLid(1)

	dot := ToDOT(tw.Cups())

	for _, want := range []string{
		"digraph tower",
		"rankdir=BT",
		`"cup1" [label="cup 1"`,
		`"lid1" [label="lid 1", fillcolor="#000000"`,
		`"cup1" -> "lid1"`,
		`"lid1" -> "cup2"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTSingleCup(t *testing.T) {
	dot := ToDOT([]tower.CupInfo{{ID: 4, Height: 7, Width: 10, Color: "red"}})
	if strings.Contains(dot, "->") {
		t.Error("a single cup should have no edges")
	}
	if !strings.Contains(dot, `fillcolor="#e74c3c"`) {
		t.Error("cup color missing")
	}
}
