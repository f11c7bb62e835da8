package sink

import (
	"io"
	"regexp"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cupstack/pkg/canvas"
)

var ansiRe = regexp.MustCompile("\x1b\\[[0-9;]*m")

func plain(s string) string { return ansiRe.ReplaceAllString(s, "") }

func TestRenderTerminal(t *testing.T) {
	noColor := WithRenderer(lipgloss.NewRenderer(io.Discard))

	tests := []struct {
		name  string
		rects []canvas.Rect
		opts  []TerminalOption
		want  string
	}{
		{
			name:  "empty",
			rects: nil,
			want:  "",
		},
		{
			name: "two blocks",
			rects: []canvas.Rect{
				{X: 0, Y: 0, Width: 10, Height: 10, Color: "red"},
				{X: 10, Y: 10, Width: 5, Height: 10, Color: "blue"},
			},
			want: "██\n  █\n",
		},
		{
			name: "cropped to bounding box",
			rects: []canvas.Rect{
				{X: 50, Y: 50, Width: 10, Height: 20, Color: "red"},
			},
			want: "██\n██\n",
		},
		{
			name: "thin rects still cover a cell",
			rects: []canvas.Rect{
				{X: 0, Y: 0, Width: 15, Height: 1, Color: "black"},
				{X: 0, Y: 1, Width: 2, Height: 19, Color: "black"},
			},
			want: "███\n█\n",
		},
		{
			name: "custom glyph and cell",
			rects: []canvas.Rect{
				{X: 0, Y: 0, Width: 4, Height: 2, Color: "green"},
			},
			opts: []TerminalOption{WithCellSize(2, 2), WithGlyph("#")},
			want: "##\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]TerminalOption{noColor}, tt.opts...)
			got := plain(RenderTerminal(tt.rects, opts...))
			if got != tt.want {
				t.Errorf("RenderTerminal() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}
