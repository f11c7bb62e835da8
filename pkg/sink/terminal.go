package sink

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cupstack/pkg/canvas"
)

// TerminalOption configures terminal rendering via [RenderTerminal].
type TerminalOption func(*terminalRenderer)

type terminalRenderer struct {
	cellW, cellH int
	glyph        string
	renderer     *lipgloss.Renderer
}

// WithCellSize sets how many pixels one character cell covers. Non-positive
// values keep the default of 5x10.
func WithCellSize(w, h int) TerminalOption {
	return func(r *terminalRenderer) {
		if w > 0 && h > 0 {
			r.cellW, r.cellH = w, h
		}
	}
}

// WithGlyph sets the character painted into covered cells.
func WithGlyph(g string) TerminalOption {
	return func(r *terminalRenderer) {
		if g != "" {
			r.glyph = g
		}
	}
}

// WithRenderer colors output with a specific lipgloss renderer, e.g. one
// bound to the writer the output is going to.
func WithRenderer(lr *lipgloss.Renderer) TerminalOption {
	return func(r *terminalRenderer) { r.renderer = lr }
}

// RenderTerminal rasterizes the rectangles onto a character grid, cropped to
// their bounding box. Every cell a rectangle touches takes its color; later
// rectangles paint over earlier ones. Lines carry no trailing blanks.
func RenderTerminal(rects []canvas.Rect, opts ...TerminalOption) string {
	r := terminalRenderer{cellW: 5, cellH: 10, glyph: "█"}
	for _, opt := range opts {
		opt(&r)
	}

	minX, minY, maxX, maxY := extent(rects)
	if maxX <= minX || maxY <= minY {
		return ""
	}
	cols := ceilDiv(maxX-minX, r.cellW)
	rows := ceilDiv(maxY-minY, r.cellH)

	grid := make([][]string, rows)
	for i := range grid {
		grid[i] = make([]string, cols)
	}
	for _, rc := range rects {
		if rc.Empty() {
			continue
		}
		c0, c1 := (rc.X-minX)/r.cellW, (rc.Right()-minX-1)/r.cellW
		r0, r1 := (rc.Y-minY)/r.cellH, (rc.Bottom()-minY-1)/r.cellH
		for y := r0; y <= r1; y++ {
			for x := c0; x <= c1; x++ {
				grid[y][x] = rc.Color
			}
		}
	}

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(r.line(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// line renders one grid row, grouping runs of equal color into one styled
// segment.
func (r terminalRenderer) line(row []string) string {
	end := len(row)
	for end > 0 && row[end-1] == "" {
		end--
	}
	var b strings.Builder
	for i := 0; i < end; {
		j := i
		for j < end && row[j] == row[i] {
			j++
		}
		if row[i] == "" {
			b.WriteString(strings.Repeat(" ", j-i))
		} else {
			b.WriteString(r.style(row[i]).Render(strings.Repeat(r.glyph, j-i)))
		}
		i = j
	}
	return b.String()
}

func (r terminalRenderer) style(color string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if r.renderer != nil {
		s = r.renderer.NewStyle()
	}
	return s.Foreground(lipgloss.Color(Hex(color)))
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }
