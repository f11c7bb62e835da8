package sink

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/cupstack/pkg/tower"
)

// ToDOT converts a stack of cups, base first, into a Graphviz DOT chain drawn
// bottom to top. Cups become filled boxes; each lid becomes a flat box right
// above its cup.
func ToDOT(cups []tower.CupInfo) string {
	var buf bytes.Buffer
	buf.WriteString("digraph tower {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"filled\", fontsize=18];\n")
	buf.WriteString("  edge [arrowhead=none];\n")
	buf.WriteString("\n")

	var chain []string
	for _, c := range cups {
		cup := tower.CupRef(c.ID)
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q, height=%.1f];\n",
			nodeID(cup), cup.String(), Hex(c.Color), 0.2*float64(max(c.Height, 1)))
		chain = append(chain, nodeID(cup))
		if c.Lidded {
			lid := tower.LidRef(c.ID)
			fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q, fontcolor=white, height=0.2];\n",
				nodeID(lid), lid.String(), Hex(c.LidColor))
			chain = append(chain, nodeID(lid))
		}
	}

	if len(chain) > 1 {
		buf.WriteString("\n")
		for i := 1; i < len(chain); i++ {
			fmt.Fprintf(&buf, "  %q -> %q;\n", chain[i-1], chain[i])
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(it tower.Item) string {
	return fmt.Sprintf("%s%d", it.Kind, it.ID)
}

// RenderDOT renders a DOT graph to SVG using Graphviz.
func RenderDOT(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
