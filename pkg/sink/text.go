package sink

import (
	"fmt"
	"strings"

	"github.com/matzehuels/cupstack/pkg/tower"
)

// RenderText describes a snapshot in plain text: a header line with the
// height and bounds, then the stacking items from base to top. The output is
// stable, which makes it suitable for diffing two points in time.
func RenderText(s Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "height %d/%d width %d\n", s.Height, s.MaxHeight, s.Width)
	b.WriteString(tower.FormatItems(s.Items))
	return b.String()
}
