// Package tower implements the stacking-cups tower: an ordered stack of
// numbered cups, each optionally covered by a lid, bounded by a maximum total
// height.
//
// # Overview
//
// A [Tower] owns its cups in base-to-top order (index 0 rests on the ground).
// Every mutating operation either succeeds completely or leaves the stack
// untouched, with [Tower.Cover] as the single partial-completion exception.
// The outcome of the most recent mutation is kept in a flag readable through
// [Tower.Ok]; the same outcome is also returned as an error value carrying
// one of the codes from [github.com/matzehuels/cupstack/pkg/errors].
//
//	t := tower.New(10, 20)
//	t.PushCup(1)  // height 1
//	t.PushCup(2)  // height 4
//	t.PushLid(1)
//	t.Height()    // 5
//	t.LidedCups() // [1]
//
// # Layout
//
// Positions are never stored as a source of truth. [Tower.Layout] derives
// them from the current order and the fixed bounds on every call: each cup
// sits on top of everything below it and is centered inside the tower width.
// While the tower is visible the same placements are pushed to the injected
// [Canvas] after every structural change.
//
// # Rendering
//
// The tower does not draw anything itself. It asks a [Canvas] for opaque
// rectangles ([Shape]) and moves, resizes, recolors, shows and hides them.
// Use [github.com/matzehuels/cupstack/pkg/canvas] for ready-made canvases and
// [github.com/matzehuels/cupstack/pkg/sink] to export what was drawn.
package tower
