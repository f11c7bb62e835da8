// Package pkg provides the core libraries for cupstack, a simulator for the
// stacking cups puzzle.
//
// # Overview
//
// A tower is a bounded column of numbered cups. Cup i is 2i-1 units tall,
// and any cup may carry a lid of its own number. Commands push, pop, remove,
// swap and reorder cups and lids while the tower enforces its width and height
// bounds. The pkg directory is organized into these areas:
//
//  1. [tower] - The domain model: cups, lids, the tower and its layout
//  2. [canvas] - Drawing surfaces a tower paints its rectangles on
//  3. [sink] - Exporters from a canvas or tower to SVG, PNG, PDF, JSON, DOT
//     and the terminal
//  4. [command] - The line-oriented command language and script runner
//  5. [config] - TOML settings for bounds, geometry, palette and logging
//
// # Architecture
//
// The typical data flow through cupstack:
//
//	Script or REPL line
//	         ↓
//	    [command] package (parse → exec)
//	         ↓
//	    [tower] package (rules + layout)
//	         ↓
//	    [canvas] package (retained rectangles)
//	         ↓
//	    [sink] package (SVG/PDF/PNG/JSON/DOT/terminal)
//
// # Quick Start
//
// Build a tower, drive it, and render it to SVG:
//
//	import (
//	    "github.com/matzehuels/cupstack/pkg/canvas"
//	    "github.com/matzehuels/cupstack/pkg/sink"
//	    "github.com/matzehuels/cupstack/pkg/tower"
//	)
//
//	scene := canvas.NewScene()
//	t := tower.New(10, 20, tower.WithCanvas(scene))
//	_ = t.PushCup(3)
//	_ = t.PushLid(3)
//	_ = t.MakeVisible()
//
//	svg := sink.RenderSVG(scene.Rects())
//
// # Supporting Packages
//
// [errors] - Coded errors shared by every package. Tower rule violations
// carry codes such as DUPLICATE_ID or CAPACITY_EXCEEDED.
//
// [observability] - Hook registry for tracing tower operations and script
// runs without coupling the domain to a logger.
//
// [cache] - Content-addressed artifact cache used by the CLI to skip
// re-rendering identical scripts.
//
// [diff] - Unified diffs of textual tower states, used to trace scripts.
//
// [buildinfo] - Version information injected at build time.
package pkg
