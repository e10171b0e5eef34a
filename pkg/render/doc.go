// Package render draws an investigation board as a static diagram.
//
// # Overview
//
// The board's live editing surface is a canvas owned by the UI layer; this
// package produces a shareable picture of the same state. Categories become
// boxes listing their clues, connections become edges between boxes, and
// canvas positions can optionally pin the layout.
//
// Rendering is a two-step pipeline:
//
//	dot := render.ToDOT(b, render.Options{Detailed: true})
//	svg, err := render.SVG(dot)
//
// [ToDOT] emits Graphviz DOT text, which is useful on its own for debugging
// and for tools that consume DOT directly. [SVG] and [PNG] rasterize it with
// Graphviz.
//
// # Media
//
// In detailed mode each clue line carries a tag derived from its content by
// [media.Classify], so an attached photo shows as "[image] scene.png" rather
// than a raw data URI.
//
// [media.Classify]: github.com/matzehuels/clueboard/pkg/media.Classify
package render
