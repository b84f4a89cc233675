// Package render draws a project tree as a Graphviz diagram.
//
// [ToDOT] lays the tree out top to bottom: scenes, their objects, each
// object's rules, and the blocks under each rule. Pre-game blocks hang off the
// object directly. Placeholder objects (references the document could not
// resolve) are drawn dashed and sentinel tags are highlighted.
//
//	dot := render.ToDOT(p, render.Options{})
//	svg, err := render.RenderSVG(dot)
//
// [ToPDF] and [ToPNG] convert SVG output with the external rsvg-convert tool
// (from librsvg).
package render
