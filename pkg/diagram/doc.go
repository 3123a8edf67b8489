// Package diagram draws chord diagrams with Graphviz.
//
// Nails become pinned nodes, placed around a circle for circular topologies
// or along a line for linear ones, and every thread becomes an undirected
// edge between its two nails. An optional cut is drawn as a dashed edge, and
// the threads it severs are highlighted.
//
//	dot := diagram.ToDOT(chords, diagram.Options{Topology: chord.Circular(8), Cut: &cut})
//	svg, err := diagram.Render(ctx, dot, diagram.FormatSVG)
//
// [ToDOT] is pure and cheap; [Render] runs the embedded Graphviz engine
// from github.com/goccy/go-graphviz with the neato layout, which honours the
// pinned positions.
package diagram
