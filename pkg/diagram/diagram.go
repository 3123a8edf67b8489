package diagram

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/stringart/pkg/chord"
	"github.com/matzehuels/stringart/pkg/errors"
)

// Format is an output format of the diagram command.
type Format string

const (
	FormatDOT Format = "dot"
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatDOT, FormatSVG, FormatPNG:
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown diagram format %q (want dot, svg or png)", name)
}

// Options configures a chord diagram.
type Options struct {
	// Topology selects the layout. Circular topologies wrap endpoints onto
	// 1..Modulus and place the nails on a circle.
	Topology chord.Topology

	// Nails is the number of nails drawn for linear layouts. Zero draws up
	// to the largest endpoint. Ignored for circular layouts.
	Nails int

	// Cut, when set, is drawn and the threads it severs are highlighted.
	Cut *chord.Cut

	// Labels prints the nail number inside each node.
	Labels bool
}

const (
	threadColor  = "#5a6b7d"
	severedColor = "#d94f4f"
	cutColor     = "#2b7de9"
	nailSpacing  = 0.45 // inches between neighbouring nails
)

// ToDOT converts threads to an undirected Graphviz graph with pinned nail
// positions. Chords are not modified.
func ToDOT(chords []chord.Chord, opts Options) string {
	lo, hi := nailRange(chords, opts)

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  outputorder=edgesfirst;\n")
	if !opts.Topology.IsCircular() {
		buf.WriteString("  splines=curved;\n")
	}
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, fillcolor=white, fixedsize=true, width=%.2f, fontsize=10];\n", nodeWidth(opts.Labels))
	fmt.Fprintf(&buf, "  edge [color=%q, penwidth=1.2];\n", threadColor)
	buf.WriteString("\n")

	for p := lo; p <= hi; p++ {
		x, y := nailPos(p, lo, hi, opts.Topology)
		label := ""
		if opts.Labels {
			label = strconv.Itoa(p)
		}
		fmt.Fprintf(&buf, "  %s [label=%q, pos=\"%.3f,%.3f!\"];\n", nodeID(p), label, x, y)
	}

	buf.WriteString("\n")
	for _, c := range chords {
		c = opts.Topology.Canonical(c)
		if c.Degenerate() {
			continue
		}
		attrs := ""
		if opts.Cut != nil && chord.Severs(*opts.Cut, c, opts.Topology) {
			attrs = fmt.Sprintf(" [color=%q, penwidth=2.4]", severedColor)
		}
		fmt.Fprintf(&buf, "  %s -- %s%s;\n", nodeID(c.Low), nodeID(c.High), attrs)
	}

	if opts.Cut != nil {
		cut := opts.Topology.Canonical(*opts.Cut)
		fmt.Fprintf(&buf, "  %s -- %s [color=%q, style=dashed, penwidth=3];\n", nodeID(cut.Low), nodeID(cut.High), cutColor)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// nodeID names the nail at p. IDs are quoted since linear positions may be
// negative and "n-2" is not a bare DOT identifier.
func nodeID(p int) string {
	return strconv.Quote("n" + strconv.Itoa(p))
}

// nailRange returns the first and last nail drawn. The cut, when present,
// always lies within the range.
func nailRange(chords []chord.Chord, opts Options) (lo, hi int) {
	if opts.Topology.IsCircular() {
		return 1, opts.Topology.Modulus
	}
	lo, hi = 1, max(opts.Nails, 2)
	extend := func(c chord.Chord) {
		lo, hi = min(lo, c.Low, c.High), max(hi, c.Low, c.High)
	}
	for _, c := range chords {
		extend(c)
	}
	if opts.Cut != nil {
		extend(*opts.Cut)
	}
	return lo, hi
}

// nailPos places nail p. Circular layouts start at the top and run
// clockwise; linear layouts run left to right.
func nailPos(p, lo, hi int, t chord.Topology) (x, y float64) {
	n := hi - lo + 1
	if !t.IsCircular() {
		return float64(p-lo) * nailSpacing, 0
	}
	r := max(1.5, float64(n)*nailSpacing/(2*math.Pi))
	theta := math.Pi/2 - 2*math.Pi*float64(p-lo)/float64(n)
	return r * math.Cos(theta), r * math.Sin(theta)
}

func nodeWidth(labels bool) float64 {
	if labels {
		return 0.3
	}
	return 0.12
}

// Render lays out a DOT graph with neato and encodes it. FormatDOT returns
// the input unchanged.
func Render(ctx context.Context, dot string, format Format) ([]byte, error) {
	var gvFormat graphviz.Format
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		gvFormat = graphviz.SVG
	case FormatPNG:
		gvFormat = graphviz.PNG
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown diagram format %q", format)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, gvFormat, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
	}
	if format == FormatSVG {
		return normalizeViewBox(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

// RenderSVG is shorthand for Render with FormatSVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return Render(ctx, dot, FormatSVG)
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([-0-9.]+)\s+([-0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the fixed point size Graphviz writes on the root
// element with a plain viewBox so the drawing scales with its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
