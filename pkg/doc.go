// Package pkg provides the core libraries for stringart.
//
// # Overview
//
// Stringart answers questions about string art: threads are stretched between
// numbered nails, in the order given by a list of positions, and we ask how
// many pairs of threads cross, which straight cut between two nails severs
// the most threads, and how many threads pass through the center. The pkg
// directory is organized into these areas:
//
//  1. [chord] - The engine: chords, topologies, crossing counts, cut sweeps
//  2. [notes] - Reading puzzle notes into positions
//  3. [pipeline] - Orchestration (load → solve → draw) used by the CLI
//  4. [diagram] - Chord diagrams via Graphviz (DOT, SVG, PNG)
//
// # Architecture
//
// The typical data flow through stringart:
//
//	Puzzle notes ("1,5,2,6,...")
//	         ↓
//	    [notes] package (parse positions)
//	         ↓
//	    [chord] package (build chords, count, sweep)
//	         ↓
//	    [pipeline] package (hooks, logging, options)
//	         ↓
//	    numbers, tables, or [diagram] output
//
// # Quick Start
//
//	positions, _ := notes.ReadFile("notes.txt")
//	chords, _ := chord.Build(positions)
//
//	knots := chord.CountCrossings(chords, chord.Circular(256), chord.DefaultOptions())
//	cut, severed, _ := chord.BestCutCircular(chords, 256, chord.DefaultOptions())
//	through := chord.CountDiameters(chords, 256)
//
// # Supporting Packages
//
// [errors] - Structured errors with codes such as MALFORMED_INPUT and
// DOMAIN_TOO_SMALL, plus input validators.
//
// [observability] - Hooks fired around parsing, solving, and rendering.
//
// [buildinfo] - Version information set at build time.
//
// [chord]: https://pkg.go.dev/github.com/matzehuels/stringart/pkg/chord
// [notes]: https://pkg.go.dev/github.com/matzehuels/stringart/pkg/notes
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/stringart/pkg/pipeline
// [diagram]: https://pkg.go.dev/github.com/matzehuels/stringart/pkg/diagram
// [errors]: https://pkg.go.dev/github.com/matzehuels/stringart/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/stringart/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/stringart/pkg/buildinfo
package pkg
