// Package chord counts crossings between threads stretched across numbered
// positions ("nails") and finds the cut that severs the most threads.
//
// # Overview
//
// A puzzle input is an ordered list of positions. Every consecutive pair of
// positions is joined by a thread, modelled as a [Chord] stored with its
// endpoints normalized so that Low <= High. Positions may lie on a line
// ([Linear]) or on a cycle of known size ([Circular]).
//
// # Basic Usage
//
// Build chords with [Build], then use one of the counters:
//
//	chords, err := chord.Build([]int{1, 5, 2, 6, 8, 4, 1, 7, 3})
//	if err != nil {
//	    return err
//	}
//	knots := chord.CountCrossings(chords, chord.Circular(8), chord.DefaultOptions())
//	best, err := chord.MaxCut(chords, 8, chord.DefaultOptions())
//
// # Crossings
//
// Two chords cross when exactly one endpoint of the second lies strictly
// inside the first. Chords sharing an endpoint never cross, and this is checked
// before the interval test. On a cycle, endpoints are first reduced onto
// 1..m; the interval test then runs on the chord and on its unrolled
// complement (High, Low+m), which yields the same answer for any rotation.
//
// [CountPairs] is the O(n²) reference. [CountCrossings] switches to a Fenwick
// tree count in O(n log n) once the pairwise work exceeds the configured
// budget, the same inversion counting used for layered graph drawings.
//
// # Cuts
//
// A cut is itself a chord (s, e) with 1 <= s < e <= D. Chords may also end on
// position 0, which no cut starts from.
// It severs every chord that crosses it, plus any chord that coincides with
// it. [MaxCut] returns the largest number of chords any single cut severs.
//
// The brute-force strategy tries all O(D²) cuts and tests every chord. The
// sweep strategy ([Sweep]) keeps a difference array over the domain. Moving
// the cut start from s-1 to s changes the contribution of only two groups of
// chords: those starting at s (+2 at High, -1 at High+1) and those starting at
// s-1 (-1 at High, +2 at High+1). A running sum from s+2 then yields the
// severed count for every cut end, so one start costs O(D) instead of O(D·n).
//
// Small domains use a dense delta slice; large ones a sparse map whose keys
// are visited in order. The choice does not change results.
//
// # Circular Inputs
//
// [MaxCutCircular] reduces every endpoint onto the cycle 1..m, drops chords
// that collapse to a single point, and runs the same sweep over 1..m. Each
// cut of the cycle has exactly one representation (s, e) with s < e, so no
// cut is counted twice.
//
// # Errors
//
// Errors are *errors.Error values from
// github.com/matzehuels/stringart/pkg/errors with one of the codes
// INSUFFICIENT_INPUT, DOMAIN_TOO_SMALL, POSITION_OUT_OF_RANGE,
// INVALID_MODULUS or INVALID_OPTION.
//
// # Concurrency
//
// All functions are pure and safe for concurrent use on distinct inputs.
// A [Sweep] holds mutable state and must not be shared between goroutines.
package chord
