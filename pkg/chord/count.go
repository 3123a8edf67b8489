package chord

import (
	"cmp"
	"slices"
)

// CountPairs counts unordered pairs of chords that cross under t by testing
// every pair. Order and multiplicity of chords matter only through the pairs
// they form; duplicates never cross each other.
func CountPairs(chords []Chord, t Topology) int {
	n := 0
	for i := range chords {
		for j := i + 1; j < len(chords); j++ {
			if Crosses(chords[i], chords[j], t) {
				n++
			}
		}
	}
	return n
}

// CountCrossings counts crossing pairs like [CountPairs] but switches to an
// O(n log n) Fenwick count once n² exceeds the brute force budget.
// Both paths return the same number for every input.
func CountCrossings(chords []Chord, t Topology, opts Options) int {
	opts = opts.withDefaults()
	if opts.bruteForce(len(chords), len(chords)) {
		return CountPairs(chords, t)
	}
	canon := make([]Chord, 0, len(chords))
	for _, c := range chords {
		if c = t.Canonical(c); !c.Degenerate() {
			canon = append(canon, c)
		}
	}
	return countFenwick(canon)
}

// countFenwick counts crossings among normalized, non-degenerate chords laid
// out on a line. On a cycle, canonical chords cross exactly when their
// intervals interleave, so the same count applies after wrapping.
//
// Chords are processed by increasing Low. Each earlier chord whose High lies
// strictly inside the current one interleaves with it. Chords sharing a Low
// are inserted only after the whole group has been queried.
func countFenwick(chords []Chord) int {
	if len(chords) < 2 {
		return 0
	}

	values := make([]int, 0, 2*len(chords))
	for _, c := range chords {
		values = append(values, c.Low, c.High)
	}
	slices.Sort(values)
	values = slices.Compact(values)
	rank := func(v int) int {
		i, _ := slices.BinarySearch(values, v)
		return i + 1
	}

	sorted := slices.Clone(chords)
	slices.SortFunc(sorted, func(a, b Chord) int { return cmp.Compare(a.Low, b.Low) })

	ft := newFenwick(len(values))
	crossings := 0
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j].Low == sorted[i].Low {
			j++
		}
		for _, c := range sorted[i:j] {
			crossings += ft.between(rank(c.Low), rank(c.High))
		}
		for _, c := range sorted[i:j] {
			ft.add(rank(c.High), 1)
		}
		i = j
	}
	return crossings
}

// CountDiameters counts chords that pass through the center of a circle with
// the given number of nails, i.e. whose endpoints sit nails/2 apart.
//
// With an odd number of nails no chord passes through the center, so the
// result is always 0. Chords one step short of a diameter, which a rounded
// half distance of (nails-2)/2+1 would match, are not counted.
func CountDiameters(chords []Chord, nails int) int {
	if nails < 2 || nails%2 != 0 {
		return 0
	}
	t := Circular(nails)
	n := 0
	for _, c := range chords {
		if t.Canonical(c).Span() == nails/2 {
			n++
		}
	}
	return n
}
