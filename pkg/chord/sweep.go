package chord

import (
	"maps"
	"slices"

	"github.com/matzehuels/stringart/pkg/errors"
)

// deltaStore is a difference array over positions 0..domain+1.
type deltaStore interface {
	add(pos, v int)
	// scan visits every non-zero entry in from..to in ascending order.
	// Dense stores may also visit zero entries.
	scan(from, to int, fn func(pos, v int))
}

type denseDelta []int

func (d denseDelta) add(pos, v int) { d[pos] += v }

func (d denseDelta) scan(from, to int, fn func(pos, v int)) {
	for p := from; p <= to; p++ {
		fn(p, d[p])
	}
}

type sparseDelta map[int]int

func (d sparseDelta) add(pos, v int) {
	d[pos] += v
	if d[pos] == 0 {
		delete(d, pos)
	}
}

func (d sparseDelta) scan(from, to int, fn func(pos, v int)) {
	for _, p := range slices.Sorted(maps.Keys(d)) {
		if p < from {
			continue
		}
		if p > to {
			break
		}
		fn(p, d[p])
	}
}

// Sweep enumerates cuts of a linear domain by start position.
//
// Chords may end anywhere in 0..domain; cuts start at 1. After the k-th call
// to Advance the cut start is k, and Profile reports the number of chords
// severed by every cut (k, e) for e in k+1..domain. Inputs are validated
// once, in [NewSweep].
type Sweep struct {
	domain int
	links  map[int][]int
	delta  deltaStore
	start  int
}

// NewSweep prepares a sweep over positions 0..domain. Every endpoint must lie
// in the domain. Degenerate chords are ignored. With dense set, the delta is
// kept in a slice of domain+2 entries; otherwise in a map.
func NewSweep(chords []Chord, domain int, dense bool) (*Sweep, error) {
	chords, err := checkDomain(chords, domain)
	if err != nil {
		return nil, err
	}

	s := &Sweep{domain: domain, links: make(map[int][]int)}
	if dense {
		s.delta = make(denseDelta, domain+2)
	} else {
		s.delta = make(sparseDelta)
	}

	// With the start left of every chord, a cut ending at e severs exactly the
	// chords with Low < e < High.
	for _, c := range chords {
		s.links[c.Low] = append(s.links[c.Low], c.High)
		s.delta.add(c.Low+1, 1)
		s.delta.add(c.High, -1)
	}
	// Chords starting at 0 are active before the first cut; Advance rolls
	// them back on its first step like any chord left of the start.
	for _, high := range s.links[0] {
		s.delta.add(high, 2)
		s.delta.add(high+1, -1)
	}
	return s, nil
}

// checkDomain validates endpoints against 0..domain and returns the
// normalized, non-degenerate chords.
func checkDomain(chords []Chord, domain int) ([]Chord, error) {
	if err := errors.ValidateDomain(domain); err != nil {
		return nil, err
	}
	for _, c := range chords {
		if err := errors.ValidateEndpoint(c.Low, domain); err != nil {
			return nil, err
		}
		if err := errors.ValidateEndpoint(c.High, domain); err != nil {
			return nil, err
		}
	}
	return live(chords), nil
}

// Domain returns the largest position of the sweep.
func (s *Sweep) Domain() int { return s.domain }

// Start returns the current cut start, or 0 before the first Advance.
func (s *Sweep) Start() int { return s.start }

// Advance moves the cut start one position right. It reports false, leaving
// the sweep unchanged, once the start has reached domain-1.
func (s *Sweep) Advance() bool {
	if s.start >= s.domain-1 {
		return false
	}
	s.start++

	// Chords starting here are crossed by cuts ending strictly inside them,
	// and coincide with the cut ending at High.
	for _, high := range s.links[s.start] {
		s.delta.add(high, 2)
		s.delta.add(high+1, -1)
	}
	// Chords starting one left are now shared-endpoint for the cut start and
	// are crossed only by cuts ending beyond High.
	for _, high := range s.links[s.start-1] {
		s.delta.add(high, -1)
		s.delta.add(high+1, 2)
	}
	return true
}

// adjacent counts chords joining the start to its right neighbour. The
// running sum misses them; they only coincide with the cut (start, start+1)
// and leave a -1 at start+2 from the activation step.
func (s *Sweep) adjacent() int {
	n := 0
	for _, high := range s.links[s.start] {
		if high == s.start+1 {
			n++
		}
	}
	return n
}

// Profile returns the severed count of every cut (Start, e), indexed by
// e-Start-1. It returns nil before the first Advance.
func (s *Sweep) Profile() []int {
	if s.start == 0 {
		return nil
	}
	out := make([]int, s.domain-s.start)
	cuts := s.adjacent()
	out[0] = cuts
	next := s.start + 2
	s.delta.scan(s.start+2, s.domain, func(pos, v int) {
		for ; next < pos; next++ {
			out[next-s.start-1] = cuts
		}
		cuts += v
		out[pos-s.start-1] = cuts
		next = pos + 1
	})
	for ; next <= s.domain; next++ {
		out[next-s.start-1] = cuts
	}
	return out
}

// Best returns the first cut end with the most severed chords for the
// current start, along with that count. Before the first Advance it
// returns (0, 0).
func (s *Sweep) Best() (end, severed int) {
	if s.start == 0 {
		return 0, 0
	}
	cuts := s.adjacent()
	end, severed = s.start+1, cuts
	s.delta.scan(s.start+2, s.domain, func(pos, v int) {
		cuts += v
		if cuts > severed {
			end, severed = pos, cuts
		}
	})
	return end, severed
}

// MaxCut returns the most chords any single cut (s, e) with
// 1 <= s < e <= domain severs. Chord endpoints may also sit on 0. A chord is
// severed when it crosses the cut or coincides with it.
func MaxCut(chords []Chord, domain int, opts Options) (int, error) {
	_, n, err := BestCut(chords, domain, opts)
	return n, err
}

// BestCut is like [MaxCut] but also returns the cut achieving the maximum.
// Ties go to the smallest start, then the smallest end. When no cut severs
// anything the returned cut is the zero Cut.
func BestCut(chords []Chord, domain int, opts Options) (Cut, int, error) {
	if err := opts.Validate(); err != nil {
		return Cut{}, 0, err
	}
	opts = opts.withDefaults()
	canon, err := checkDomain(chords, domain)
	if err != nil {
		return Cut{}, 0, err
	}
	if opts.bruteForce(len(canon), domain, domain) {
		cut, n := bruteForceCut(canon, domain)
		return cut, n, nil
	}
	return sweepCut(canon, domain, domain <= opts.DenseLimit)
}

func bruteForceCut(chords []Chord, domain int) (Cut, int) {
	best, bestCut := 0, Cut{}
	for s := 1; s < domain; s++ {
		for e := s + 1; e <= domain; e++ {
			cut := Cut{Low: s, High: e}
			if n := Severed(chords, cut, Linear); n > best {
				best, bestCut = n, cut
			}
		}
	}
	return bestCut, best
}

func sweepCut(chords []Chord, domain int, dense bool) (Cut, int, error) {
	sw, err := NewSweep(chords, domain, dense)
	if err != nil {
		return Cut{}, 0, err
	}
	best, bestCut := 0, Cut{}
	for sw.Advance() {
		if end, n := sw.Best(); n > best {
			best, bestCut = n, Cut{Low: sw.Start(), High: end}
		}
	}
	return bestCut, best, nil
}

// MaxCutCircular returns the best cut of a cycle with modulus positions.
// Endpoints outside 1..modulus wrap onto the cycle first, and chords that
// collapse to one position are dropped.
func MaxCutCircular(chords []Chord, modulus int, opts Options) (int, error) {
	_, n, err := BestCutCircular(chords, modulus, opts)
	return n, err
}

// BestCutCircular is like [MaxCutCircular] but also returns the cut, with its
// endpoints on 1..modulus.
func BestCutCircular(chords []Chord, modulus int, opts Options) (Cut, int, error) {
	t := Circular(modulus)
	if err := t.Validate(); err != nil {
		return Cut{}, 0, err
	}
	canon := make([]Chord, 0, len(chords))
	for _, c := range chords {
		if c = t.Canonical(c); !c.Degenerate() {
			canon = append(canon, c)
		}
	}
	return BestCut(canon, modulus, opts)
}
