package chord

import (
	"fmt"

	"github.com/matzehuels/stringart/pkg/errors"
)

// Topology selects how positions are laid out. The zero value is [Linear].
// A positive Modulus places positions 1..Modulus on a cycle, with any other
// integer wrapping onto it.
type Topology struct {
	Modulus int
}

// Linear lays positions out on an unbounded line.
var Linear = Topology{}

// Circular returns the topology of a cycle with m positions.
func Circular(m int) Topology { return Topology{Modulus: m} }

// IsCircular reports whether positions wrap around.
func (t Topology) IsCircular() bool { return t.Modulus > 0 }

// Validate rejects negative moduli and cycles too small to hold a chord.
func (t Topology) Validate() error {
	if t.Modulus < 0 {
		return errors.New(errors.ErrCodeInvalidModulus, "modulus must not be negative, got %d", t.Modulus)
	}
	if t.IsCircular() {
		return errors.ValidateModulus(t.Modulus)
	}
	return nil
}

// Wrap maps p onto the cycle 1..Modulus. Linear topologies return p as is.
func (t Topology) Wrap(p int) int {
	if !t.IsCircular() {
		return p
	}
	m := t.Modulus
	return ((p-1)%m+m)%m + 1
}

// Canonical returns c with both endpoints wrapped and normalized.
func (t Topology) Canonical(c Chord) Chord {
	return Normalize(t.Wrap(c.Low), t.Wrap(c.High))
}

func (t Topology) String() string {
	if t.IsCircular() {
		return fmt.Sprintf("circular(%d)", t.Modulus)
	}
	return "linear"
}

// Crosses reports whether c1 and c2 cross under t.
//
// Chords sharing an endpoint never cross. Otherwise they cross when exactly
// one endpoint of c2 lies strictly inside c1. On a cycle the test also runs on
// the unrolled alignment (c1.High, c1.Low+m), with the endpoints of c2 lifted
// by m when they sit below c1.High; either alignment succeeding is a crossing.
// The relation is symmetric and irreflexive for both topologies.
func Crosses(c1, c2 Chord, t Topology) bool {
	c1, c2 = t.Canonical(c1), t.Canonical(c2)
	if c1.SharesEndpoint(c2) {
		return false
	}
	if interleaves(c1, c2.Low, c2.High) {
		return true
	}
	if !t.IsCircular() {
		return false
	}
	m := t.Modulus
	unrolled := Chord{Low: c1.High, High: c1.Low + m}
	return interleaves(unrolled, lift(c2.Low, c1.High, m), lift(c2.High, c1.High, m))
}

// interleaves reports whether exactly one of x and y lies strictly inside c.
func interleaves(c Chord, x, y int) bool {
	return c.Contains(x) != c.Contains(y)
}

func lift(p, floor, m int) int {
	if p < floor {
		return p + m
	}
	return p
}

// Severs reports whether cut severs c: the two cross, or they coincide.
func Severs(cut, c Chord, t Topology) bool {
	cut, c = t.Canonical(cut), t.Canonical(c)
	if c.Degenerate() {
		return false
	}
	return c == cut || Crosses(cut, c, t)
}

// Severed counts the chords severed by cut.
func Severed(chords []Chord, cut Cut, t Topology) int {
	n := 0
	for _, c := range chords {
		if Severs(cut, c, t) {
			n++
		}
	}
	return n
}
