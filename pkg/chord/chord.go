package chord

import (
	"fmt"

	"github.com/matzehuels/stringart/pkg/errors"
)

// Chord is an undirected thread between two positions.
// Chords built by this package always satisfy Low <= High.
type Chord struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

// Cut is a chord used as a cutting line through the domain.
type Cut = Chord

// Normalize returns the chord between a and b with its endpoints ordered.
func Normalize(a, b int) Chord {
	if a > b {
		a, b = b, a
	}
	return Chord{Low: a, High: b}
}

// Build joins every pair of consecutive positions into a normalized chord.
// It returns one chord per adjacent pair, in travel order, and never modifies
// positions. Fewer than two positions is an input-format bug and fails with
// errors.ErrCodeInsufficientInput.
func Build(positions []int) ([]Chord, error) {
	if len(positions) < 2 {
		return nil, errors.New(errors.ErrCodeInsufficientInput, "need at least 2 positions, got %d", len(positions))
	}
	chords := make([]Chord, 0, len(positions)-1)
	for i := 1; i < len(positions); i++ {
		chords = append(chords, Normalize(positions[i-1], positions[i]))
	}
	return chords, nil
}

// Degenerate reports whether both endpoints are the same position.
// A degenerate chord crosses nothing and is never severed by a cut.
func (c Chord) Degenerate() bool { return c.Low == c.High }

// Span returns the distance between the endpoints.
func (c Chord) Span() int { return c.High - c.Low }

// SharesEndpoint reports whether c and o meet at a position.
func (c Chord) SharesEndpoint(o Chord) bool {
	return c.Low == o.Low || c.Low == o.High || c.High == o.Low || c.High == o.High
}

// Contains reports whether p lies strictly between the endpoints.
func (c Chord) Contains(p int) bool { return c.Low < p && p < c.High }

func (c Chord) String() string { return fmt.Sprintf("%d-%d", c.Low, c.High) }

// live returns normalized copies of the non-degenerate chords.
func live(chords []Chord) []Chord {
	out := make([]Chord, 0, len(chords))
	for _, c := range chords {
		c = Normalize(c.Low, c.High)
		if !c.Degenerate() {
			out = append(out, c)
		}
	}
	return out
}
