package chord

import (
	"testing"

	"github.com/matzehuels/stringart/pkg/errors"
)

func TestWrap(t *testing.T) {
	c := Circular(8)
	tests := []struct{ p, want int }{
		{1, 1}, {8, 8}, {9, 1}, {12, 4}, {16, 8}, {0, 8}, {-1, 7}, {-8, 8},
	}
	for _, tt := range tests {
		if got := c.Wrap(tt.p); got != tt.want {
			t.Errorf("Circular(8).Wrap(%d) = %d, want %d", tt.p, got, tt.want)
		}
	}
	if got := Linear.Wrap(12); got != 12 {
		t.Errorf("Linear.Wrap(12) = %d, want 12", got)
	}
}

func TestTopologyValidate(t *testing.T) {
	tests := []struct {
		topo Topology
		want errors.Code
	}{
		{Linear, ""},
		{Circular(2), ""},
		{Circular(256), ""},
		{Circular(1), errors.ErrCodeInvalidModulus},
		{Topology{Modulus: -4}, errors.ErrCodeInvalidModulus},
	}
	for _, tt := range tests {
		t.Run(tt.topo.String(), func(t *testing.T) {
			if got := errors.GetCode(tt.topo.Validate()); got != tt.want {
				t.Errorf("Validate() code = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCrosses(t *testing.T) {
	tests := []struct {
		name   string
		c1, c2 Chord
		topo   Topology
		want   bool
	}{
		{"interleaved", Chord{1, 5}, Chord{2, 6}, Linear, true},
		{"nested", Chord{1, 7}, Chord{2, 6}, Linear, false},
		{"disjoint", Chord{1, 3}, Chord{4, 6}, Linear, false},
		{"shared low", Chord{1, 5}, Chord{1, 7}, Linear, false},
		{"shared middle", Chord{1, 5}, Chord{5, 8}, Linear, false},
		{"identical", Chord{2, 6}, Chord{2, 6}, Linear, false},
		{"degenerate", Chord{3, 3}, Chord{1, 5}, Linear, false},
		{"unnormalized", Chord{5, 1}, Chord{6, 2}, Linear, true},
		{"circular interleaved", Chord{3, 5}, Chord{4, 6}, Circular(8), true},
		{"circular wraps", Chord{3, 5}, Chord{6, 12}, Circular(8), true},
		{"circular nested", Chord{2, 4}, Chord{1, 6}, Circular(8), false},
		{"circular disjoint", Chord{1, 3}, Chord{5, 7}, Circular(8), false},
		{"circular shared after wrap", Chord{1, 4}, Chord{9, 6}, Circular(8), false},
		{"circular collapses", Chord{2, 10}, Chord{1, 5}, Circular(8), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Crosses(tt.c1, tt.c2, tt.topo); got != tt.want {
				t.Errorf("Crosses(%v, %v, %v) = %v, want %v", tt.c1, tt.c2, tt.topo, got, tt.want)
			}
			if got := Crosses(tt.c2, tt.c1, tt.topo); got != tt.want {
				t.Errorf("Crosses(%v, %v, %v) = %v, want %v", tt.c2, tt.c1, tt.topo, got, tt.want)
			}
		})
	}
}

func TestCrossesSymmetricAndIrreflexive(t *testing.T) {
	for _, topo := range []Topology{Linear, Circular(6)} {
		var all []Chord
		for a := -2; a <= 9; a++ {
			for b := a; b <= 9; b++ {
				all = append(all, Chord{a, b})
			}
		}
		for _, c1 := range all {
			if Crosses(c1, c1, topo) {
				t.Errorf("%v: Crosses(%v, %v) = true", topo, c1, c1)
			}
			for _, c2 := range all {
				if Crosses(c1, c2, topo) != Crosses(c2, c1, topo) {
					t.Errorf("%v: Crosses(%v, %v) is not symmetric", topo, c1, c2)
				}
			}
		}
	}
}

func TestCrossesRotationInvariant(t *testing.T) {
	const m = 7
	topo := Circular(m)
	for a := 1; a <= m; a++ {
		for b := a; b <= m; b++ {
			for x := 1; x <= m; x++ {
				for y := x; y <= m; y++ {
					want := Crosses(Chord{a, b}, Chord{x, y}, topo)
					for k := 1; k < m; k++ {
						got := Crosses(Chord{a + k, b + k}, Chord{x + k, y + k}, topo)
						if got != want {
							t.Fatalf("rotating %d-%d and %d-%d by %d changed Crosses from %v to %v", a, b, x, y, k, want, got)
						}
					}
				}
			}
		}
	}
}

func TestSevers(t *testing.T) {
	cut := Cut{3, 7}
	tests := []struct {
		c    Chord
		want bool
	}{
		{Chord{1, 5}, true},
		{Chord{3, 7}, true},
		{Chord{7, 3}, true},
		{Chord{1, 7}, false},
		{Chord{5, 7}, false},
		{Chord{3, 5}, false},
		{Chord{4, 6}, false},
		{Chord{5, 5}, false},
	}
	for _, tt := range tests {
		if got := Severs(cut, tt.c, Linear); got != tt.want {
			t.Errorf("Severs(%v, %v) = %v, want %v", cut, tt.c, got, tt.want)
		}
	}

	if !Severs(Cut{1, 3}, Chord{9, 11}, Circular(8)) {
		t.Error("Severs(1-3, 9-11, circular(8)) = false, want true after wrapping")
	}
}
