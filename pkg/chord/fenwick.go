package chord

// fenwick is a binary indexed tree over ranks 1..n.
type fenwick []int

func newFenwick(n int) fenwick { return make(fenwick, n+1) }

func (f fenwick) add(i, v int) {
	for ; i < len(f); i += i & (-i) {
		f[i] += v
	}
}

// sum returns the total over ranks 1..i.
func (f fenwick) sum(i int) int {
	s := 0
	for ; i > 0; i -= i & (-i) {
		s += f[i]
	}
	return s
}

// between returns the total over ranks strictly between lo and hi.
func (f fenwick) between(lo, hi int) int {
	if hi-1 <= lo {
		return 0
	}
	return f.sum(hi-1) - f.sum(lo)
}
