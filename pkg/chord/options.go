package chord

import (
	"strings"

	"github.com/matzehuels/stringart/pkg/errors"
)

// Strategy selects the algorithm behind the counters.
type Strategy int

const (
	// StrategyAuto uses brute force while the work fits BruteForceBudget and
	// the fast path beyond it.
	StrategyAuto Strategy = iota
	// StrategyBruteForce tests every pair of chords, or every cut against
	// every chord.
	StrategyBruteForce
	// StrategySweep selects the fast path: the Fenwick count for crossings
	// and the difference-array sweep for cuts.
	StrategySweep
)

const (
	// DefaultBruteForceBudget bounds the work (n² for crossings, n·D² for
	// cuts) that StrategyAuto still hands to brute force.
	DefaultBruteForceBudget = 1 << 20
	// DefaultDenseLimit is the largest domain a sweep keeps in a dense slice.
	DefaultDenseLimit = 1 << 16
)

var strategyNames = map[Strategy]string{
	StrategyAuto:       "auto",
	StrategyBruteForce: "brute",
	StrategySweep:      "sweep",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseStrategy converts a strategy name ("auto", "brute", "sweep") into a
// Strategy. Matching ignores case and surrounding whitespace.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return StrategyAuto, nil
	case "brute", "bruteforce", "brute-force":
		return StrategyBruteForce, nil
	case "sweep", "fast":
		return StrategySweep, nil
	}
	return StrategyAuto, errors.New(errors.ErrCodeInvalidOption, "unknown strategy %q (want auto, brute or sweep)", name)
}

// Options tunes the counters. Zero fields fall back to their defaults.
type Options struct {
	Strategy         Strategy
	BruteForceBudget int
	DenseLimit       int
}

// DefaultOptions returns Options with every field set to its default.
func DefaultOptions() Options {
	return Options{
		Strategy:         StrategyAuto,
		BruteForceBudget: DefaultBruteForceBudget,
		DenseLimit:       DefaultDenseLimit,
	}
}

// Validate rejects unknown strategies and negative limits.
func (o Options) Validate() error {
	if _, ok := strategyNames[o.Strategy]; !ok {
		return errors.New(errors.ErrCodeInvalidOption, "unknown strategy %d", int(o.Strategy))
	}
	if o.BruteForceBudget < 0 {
		return errors.New(errors.ErrCodeInvalidOption, "brute force budget must not be negative, got %d", o.BruteForceBudget)
	}
	if o.DenseLimit < 0 {
		return errors.New(errors.ErrCodeInvalidOption, "dense limit must not be negative, got %d", o.DenseLimit)
	}
	return nil
}

func (o Options) withDefaults() Options {
	if o.BruteForceBudget == 0 {
		o.BruteForceBudget = DefaultBruteForceBudget
	}
	if o.DenseLimit == 0 {
		o.DenseLimit = DefaultDenseLimit
	}
	return o
}

// bruteForce reports whether the product of factors fits the budget under
// the selected strategy.
func (o Options) bruteForce(factors ...int) bool {
	switch o.Strategy {
	case StrategyBruteForce:
		return true
	case StrategySweep:
		return false
	}
	work := 1
	for _, f := range factors {
		if f <= 0 {
			return true
		}
		if work > o.BruteForceBudget/f {
			return false
		}
		work *= f
	}
	return work <= o.BruteForceBudget
}
