// Package pipeline provides the solving pipeline shared by every stringart
// command.
//
// The pipeline has two stages:
//
//  1. Load: read the puzzle notes and join consecutive positions into chords
//  2. Solve: count knots, find the best cut, count diameters, or draw a diagram
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{Topology: pipeline.TopologyCircular, Nails: 256}
//	chords, err := runner.Load(ctx, file, "notes.txt")
//	if err != nil {
//	    return err
//	}
//	result, err := runner.Solve(ctx, chords, opts)
//
// Individual operations are available as [Runner.Knots], [Runner.MaxCut],
// [Runner.Center] and [Runner.Diagram].
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stringart/pkg/chord"
	"github.com/matzehuels/stringart/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Config
// =============================================================================

const (
	// DefaultTopology is the layout used when none is configured.
	DefaultTopology = TopologyLinear

	// DefaultStrategy lets the engine pick brute force or the sweep.
	DefaultStrategy = "auto"

	// DefaultBruteForceBudget matches chord.DefaultBruteForceBudget.
	DefaultBruteForceBudget = chord.DefaultBruteForceBudget

	// DefaultDenseLimit matches chord.DefaultDenseLimit.
	DefaultDenseLimit = chord.DefaultDenseLimit
)

// Topology names.
const (
	TopologyLinear   = "linear"
	TopologyCircular = "circular"
)

// ValidTopologies is the set of supported topologies.
var ValidTopologies = map[string]bool{
	TopologyLinear:   true,
	TopologyCircular: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// This struct supports TOML and JSON serialization.
type Options struct {
	// Topology is "linear" or "circular".
	Topology string `toml:"topology" json:"topology,omitempty"`

	// Nails is the modulus of a circular layout or the domain of a linear
	// one. Zero means the largest position in the notes.
	Nails int `toml:"nails" json:"nails,omitempty"`

	// Engine options
	Strategy         string `toml:"strategy" json:"strategy,omitempty"`
	BruteForceBudget int    `toml:"brute_force_budget" json:"brute_force_budget,omitempty"`
	DenseLimit       int    `toml:"dense_limit" json:"dense_limit,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `toml:"-" json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a full solve.
type Result struct {
	Chords    int       `json:"chords"`
	Nails     int       `json:"nails"`
	Topology  string    `json:"topology"`
	Knots     int       `json:"knots"`
	Cut       chord.Cut `json:"cut"`
	Severed   int       `json:"severed"`
	Diameters int       `json:"diameters"`
	Stats     Stats     `json:"-"`
}

// Stats contains solve timings.
type Stats struct {
	KnotsTime  time.Duration
	CutTime    time.Duration
	CenterTime time.Duration
}

// Total returns the summed solve time.
func (s Stats) Total() time.Duration {
	return s.KnotsTime + s.CutTime + s.CenterTime
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateTopology checks that a topology name is valid.
func ValidateTopology(topology string) error {
	if !ValidTopologies[topology] {
		return errors.New(errors.ErrCodeInvalidOption, "invalid topology: %q (must be one of: linear, circular)", topology)
	}
	return nil
}

// ValidateStrategy checks that a strategy name is valid.
func ValidateStrategy(strategy string) error {
	_, err := chord.ParseStrategy(strategy)
	return err
}

// ValidateNails checks the configured nail count. Zero is allowed and means
// "derive from the notes".
func ValidateNails(nails int) error {
	if nails < 0 {
		return errors.New(errors.ErrCodeInvalidOption, "nails must not be negative, got %d", nails)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks every field and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := ValidateTopology(o.Topology); err != nil {
		return err
	}
	if err := ValidateStrategy(o.Strategy); err != nil {
		return err
	}
	if err := ValidateNails(o.Nails); err != nil {
		return err
	}
	if err := o.ChordOptions().Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetDefaults fills zero fields with their defaults.
func (o *Options) SetDefaults() {
	if o.Topology == "" {
		o.Topology = DefaultTopology
	}
	if o.Strategy == "" {
		o.Strategy = DefaultStrategy
	}
	if o.BruteForceBudget == 0 {
		o.BruteForceBudget = DefaultBruteForceBudget
	}
	if o.DenseLimit == 0 {
		o.DenseLimit = DefaultDenseLimit
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// IsCircular returns true if positions wrap around.
func (o *Options) IsCircular() bool {
	return o.Topology == TopologyCircular
}

// ChordOptions converts the engine fields to chord.Options.
// The strategy must already be valid.
func (o *Options) ChordOptions() chord.Options {
	s, _ := chord.ParseStrategy(o.Strategy)
	return chord.Options{
		Strategy:         s,
		BruteForceBudget: o.BruteForceBudget,
		DenseLimit:       o.DenseLimit,
	}
}

// ResolveNails returns the configured nail count, or the largest endpoint
// of chords when none is configured.
func (o *Options) ResolveNails(chords []chord.Chord) int {
	if o.Nails > 0 {
		return o.Nails
	}
	n := 0
	for _, c := range chords {
		n = max(n, c.Low, c.High)
	}
	return n
}

// TopologyFor returns the chord topology for a run over chords.
func (o *Options) TopologyFor(chords []chord.Chord) chord.Topology {
	if o.IsCircular() {
		return chord.Circular(o.ResolveNails(chords))
	}
	return chord.Linear
}

func (o *Options) String() string {
	return fmt.Sprintf("%s nails=%d strategy=%s", o.Topology, o.Nails, o.Strategy)
}
