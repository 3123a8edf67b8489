package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stringart/pkg/chord"
	"github.com/matzehuels/stringart/pkg/diagram"
	"github.com/matzehuels/stringart/pkg/notes"
	"github.com/matzehuels/stringart/pkg/observability"
)

// Operation names reported to hooks and logs.
const (
	OpKnots  = "knots"
	OpCut    = "cut"
	OpCenter = "center"
)

// Runner executes pipeline stages, firing observability hooks and logging
// each step.
//
// The Runner is stateless except for the logger. Multiple goroutines can
// safely use the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Load reads puzzle notes from src and joins consecutive positions into
// chords. source names the input in logs and errors.
func (r *Runner) Load(ctx context.Context, src io.Reader, source string) ([]chord.Chord, error) {
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, source)
	start := time.Now()

	positions, err := notes.Read(src)
	var chords []chord.Chord
	if err == nil {
		chords, err = chord.Build(positions)
	}
	duration := time.Since(start)
	hooks.OnParseComplete(ctx, source, len(positions), duration, err)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", source, err)
	}

	r.Logger.Info("parsed notes",
		"source", source,
		"positions", len(positions),
		"chords", len(chords),
		"duration", duration)
	return chords, nil
}

// Knots counts crossing pairs of chords.
func (r *Runner) Knots(ctx context.Context, chords []chord.Chord, opts Options) (int, error) {
	if err := r.prepare(&opts); err != nil {
		return 0, err
	}
	n, _, err := r.knots(ctx, chords, opts)
	return n, err
}

func (r *Runner) knots(ctx context.Context, chords []chord.Chord, opts Options) (int, time.Duration, error) {
	return r.run(ctx, OpKnots, chords, opts, func(topo chord.Topology) (int, error) {
		if err := topo.Validate(); err != nil {
			return 0, err
		}
		return chord.CountCrossings(chords, topo, opts.ChordOptions()), nil
	})
}

// MaxCut finds the cut severing the most chords.
func (r *Runner) MaxCut(ctx context.Context, chords []chord.Chord, opts Options) (chord.Cut, int, error) {
	if err := r.prepare(&opts); err != nil {
		return chord.Cut{}, 0, err
	}
	cut, n, _, err := r.maxCut(ctx, chords, opts)
	return cut, n, err
}

func (r *Runner) maxCut(ctx context.Context, chords []chord.Chord, opts Options) (chord.Cut, int, time.Duration, error) {
	var cut chord.Cut
	n, d, err := r.run(ctx, OpCut, chords, opts, func(topo chord.Topology) (int, error) {
		var (
			severed int
			err     error
		)
		if topo.IsCircular() {
			cut, severed, err = chord.BestCutCircular(chords, topo.Modulus, opts.ChordOptions())
		} else {
			cut, severed, err = chord.BestCut(chords, opts.ResolveNails(chords), opts.ChordOptions())
		}
		return severed, err
	})
	return cut, n, d, err
}

// Center counts chords through the center of the nail circle.
func (r *Runner) Center(ctx context.Context, chords []chord.Chord, opts Options) (int, error) {
	if err := r.prepare(&opts); err != nil {
		return 0, err
	}
	n, _, err := r.center(ctx, chords, opts)
	return n, err
}

func (r *Runner) center(ctx context.Context, chords []chord.Chord, opts Options) (int, time.Duration, error) {
	nails := opts.ResolveNails(chords)
	return r.run(ctx, OpCenter, chords, opts, func(chord.Topology) (int, error) {
		return chord.CountDiameters(chords, nails), nil
	})
}

// Solve runs every operation over the same chords.
func (r *Runner) Solve(ctx context.Context, chords []chord.Chord, opts Options) (*Result, error) {
	if err := r.prepare(&opts); err != nil {
		return nil, err
	}
	result := &Result{
		Chords:   len(chords),
		Nails:    opts.ResolveNails(chords),
		Topology: opts.Topology,
	}

	var err error
	result.Knots, result.Stats.KnotsTime, err = r.knots(ctx, chords, opts)
	if err != nil {
		return nil, err
	}

	result.Cut, result.Severed, result.Stats.CutTime, err = r.maxCut(ctx, chords, opts)
	if err != nil {
		return nil, err
	}

	result.Diameters, result.Stats.CenterTime, err = r.center(ctx, chords, opts)
	if err != nil {
		return nil, err
	}

	opts.Logger.Info("solved notes",
		"chords", result.Chords,
		"knots", result.Knots,
		"severed", result.Severed,
		"diameters", result.Diameters,
		"duration", result.Stats.Total())
	return result, nil
}

// DiagramOptions selects what [Runner.Diagram] draws.
type DiagramOptions struct {
	Format diagram.Format
	// ShowCut computes the best cut and highlights it.
	ShowCut bool
	Labels  bool
}

// Diagram draws chords as a DOT, SVG or PNG chord diagram.
func (r *Runner) Diagram(ctx context.Context, chords []chord.Chord, opts Options, dopts DiagramOptions) ([]byte, error) {
	if err := r.prepare(&opts); err != nil {
		return nil, err
	}
	if dopts.Format == "" {
		dopts.Format = diagram.FormatSVG
	}

	topo := opts.TopologyFor(chords)
	if err := topo.Validate(); err != nil {
		return nil, err
	}
	drawing := diagram.Options{Topology: topo, Nails: opts.ResolveNails(chords), Labels: dopts.Labels}
	if dopts.ShowCut {
		cut, n, _, err := r.maxCut(ctx, chords, opts)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			drawing.Cut = &cut
		}
	}

	hooks := observability.Render()
	hooks.OnRenderStart(ctx, string(dopts.Format))
	start := time.Now()
	data, err := diagram.Render(ctx, diagram.ToDOT(chords, drawing), dopts.Format)
	duration := time.Since(start)
	hooks.OnRenderComplete(ctx, string(dopts.Format), len(data), duration, err)
	if err != nil {
		return nil, fmt.Errorf("diagram: %w", err)
	}

	opts.Logger.Info("rendered diagram",
		"format", dopts.Format,
		"bytes", len(data),
		"duration", duration)
	return data, nil
}

// run times one operation and reports it to hooks and the logger.
func (r *Runner) run(ctx context.Context, op string, chords []chord.Chord, opts Options, fn func(chord.Topology) (int, error)) (int, time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}

	hooks := observability.Pipeline()
	hooks.OnSolveStart(ctx, op, len(chords))
	start := time.Now()
	n, err := fn(opts.TopologyFor(chords))
	duration := time.Since(start)
	hooks.OnSolveComplete(ctx, op, n, duration, err)
	if err != nil {
		return 0, duration, fmt.Errorf("%s: %w", op, err)
	}

	opts.Logger.Debug("solved",
		"op", op,
		"chords", len(chords),
		"topology", opts.Topology,
		"strategy", opts.Strategy,
		"result", n,
		"duration", duration)
	return n, duration, nil
}

// prepare applies the runner's logger and validates options.
func (r *Runner) prepare(opts *Options) error {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}
