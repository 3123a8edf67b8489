package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stringart/pkg/buildinfo"
	"github.com/matzehuels/stringart/pkg/chord"
	"github.com/matzehuels/stringart/pkg/errors"
	"github.com/matzehuels/stringart/pkg/observability"
	"github.com/matzehuels/stringart/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "stringart"

	// stdinPath reads the notes from standard input.
	stdinPath = "-"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	strategy   string
	config     Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Stringart counts knots and cuts in string art",
		Long: `Stringart reads a list of nail positions, joins consecutive nails with
threads, and answers questions about the threads: how many pairs cross, which
single cut severs the most threads, and how many threads pass through the
center of the circle.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/stringart/config.toml)")
	root.PersistentFlags().StringVar(&c.strategy, "strategy", "", "solver strategy: auto (default), brute, sweep")

	// Register all subcommands
	root.AddCommand(c.knotsCommand())
	root.AddCommand(c.cutCommand())
	root.AddCommand(c.centerCommand())
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.diagramCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config file, attaches the logger to the command context and
// registers logging hooks.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	path, explicit := c.configPath, c.configPath != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			c.Logger.Debug("no config directory", "err", err)
		}
		path = p
	}

	cfg, err := readConfig(path, explicit)
	if err != nil {
		return err
	}
	c.config = cfg
	if c.strategy != "" {
		if err := pipeline.ValidateStrategy(c.strategy); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))

	hooks := newLogHooks(c.Logger)
	observability.SetPipelineHooks(hooks)
	observability.SetRenderHooks(hooks)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// engineFlags holds the flags shared by every solving command.
type engineFlags struct {
	nails    int
	topology string
}

func addEngineFlags(cmd *cobra.Command, f *engineFlags) {
	cmd.Flags().IntVarP(&f.nails, "nails", "n", 0, "number of nails (default: largest position)")
	cmd.Flags().StringVarP(&f.topology, "topology", "t", "", "nail layout: linear, circular (default: circular when --nails is set)")
}

// options merges config file values with command-line flags. Flags win.
// Without an explicit topology, a known nail count implies a circle.
func (c *CLI) options(cmd *cobra.Command, f *engineFlags) pipeline.Options {
	opts := c.config.Engine
	opts.Logger = c.Logger
	if cmd.Flags().Changed("nails") {
		opts.Nails = f.nails
	}
	if cmd.Flags().Changed("topology") {
		opts.Topology = f.topology
	}
	if c.strategy != "" {
		opts.Strategy = c.strategy
	}
	impliedTopology(&opts)
	return opts
}

// impliedTopology picks the circular layout when a nail count is known and no
// topology is set.
func impliedTopology(opts *pipeline.Options) {
	if opts.Topology == "" && opts.Nails > 0 {
		opts.Topology = pipeline.TopologyCircular
	}
}

// =============================================================================
// Input
// =============================================================================

// loadChords reads the notes named by path ("-" for stdin) into chords.
func (c *CLI) loadChords(cmd *cobra.Command, path string) ([]chord.Chord, error) {
	if err := errors.ValidateInputPath(path); err != nil {
		return nil, err
	}

	runner := c.newRunner()
	if path == stdinPath {
		return runner.Load(cmd.Context(), cmd.InOrStdin(), "stdin")
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "notes %s", path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return runner.Load(cmd.Context(), f, path)
}
