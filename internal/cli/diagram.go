package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stringart/pkg/chord"
	"github.com/matzehuels/stringart/pkg/diagram"
	"github.com/matzehuels/stringart/pkg/pipeline"
)

// diagramFlags holds flags for the diagram command.
type diagramFlags struct {
	engineFlags
	output string
	format string
	cut    bool
	labels bool
}

// diagramCommand creates the diagram command.
func (c *CLI) diagramCommand() *cobra.Command {
	var f diagramFlags

	cmd := &cobra.Command{
		Use:   "diagram [notes]",
		Short: "Draw the threads as a chord diagram",
		Long: `Draw the threads as a chord diagram with nails on a circle or a line.

DOT output goes to standard output unless -o is given. SVG and PNG are
written to chords.svg or chords.png by default. With --cut, the best cut is
drawn dashed and the threads it severs are highlighted.`,
		Example: `  stringart diagram notes.txt --nails 8 --cut
  stringart diagram notes.txt --format dot | dot -Kneato -Tpdf > chords.pdf`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := diagram.ParseFormat(f.format)
			if err != nil {
				return err
			}
			chords, err := c.loadChords(cmd, notesArg(args))
			if err != nil {
				return err
			}
			return c.runDiagram(cmd, chords, format, &f)
		},
	}

	addEngineFlags(cmd, &f.engineFlags)
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default: stdout for dot, chords.<format> otherwise)")
	cmd.Flags().StringVarP(&f.format, "format", "f", string(diagram.FormatSVG), "output format: dot, svg, png")
	cmd.Flags().BoolVar(&f.cut, "cut", false, "highlight the best cut")
	cmd.Flags().BoolVar(&f.labels, "labels", false, "label nails with their positions")
	return cmd
}

func (c *CLI) runDiagram(cmd *cobra.Command, chords []chord.Chord, format diagram.Format, f *diagramFlags) error {
	prog := newProgress(loggerFromContext(cmd.Context()))
	opts := c.options(cmd, &f.engineFlags)
	dopts := pipeline.DiagramOptions{Format: format, ShowCut: f.cut, Labels: f.labels}

	data, err := spin(cmd.Context(), cmd.ErrOrStderr(), "Drawing chords...", func(ctx context.Context) ([]byte, error) {
		return c.newRunner().Diagram(ctx, chords, opts, dopts)
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if f.output == "" && format == diagram.FormatDOT {
		_, err := out.Write(data)
		return err
	}

	path := f.output
	if path == "" {
		path = "chords." + string(format)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	prog.done("Wrote " + path)
	printSuccess(out, "Drew %d threads", len(chords))
	printFile(out, path)
	return nil
}
