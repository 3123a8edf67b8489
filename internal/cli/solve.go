package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stringart/pkg/pipeline"
)

// notesArg returns the notes path from args, defaulting to stdin.
func notesArg(args []string) string {
	if len(args) == 0 {
		return stdinPath
	}
	return args[0]
}

// knotsCommand creates the knots command.
func (c *CLI) knotsCommand() *cobra.Command {
	var f engineFlags

	cmd := &cobra.Command{
		Use:   "knots [notes]",
		Short: "Count pairs of crossing threads",
		Long: `Count pairs of threads that cross each other.

The notes are a comma separated list of nail positions, read from the named
file or from standard input when the file is "-" or omitted.`,
		Example: `  stringart knots notes.txt
  echo 1,5,2,6,8,4,1,7,3 | stringart knots --nails 8`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chords, err := c.loadChords(cmd, notesArg(args))
			if err != nil {
				return err
			}
			n, err := c.newRunner().Knots(cmd.Context(), chords, c.options(cmd, &f))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}

	addEngineFlags(cmd, &f)
	return cmd
}

// cutCommand creates the cut command.
func (c *CLI) cutCommand() *cobra.Command {
	var f engineFlags

	cmd := &cobra.Command{
		Use:   "cut [notes]",
		Short: "Find the straight cut that severs the most threads",
		Long: `Find the straight cut between two nails that severs the most threads.

A thread is severed when it crosses the cut, with exactly one of its ends
strictly between the cut's two nails, or when it joins the same two nails as
the cut. A thread that shares one nail with the cut is not severed. The
number of severed threads is printed, and the cut's nails are logged to
stderr.`,
		Example: `  stringart cut notes.txt --nails 256
  stringart cut notes.txt --topology linear`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chords, err := c.loadChords(cmd, notesArg(args))
			if err != nil {
				return err
			}
			cut, n, err := c.newRunner().MaxCut(cmd.Context(), chords, c.options(cmd, &f))
			if err != nil {
				return err
			}
			c.Logger.Info("best cut", "cut", cut, "severed", n)
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}

	addEngineFlags(cmd, &f)
	return cmd
}

// centerCommand creates the center command.
func (c *CLI) centerCommand() *cobra.Command {
	var f engineFlags

	cmd := &cobra.Command{
		Use:   "center [notes]",
		Short: "Count threads passing through the center",
		Long: `Count threads that join two opposite nails and so pass through the
center of the circle. Requires an even number of nails.`,
		Example: `  stringart center notes.txt --nails 8`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chords, err := c.loadChords(cmd, notesArg(args))
			if err != nil {
				return err
			}
			opts := c.options(cmd, &f)
			n, err := c.newRunner().Center(cmd.Context(), chords, opts)
			if err != nil {
				return err
			}
			if nails := opts.ResolveNails(chords); nails%2 != 0 {
				printWarning(cmd.ErrOrStderr(), "%d nails have no opposite pairs", nails)
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}

	addEngineFlags(cmd, &f)
	return cmd
}

// solveFlags holds flags for the solve command.
type solveFlags struct {
	engineFlags
	json bool
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve [notes]",
		Short: "Answer every question about the notes at once",
		Example: `  stringart solve notes.txt --nails 256
  stringart solve notes.txt --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chords, err := c.loadChords(cmd, notesArg(args))
			if err != nil {
				return err
			}
			result, err := c.newRunner().Solve(cmd.Context(), chords, c.options(cmd, &f.engineFlags))
			if err != nil {
				return err
			}

			if f.json {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderResult(result))
			return nil
		},
	}

	addEngineFlags(cmd, &f.engineFlags)
	cmd.Flags().BoolVar(&f.json, "json", false, "print the result as JSON")
	return cmd
}

// renderResult formats a solve result as a two-column table.
func renderResult(r *pipeline.Result) string {
	cut := "none"
	if r.Severed > 0 {
		cut = r.Cut.String()
	}
	rows := [][]string{
		{"chords", strconv.Itoa(r.Chords)},
		{"nails", strconv.Itoa(r.Nails)},
		{"topology", r.Topology},
		{"knots", strconv.Itoa(r.Knots)},
		{"best cut", cut},
		{"severed", strconv.Itoa(r.Severed)},
		{"diameters", strconv.Itoa(r.Diameters)},
		{"time", r.Stats.Total().String()},
	}

	keyStyle := lipgloss.NewStyle().Foreground(colorGray).PaddingRight(1)
	valueStyle := StyleNumber.PaddingLeft(1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row < 0 || col == 0 {
				return keyStyle
			}
			if rows[row][0] == "time" {
				return StyleDim.PaddingLeft(1)
			}
			return valueStyle
		})
	return t.Render()
}
