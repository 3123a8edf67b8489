package cli

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stringart/pkg/chord"
	"github.com/matzehuels/stringart/pkg/errors"
)

// Explorer styles
var (
	exploreBarStyle  = styleSevered
	exploreBestStyle = styleCut
	exploreDimStyle  = lipgloss.NewStyle().Foreground(colorDim)
)

// exploreCommand creates the interactive cut explorer.
func (c *CLI) exploreCommand() *cobra.Command {
	var f engineFlags

	cmd := &cobra.Command{
		Use:   "explore <notes>",
		Short: "Browse the severed counts of every cut interactively",
		Long: `Browse how many threads every cut severs.

Each screen fixes the cut's first nail and shows one bar per second nail.
Move the first nail with the arrow keys; the longest bar is the best cut for
that nail. The notes must come from a file since the terminal is used for
input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == stdinPath {
				return errors.New(errors.ErrCodeInvalidOption, "explore reads keys from stdin; pass the notes as a file")
			}
			chords, err := c.loadChords(cmd, args[0])
			if err != nil {
				return err
			}

			opts := c.options(cmd, &f)
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			topo := opts.TopologyFor(chords)
			domain := opts.ResolveNails(chords)
			m, err := newExploreModel(chords, topo, domain, domain <= opts.DenseLimit)
			if err != nil {
				return err
			}

			p := tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	addEngineFlags(cmd, &f)
	return cmd
}

// =============================================================================
// exploreModel - Interactive cut browser
// =============================================================================

// exploreModel is the bubbletea model behind the explore command. A sweep
// only moves right, so moving left restarts it from the first nail.
type exploreModel struct {
	chords []chord.Chord
	domain int
	dense  bool
	label  string

	sweep   *chord.Sweep
	profile []int
	best    int
	severed int
	err     error

	offset int
	height int
	width  int
}

func newExploreModel(chords []chord.Chord, topo chord.Topology, domain int, dense bool) (exploreModel, error) {
	if err := topo.Validate(); err != nil {
		return exploreModel{}, err
	}
	if topo.IsCircular() {
		canon := make([]chord.Chord, len(chords))
		for i, c := range chords {
			canon[i] = topo.Canonical(c)
		}
		chords, domain = canon, topo.Modulus
	}

	m := exploreModel{
		chords: chords,
		domain: domain,
		dense:  dense,
		label:  topo.String(),
		height: 15,
		width:  80,
	}
	if err := m.seek(1); err != nil {
		return exploreModel{}, err
	}
	return m, nil
}

// seek moves the cut start to s, restarting the sweep when s lies behind it.
// On error the model keeps showing the previous start.
func (m *exploreModel) seek(s int) error {
	if m.sweep == nil || s < m.sweep.Start() {
		sw, err := chord.NewSweep(m.chords, m.domain, m.dense)
		if err != nil {
			return err
		}
		m.sweep = sw
	}
	for m.sweep.Start() < s && m.sweep.Advance() {
	}
	m.profile = m.sweep.Profile()
	m.best, m.severed = m.sweep.Best()
	m.offset = 0
	return nil
}

// Start returns the first nail of the cuts on screen.
func (m exploreModel) Start() int { return m.sweep.Start() }

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			if s := m.Start(); s > 1 {
				m.err = m.seek(s - 1)
			}
		case "right", "l":
			if s := m.Start(); s < m.domain-1 {
				m.err = m.seek(s + 1)
			}
		case "up", "k":
			if m.offset > 0 {
				m.offset--
			}
		case "down", "j":
			if m.offset+m.height < len(m.profile) {
				m.offset++
			}
		case "b":
			m.offset = max(0, min(m.best-m.Start()-1, len(m.profile)-m.height))
		}
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-7, 5)
		m.width = msg.Width
	}
	return m, nil
}

func (m exploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Cut Explorer"))
	b.WriteString(exploreDimStyle.Render("  " + m.label))
	b.WriteString("\n")
	b.WriteString(exploreDimStyle.Render("←/→ first nail  ↑/↓ scroll  b best  q quit"))
	b.WriteString("\n\n")

	start := m.Start()
	if m.severed > 0 {
		fmt.Fprintf(&b, "best from %s: %s severs %s\n\n",
			StyleNumber.Render(fmt.Sprint(start)),
			exploreBestStyle.Render(chord.Cut{Low: start, High: m.best}.String()),
			StyleNumber.Render(fmt.Sprint(m.severed)))
	} else {
		fmt.Fprintf(&b, "no cut from %s severs a thread\n\n", StyleNumber.Render(fmt.Sprint(start)))
	}

	peak := 1
	if len(m.profile) > 0 {
		peak = max(peak, slices.Max(m.profile))
	}
	barWidth := max(m.width-16, 10)

	end := min(m.offset+m.height, len(m.profile))
	for i := m.offset; i < end; i++ {
		e, n := start+1+i, m.profile[i]
		bar := strings.Repeat(iconBar, n*barWidth/peak)
		style := exploreBarStyle
		if e == m.best && n > 0 {
			style = exploreBestStyle
		}
		fmt.Fprintf(&b, "%6d %s %s\n", e, style.Render(bar), exploreDimStyle.Render(fmt.Sprint(n)))
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(exploreDimStyle.Render(fmt.Sprintf("  [%d/%d]", start, m.domain-1)))
	return b.String()
}
