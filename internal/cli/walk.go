package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	perrors "github.com/matzehuels/permute/pkg/errors"
	"github.com/matzehuels/permute/pkg/permute"
)

// Walk styles
var (
	walkDimStyle     = lipgloss.NewStyle().Foreground(colorDim)
	walkElementStyle = lipgloss.NewStyle().Foreground(colorWhite)
	walkSwappedStyle = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	walkHeaderStyle  = lipgloss.NewStyle().Foreground(colorGray)
)

// walkCommand creates the walk command for interactive stepping.
func (c *CLI) walkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk <element>...",
		Short: "Step through permutations interactively",
		Long: `Step through permutations interactively.

Each keypress advances the sequence by one swap. The two positions that
changed are highlighted, and the footer tracks progress through all n!
arrangements.`,
		Example: `  permute walk a b c
  permute walk 1 2 3 4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWalk(args)
		},
	}

	return cmd
}

// runWalk drives the interactive stepper.
func (c *CLI) runWalk(elements []string) error {
	if err := perrors.ValidateElements(elements); err != nil {
		return err
	}

	m, err := NewWalkModel(elements)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := finalModel.(WalkModel); ok {
		printDetail("stopped at step %d of %s", fm.Step, fm.Total)
	}
	return nil
}

// =============================================================================
// WalkModel - Interactive permutation stepper
// =============================================================================

// WalkModel is the bubbletea model for the interactive permutation stepper.
type WalkModel struct {
	Step  int    // 1-based index of the current arrangement
	Total string // n! as a decimal string
	Done  bool   // all arrangements have been visited

	engine   *permute.Heap[[]string, string]
	work     []string // the engine's slice
	original []string // starting order, restored on restart
	current  []string // snapshot of the current arrangement
	previous []string // snapshot before the last step
}

// NewWalkModel creates a stepper positioned on the starting arrangement.
func NewWalkModel(elements []string) (WalkModel, error) {
	work := slices.Clone(elements)
	engine, err := permute.NewHeap(work)
	if err != nil {
		return WalkModel{}, err
	}
	first, _ := engine.Next()
	return WalkModel{
		Step:     1,
		Total:    permute.FactorialBig(len(elements)).String(),
		engine:   engine,
		work:     work,
		original: slices.Clone(elements),
		current:  slices.Clone(first),
	}, nil
}

func (m WalkModel) Init() tea.Cmd {
	return nil
}

func (m WalkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "n", "right", " ", "enter":
			return m.advance(), nil
		case "r":
			return m.restart(), nil
		}
	}
	return m, nil
}

// advance steps the engine to the next arrangement.
func (m WalkModel) advance() WalkModel {
	if m.Done {
		return m
	}
	next, ok := m.engine.Next()
	if !ok {
		m.Done = true
		return m
	}
	m.previous = m.current
	m.current = slices.Clone(next)
	m.Step++
	return m
}

// restart rewinds to the starting arrangement. The engine restarts from
// whatever order its slice is in, so the original order is restored first.
func (m WalkModel) restart() WalkModel {
	copy(m.work, m.original)
	m.engine.Reset()
	first, _ := m.engine.Next()
	m.Step = 1
	m.Done = false
	m.previous = nil
	m.current = slices.Clone(first)
	return m
}

func (m WalkModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Permutation Walk"))
	b.WriteString("\n")
	b.WriteString(walkDimStyle.Render("n/space step  r restart  q quit"))
	b.WriteString("\n\n")

	swapped := changedPositions(m.previous, m.current)

	headers := make([]string, len(m.current))
	for i := range headers {
		headers[i] = strconv.Itoa(i + 1)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(m.current).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return walkHeaderStyle
			}
			if slices.Contains(swapped, col) {
				return walkSwappedStyle
			}
			return walkElementStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")

	switch {
	case m.Done:
		b.WriteString(StyleWarning.Render("all arrangements visited, r restarts from the top"))
	case len(swapped) == 2:
		b.WriteString(walkDimStyle.Render(fmt.Sprintf("swapped positions %d and %d", swapped[0]+1, swapped[1]+1)))
	case m.Step > 1:
		b.WriteString(walkDimStyle.Render("swap changed nothing visible (equal elements)"))
	default:
		b.WriteString(walkDimStyle.Render("starting arrangement"))
	}
	b.WriteString("\n")
	b.WriteString(walkDimStyle.Render(fmt.Sprintf("  [%d/%s]", m.Step, m.Total)))

	return b.String()
}

// changedPositions returns the indices where prev and cur differ.
func changedPositions(prev, cur []string) []int {
	if prev == nil {
		return nil
	}
	var out []int
	for i := range cur {
		if i < len(prev) && prev[i] != cur[i] {
			out = append(out, i)
		}
	}
	return out
}
