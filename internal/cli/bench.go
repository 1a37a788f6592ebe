package cli

import (
	"cmp"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	perrors "github.com/matzehuels/permute/pkg/errors"
	"github.com/matzehuels/permute/pkg/permute"
)

// maxBenchN keeps a full traversal per round under a few seconds.
const maxBenchN = 12

// benchCommand creates the bench command.
func (c *CLI) benchCommand() *cobra.Command {
	var (
		n      int
		rounds int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the enumeration engines against each other",
		Long: `Time the enumeration engines against each other.

Each engine walks all n! permutations of an n-element sequence. The
stepping engine and the recursive engine visit arrangements in swap
order; the lexical engine counts upward in dictionary order. Every
engine runs the requested number of rounds and its best round wins.`,
		Example: `  permute bench
  permute bench --n 10 --rounds 5
  permute bench --json > report.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBench(n, rounds, asJSON)
		},
	}

	cmd.Flags().IntVar(&n, "n", 8, "sequence length to permute")
	cmd.Flags().IntVar(&rounds, "rounds", 3, "rounds per engine, best round wins")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the report as JSON")

	return cmd
}

// benchReport is the JSON form of a bench run.
type benchReport struct {
	ID      string        `json:"id"`
	N       int           `json:"n"`
	Count   uint64        `json:"count"`
	Rounds  int           `json:"rounds"`
	Results []benchResult `json:"results"`
}

// benchResult holds one engine's best round.
type benchResult struct {
	Engine  string        `json:"engine"`
	Best    time.Duration `json:"best_ns"`
	PerPerm float64       `json:"ns_per_permutation"`
}

// runBench walks all engines and prints the report.
func (c *CLI) runBench(n, rounds int, asJSON bool) error {
	if n < 1 || n > maxBenchN {
		return perrors.New(perrors.ErrCodeInvalidInput, "n must be between 1 and %d", maxBenchN)
	}
	if rounds < 1 {
		return perrors.New(perrors.ErrCodeInvalidInput, "rounds must be at least 1")
	}

	prog := newProgress(c.Logger)
	want := permute.Factorial(n)
	report := benchReport{
		ID:     uuid.NewString(),
		N:      n,
		Count:  want,
		Rounds: rounds,
	}

	for _, engine := range benchEngines(n) {
		best := time.Duration(-1)
		for r := 0; r < rounds; r++ {
			start := time.Now()
			count := engine.run()
			elapsed := time.Since(start)

			if count != want {
				return fmt.Errorf("engine %s visited %d arrangements, expected %d", engine.name, count, want)
			}
			if best < 0 || elapsed < best {
				best = elapsed
			}
		}
		report.Results = append(report.Results, benchResult{
			Engine:  engine.name,
			Best:    best,
			PerPerm: float64(best.Nanoseconds()) / float64(want),
		})
		c.Logger.Debug("engine finished", "engine", engine.name, "best", best)
	}
	prog.done(fmt.Sprintf("Benchmarked %d engines over %d rounds", len(report.Results), rounds))

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printBenchReport(report)
	return nil
}

// benchEngine pairs an engine name with a full-traversal runner.
type benchEngine struct {
	name string
	run  func() uint64
}

// benchEngines builds one runner per engine, each walking all n!
// permutations of the identity sequence.
func benchEngines(n int) []benchEngine {
	base := permute.Identity(n)

	return []benchEngine{
		{"stepping", func() uint64 {
			work := slices.Clone(base)
			h, err := permute.NewHeap(work)
			if err != nil {
				return 0
			}
			var count uint64
			for {
				if _, ok := h.Next(); !ok {
					return count
				}
				count++
			}
		}},
		{"recursive", func() uint64 {
			work := slices.Clone(base)
			var count uint64
			permute.Enumerate(work, func([]int) { count++ })
			return count
		}},
		{"lexical", func() uint64 {
			work := slices.Clone(base)
			count := uint64(1)
			for permute.NextLexical(work) {
				count++
			}
			return count
		}},
	}
}

// printBenchReport renders the report as a table, fastest engine first.
func printBenchReport(report benchReport) {
	results := slices.Clone(report.Results)
	slices.SortFunc(results, func(a, b benchResult) int {
		return cmp.Compare(a.Best, b.Best)
	})

	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = []string{r.Engine, r.Best.String(), fmt.Sprintf("%.1f", r.PerPerm)}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Engine", "Best", "ns/perm").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == 0 {
				return lipgloss.NewStyle().Foreground(colorGreen)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	fmt.Println(StyleTitle.Render(fmt.Sprintf("%d! = %d permutations, best of %d", report.N, report.Count, report.Rounds)))
	fmt.Println(t.Render())
	fmt.Println(StyleDim.Render("run " + report.ID))
}
