package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/permute/pkg/pipeline"
)

// graphCommand creates the graph command for rendering transition graphs.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "graph <element>...",
		Short: "Render the permutation transition graph",
		Long: `Render the permutation transition graph.

Every distinct arrangement becomes a node. Solid arrows trace the
enumeration walk, one swap at a time. With --transpositions the remaining
single-swap neighbors are drawn as dashed grey lines, which for distinct
elements completes the skeleton of the permutohedron.

Results are cached locally for faster subsequent runs.`,
		Example: `  permute graph a b c
  permute graph --format dot --detailed 1 2 3
  permute graph --transpositions --output neighbors.svg a b c`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Elements = args
			opts.Formats = parseFormats(formatsStr, pipeline.FormatSVG)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runGraph(cmd.Context(), opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple), - for stdout")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when cached")

	// Graph flags
	cmd.Flags().BoolVar(&opts.Transpositions, "transpositions", false, "draw all single-swap neighbors, not just the walk")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "label walk edges with step number and swap")
	cmd.Flags().IntVar(&opts.MaxNodes, "max-nodes", 0, "node budget for the graph (default 5040)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, json (comma-separated)")

	return cmd
}

// runGraph executes the full pipeline and writes the artifacts.
func (c *CLI) runGraph(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, "Rendering graph...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return fmt.Errorf("graph: %w", err)
	}
	spinner.Stop()

	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		base:      artifactBase(opts.Elements),
		output:    output,
	}); err != nil {
		return err
	}

	if output != "-" {
		cached := result.CacheInfo.EnumerateHit && result.CacheInfo.RenderHit
		printStats(result.Stats.Produced, opts.Order, cached, result.Arrangements.Truncated)
	}
	return nil
}

// artifactBase derives a file stem from the elements.
func artifactBase(elements []string) string {
	stem := strings.Join(elements, "-")
	stem = strings.NewReplacer("/", "_", "\\", "_", " ", "_", ".", "_").Replace(stem)
	if len(stem) > 64 {
		stem = stem[:64]
	}
	if stem == "" {
		return "permutations"
	}
	return stem
}
