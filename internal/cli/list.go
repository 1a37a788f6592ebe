package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/permute/pkg/pipeline"
)

// listCommand creates the list command for enumerating permutations.
func (c *CLI) listCommand() *cobra.Command {
	var (
		asJSON  bool
		output  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "list <element>...",
		Short: "Enumerate the permutations of a sequence",
		Long: `Enumerate the permutations of a sequence.

In heap order (the default) consecutive permutations differ by a single
swap of two elements, so the whole run touches each arrangement exactly
once with minimal movement. In lex order the run starts at the given
arrangement and counts upward in dictionary order until the largest one.

Results are cached locally for faster subsequent runs.`,
		Example: `  permute list a b c
  permute list --order lex --limit 10 1 2 3 4
  permute list --json a b c > perms.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Elements = args
			if opts.Order == "" {
				opts.Order = c.Conf().Order
			}
			if opts.Limit == 0 {
				opts.Limit = c.Conf().Limit
			}
			return c.runList(cmd.Context(), opts, output, asJSON, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when cached")

	// Enumeration flags
	cmd.Flags().StringVar(&opts.Order, "order", "", "enumeration order: heap (default), lex")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "maximum number of permutations to produce")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of plain text")

	return cmd
}

// runList enumerates the permutations and writes them out.
func (c *CLI) runList(ctx context.Context, opts pipeline.Options, output string, asJSON, noCache bool) error {
	if err := opts.ValidateForEnumerate(); err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, "Enumerating...")
	spinner.Start()

	arr, cacheHit, err := runner.EnumerateWithCacheInfo(ctx, opts)
	if err != nil {
		spinner.StopWithError("Enumeration failed")
		return fmt.Errorf("enumerate: %w", err)
	}
	spinner.Stop()

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(arr); err != nil {
			return err
		}
	} else {
		for _, p := range arr.Permutations {
			if _, err := fmt.Fprintln(out, strings.Join(p, " ")); err != nil {
				return err
			}
		}
	}

	// Decorations go to stdout only when the data went somewhere else.
	if output != "" {
		printSuccess("Enumerated %s", strings.Join(opts.Elements, " "))
		printFile(output)
		printStats(len(arr.Permutations), opts.Order, cacheHit, arr.Truncated)
		if arr.Truncated {
			printWarning("stopped after %d permutations, raise --limit to see more", opts.Limit)
		}
		printNewline()
		printNextStep("Draw the transition graph", fmt.Sprintf("permute graph %s", strings.Join(opts.Elements, " ")))
	} else if arr.Truncated {
		c.Logger.Warnf("stopped after %d permutations, raise --limit to see more", opts.Limit)
	}

	return nil
}
