package cli

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/spf13/cobra"

	perrors "github.com/matzehuels/permute/pkg/errors"
	"github.com/matzehuels/permute/pkg/permute"
)

// countCommand creates the count command.
func (c *CLI) countCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count <n | element...>",
		Short: "Count the distinct permutations of a sequence",
		Long: `Count the distinct permutations of a sequence.

A single numeric argument is taken as a length and counted as n factorial.
A list of elements is counted as a multiset, so repeated elements do not
inflate the answer: "a a b" has 3 distinct permutations, not 6.

Counts are computed with arbitrary precision and never overflow.`,
		Example: `  permute count 5
  permute count a a b
  permute count 100`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCount(args)
		},
	}

	return cmd
}

// runCount counts either a bare length or a concrete sequence.
func (c *CLI) runCount(args []string) error {
	if n, err := strconv.Atoi(args[0]); err == nil && len(args) == 1 {
		return c.countLength(n)
	}
	return c.countElements(args)
}

// countLength prints n! for a bare length.
func (c *CLI) countLength(n int) error {
	if err := perrors.ValidateCountInput(n); err != nil {
		return err
	}
	printKeyValue(fmt.Sprintf("%d!", n), permute.FactorialBig(n).String())
	return nil
}

// countElements prints the number of distinct permutations of a multiset.
func (c *CLI) countElements(elements []string) error {
	if err := perrors.ValidateElements(elements); err != nil {
		return err
	}

	distinct := distinctElements(elements)
	printKeyValue("permutations", distinctCount(elements).String())
	if distinct < len(elements) {
		printDetail("repeated elements merged, %d distinct of %d total", distinct, len(elements))
	}
	return nil
}

// distinctCount returns the number of distinct permutations of a multiset,
// n! divided by the factorial of each element's multiplicity.
func distinctCount(elements []string) *big.Int {
	counts := make(map[string]int)
	for _, el := range elements {
		counts[el]++
	}

	total := permute.FactorialBig(len(elements))
	for _, m := range counts {
		total.Div(total, permute.FactorialBig(m))
	}
	return total
}

// distinctElements returns how many distinct values the multiset holds.
func distinctElements(elements []string) int {
	counts := make(map[string]struct{})
	for _, el := range elements {
		counts[el] = struct{}{}
	}
	return len(counts)
}
