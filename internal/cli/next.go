package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	perrors "github.com/matzehuels/permute/pkg/errors"
	"github.com/matzehuels/permute/pkg/permute"
)

// nextCommand creates the next command for stepping through lex order.
func (c *CLI) nextCommand() *cobra.Command {
	var (
		prev  bool
		steps int
	)

	cmd := &cobra.Command{
		Use:   "next <element>...",
		Short: "Advance a sequence to its lexicographic successor",
		Long: `Advance a sequence to its lexicographic successor.

Elements are compared as strings. With --prev the sequence steps backward
to its predecessor instead. Each step prints the resulting arrangement on
its own line.

The command fails once the sequence cannot advance any further, which
makes it usable as a loop condition in shell scripts.`,
		Example: `  permute next a c b
  permute next --steps 5 a b c
  permute next --prev b a c`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runNext(args, prev, steps)
		},
	}

	cmd.Flags().BoolVar(&prev, "prev", false, "step backward instead of forward")
	cmd.Flags().IntVar(&steps, "steps", 1, "number of steps to take")

	return cmd
}

// runNext steps the sequence and prints each arrangement it passes through.
func (c *CLI) runNext(elements []string, prev bool, steps int) error {
	if err := perrors.ValidateElements(elements); err != nil {
		return err
	}
	if steps < 1 {
		return perrors.New(perrors.ErrCodeInvalidInput, "steps must be at least 1")
	}

	work := slices.Clone(elements)
	advance := func() bool { return permute.NextLexical(work) }
	direction := "last"
	if prev {
		advance = func() bool { return permute.PrevLexical(work) }
		direction = "first"
	}

	for i := 0; i < steps; i++ {
		if !advance() {
			return fmt.Errorf("no further permutations: %s is the %s in lex order",
				strings.Join(work, " "), direction)
		}
		fmt.Println(strings.Join(work, " "))
	}
	return nil
}
