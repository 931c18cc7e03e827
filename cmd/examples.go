package cmd

import (
	"errors"
	"fmt"

	"github.com/lazharichir/handscore/hands"
	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"
)

var errExamplesFailed = errors.New("some examples were misclassified")

func newExamplesCmd() *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "examples",
		Short: "Classify one reference hand per category and report mismatches",
		RunE: func(cmd *cobra.Command, args []string) error {
			results := hands.RunExamples()

			if dump {
				fmt.Fprintln(cmd.OutOrStdout(), litter.Sdump(results))
			} else if err := renderExampleResults(cmd.OutOrStdout(), results); err != nil {
				return err
			}

			for _, res := range results {
				if !res.Correct {
					return fmt.Errorf("%w: %s classified as %s", errExamplesFailed, res.Category, res.Got)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "Dump the raw results instead of a table")
	return cmd
}
