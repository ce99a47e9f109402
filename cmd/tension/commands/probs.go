package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/teranos/tension/display"
	"github.com/teranos/tension/engine"
	"github.com/teranos/tension/logger"
	"github.com/teranos/tension/render"
)

func newProbsCmd() *cobra.Command {
	var (
		bars     bool
		fraction bool
	)

	cmd := &cobra.Command{
		Use:   "probs <tension>",
		Short: "Show the probability of every scale at a tension",
		Long: `Show the probability of every scale in the catalog at one tension.

Scales outside the tension's band have probability 0. The most likely scale
is starred.

Examples:
  tension probs 0          # E Major dominates
  tension probs 0.5 --bars # Bar chart of the eligible scales
  tension probs 0.9 --json # Band, weights and distribution as JSON
  tension probs -- -0.5    # Negative tensions need -- in front`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseTension(args[0])
			if err != nil {
				return err
			}

			c := catalog()
			r, err := engine.Evaluate(c, t)
			if err != nil {
				return err
			}
			top, topP := r.Top(c)
			logger.Debugw("evaluated",
				logger.FieldTension, t,
				logger.FieldBand, r.Band.Label,
				logger.FieldScale, top)

			out := cmd.OutOrStdout()
			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(out, r)
			}

			if bars {
				if err := render.Bars(out, c, r); err != nil {
					return err
				}
			} else if err := render.DistributionTable(out, c, r, !fraction); err != nil {
				return err
			}

			v := verbosity(cmd)
			if logger.ShouldOutput(v, logger.OutputSummary) {
				fmt.Fprintf(out, "most likely: %s (%.1f%%)\n", top, topP*100)
			}
			if logger.ShouldOutput(v, logger.OutputWeights) {
				names := make([]string, 0, len(r.Weights))
				for name := range r.Weights {
					names = append(names, name)
				}
				sort.Slice(names, func(i, j int) bool { return c.Position(names[i]) < c.Position(names[j]) })
				fmt.Fprintln(out, "weights:")
				for _, name := range names {
					fmt.Fprintf(out, "  %-16s %.4f\n", name, r.Weights[name])
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&bars, "bars", false, "Render a bar chart of the eligible scales")
	cmd.Flags().BoolVar(&fraction, "fraction", false, "Show probabilities as fractions instead of percent")
	return cmd
}
