// Package commands implements the tension CLI.
package commands

import (
	"math"
	"regexp"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/teranos/tension/am"
	"github.com/teranos/tension/errors"
	"github.com/teranos/tension/logger"
	"github.com/teranos/tension/scale"
)

// NewRootCmd builds the tension command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tension",
		Short: "Scale selection probabilities by harmonic tension",
		Long: `tension - Scale selection probabilities by harmonic tension.

For a tension value (conventionally 0 to 1) tension computes how likely each
scale in its catalog is to be chosen. Tension selects a band of eligible scale
categories, nearby scales are weighted by inverse distance, and the weights
are normalized over the whole catalog.

Available commands:
  probs   - Probability of every scale at one tension
  band    - Band a tension falls in
  bands   - Band table and boundaries
  catalog - The scale catalog
  sweep   - Probabilities over the whole tension range, as chart data
  am      - Show and validate configuration
  version - Build information

Examples:
  tension probs 0.4              # Distribution at tension 0.4
  tension sweep --format csv     # 200-sample sweep as CSV
  tension sweep -n 50 --json     # 50-sample sweep as JSON chart data
  tension am show                # Show resolved configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := am.Load()
			if err != nil {
				return errors.Wrap(err, "failed to load config")
			}
			// am subcommands report config problems themselves
			if p := cmd.Parent(); p == nil || p.Name() != "am" {
				if err := cfg.Validate(); err != nil {
					return errors.WithHint(errors.Wrap(err, "invalid configuration"), "run 'tension am validate' for details")
				}
			}
			if err := logger.Initialize(cfg.Log.JSON, verbosity(cmd)); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			logger.Debugw("configuration loaded",
				logger.FieldCommand, cmd.Name(),
				"verbosity", logger.LevelName(verbosity(cmd)),
				logger.FieldConfigFile, am.LoadedFiles())
			return nil
		},
	}

	root.SetFlagErrorFunc(flagError)

	root.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	root.PersistentFlags().Bool("json", false, "Output JSON")

	root.AddCommand(newProbsCmd())
	root.AddCommand(newBandCmd())
	root.AddCommand(newBandsCmd())
	root.AddCommand(newCatalogCmd())
	root.AddCommand(newSweepCmd())
	root.AddCommand(newAmCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// flagError points at "--" when a negative tension was read as a flag.
func flagError(cmd *cobra.Command, err error) error {
	if negativeNumberArg.MatchString(err.Error()) {
		return errors.WithHint(
			errors.NewInvalidRequestError("%s", err.Error()),
			"put -- before a negative tension, e.g. 'tension probs -- -0.5'")
	}
	return err
}

var negativeNumberArg = regexp.MustCompile(`unknown shorthand flag: '[0-9.]'`)

func verbosity(cmd *cobra.Command) int {
	v, _ := cmd.Flags().GetCount("verbose")
	return v
}

// catalog is the fixed catalog every command works on.
func catalog() scale.Catalog {
	return scale.Default()
}

// parseTension parses a tension argument. Values outside [0,1] are accepted:
// bands are not clamped, so they fall into the first or last band.
func parseTension(arg string) (float64, error) {
	t, err := strconv.ParseFloat(arg, 64)
	if err != nil || math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, errors.WithHint(
			errors.NewInvalidRequestError("tension %q is not a number", arg),
			"tension is a finite decimal value, conventionally between 0 and 1")
	}
	if t < 0 || t > 1 {
		logger.Warnw("tension outside [0,1]; using the nearest end band", logger.FieldTension, t)
	}
	return t, nil
}
