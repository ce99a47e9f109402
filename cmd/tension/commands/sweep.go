package commands

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/teranos/tension/am"
	"github.com/teranos/tension/display"
	"github.com/teranos/tension/errors"
	"github.com/teranos/tension/logger"
	"github.com/teranos/tension/render"
	"github.com/teranos/tension/sweep"
)

func newSweepCmd() *cobra.Command {
	var (
		f     sweepFlags
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sweep tension over [0,1] and export chart data",
		Long: `Evaluate the catalog at evenly spaced tensions from 0 to 1 inclusive.

Formats:
  table - one row per sample: band and most likely scale
  csv   - tension column plus one column per scale
  json, yaml, toml - full chart data: one line per scale, band markers
                     at 0.25/0.55/0.80 and band labels

Defaults come from the [sweep] and [output] sections of am.toml.

Examples:
  tension sweep                          # 200 samples, table
  tension sweep --format csv -o out.csv  # chart data for a plotting tool
  tension sweep -n 1000 --parallel       # concurrent evaluation
  tension sweep -f json -o chart.json --watch  # rewrite on am.toml change`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := am.Load()
			if err != nil {
				return err
			}
			if err := runSweep(cmd, f.resolve(cmd, cfg)); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			return watchSweep(cmd, f)
		},
	}

	cmd.Flags().IntVarP(&f.samples, "samples", "n", am.DefaultSamples, "Number of evenly spaced tensions in [0,1]")
	cmd.Flags().StringVarP(&f.format, "format", "f", am.FormatTable, "Output format: table, csv, json, yaml, toml")
	cmd.Flags().BoolVar(&f.parallel, "parallel", false, "Evaluate samples concurrently")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Concurrent workers with --parallel (0 = one per CPU)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Write to a file instead of stdout")
	cmd.Flags().BoolVar(&f.fraction, "fraction", false, "Write probabilities in [0,1] instead of percent")
	cmd.Flags().BoolVar(&watch, "watch", false, "Keep running and redo the sweep whenever am.toml changes")
	return cmd
}

// sweepFlags holds the sweep flag values. Flags left unset on the command
// line are filled from config by resolve.
type sweepFlags struct {
	samples  int
	format   string
	parallel bool
	workers  int
	output   string
	fraction bool
}

func (f sweepFlags) resolve(cmd *cobra.Command, cfg *am.Config) sweepFlags {
	flags := cmd.Flags()
	if !flags.Changed("samples") {
		f.samples = cfg.GetSamples()
	}
	if !flags.Changed("format") {
		f.format = cfg.GetFormat()
	}
	if !flags.Changed("parallel") {
		f.parallel = cfg.Sweep.Parallel
	}
	if !flags.Changed("workers") {
		f.workers = cfg.Sweep.Workers
	}
	if !flags.Changed("fraction") {
		f.fraction = !cfg.Output.Percent
	}
	if display.ShouldOutputJSON(cmd) {
		f.format = am.FormatJSON
	}
	return f
}

func runSweep(cmd *cobra.Command, f sweepFlags) error {
	v := verbosity(cmd)
	if logger.ShouldOutput(v, logger.OutputConfig) {
		fmt.Fprintf(cmd.ErrOrStderr(), "sweep: samples=%d format=%s parallel=%t workers=%d percent=%t\n",
			f.samples, f.format, f.parallel, f.workers, !f.fraction)
	}

	start := time.Now()
	driver := sweep.NewDriver(catalog(), logger.ComponentLogger("sweep"))
	result, err := driver.Sweep(cmd.Context(), sweep.Options{
		Samples:  f.samples,
		Parallel: f.parallel,
		Workers:  f.workers,
	})
	if err != nil {
		return err
	}
	if logger.ShouldOutput(v, logger.OutputTiming) {
		fmt.Fprintf(cmd.ErrOrStderr(), "sweep: %d samples in %s\n", len(result), time.Since(start).Round(time.Microsecond))
	}

	var out io.Writer = cmd.OutOrStdout()
	if f.output != "" {
		file, err := os.Create(f.output)
		if err != nil {
			return errors.Wrapf(err, "failed to create %s", f.output)
		}
		defer file.Close()
		out = file
	}

	if f.format == am.FormatTable {
		err = render.SweepTable(out, driver.Catalog(), result, !f.fraction)
	} else {
		err = render.Write(out, f.format, render.NewChart(driver.Catalog(), result, !f.fraction))
	}
	if err != nil {
		return err
	}

	if f.output != "" && logger.ShouldOutput(v, logger.OutputSummary) {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d samples to %s (%s)\n", len(result), f.output, f.format)
	}
	logger.Infow("sweep written", logger.FieldFormat, f.format, logger.FieldPath, f.output)
	return nil
}

// watchSweep reruns the sweep each time the project am.toml changes, until
// the command is interrupted.
func watchSweep(cmd *cobra.Command, f sweepFlags) error {
	path := am.ConfigFileName
	if files := am.LoadedFiles(); len(files) > 0 {
		path = files[len(files)-1]
	}

	cw, err := am.NewConfigWatcher(path)
	if err != nil {
		return err
	}
	defer cw.Stop()

	cw.OnReload(func(cfg *am.Config) error {
		return runSweep(cmd, f.resolve(cmd, cfg))
	})
	cw.Start()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.ErrOrStderr(), "watching %s (ctrl-c to stop)\n", cw.Path())
	<-ctx.Done()
	return nil
}
