package sweep

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/teranos/tension/logger"
	"github.com/teranos/tension/scale"
	"go.uber.org/zap"
)

// Options controls how a Driver evaluates a sweep.
type Options struct {
	Samples  int
	Parallel bool
	Workers  int
}

// Driver runs sweeps and logs each run under its own run id.
type Driver struct {
	catalog scale.Catalog
	log     *zap.SugaredLogger
}

// NewDriver creates a driver for c. A nil log uses the "sweep" component logger.
func NewDriver(c scale.Catalog, log *zap.SugaredLogger) *Driver {
	if log == nil {
		log = logger.ComponentLogger("sweep")
	}
	return &Driver{catalog: c, log: log}
}

// Catalog returns the catalog the driver sweeps.
func (d *Driver) Catalog() scale.Catalog { return d.catalog }

// Sweep evaluates the catalog over Grid(opts.Samples).
func (d *Driver) Sweep(ctx context.Context, opts Options) ([]Sample, error) {
	runID := uuid.NewString()
	log := logger.ChildLogger(d.log, logger.FieldRunID, runID)
	ctx = logger.WithLogger(logger.WithRunID(ctx, runID), d.log)

	log.Debugw("sweep starting",
		logger.FieldSamples, opts.Samples,
		logger.FieldCatalog, d.catalog.Len(),
		"parallel", opts.Parallel,
		logger.FieldWorkers, opts.Workers)

	start := time.Now()
	var (
		samples []Sample
		err     error
	)
	if opts.Parallel {
		samples, err = RunParallel(ctx, d.catalog, opts.Samples, opts.Workers)
	} else {
		samples, err = Run(d.catalog, opts.Samples)
	}
	if err != nil {
		log.Debugw("sweep failed", logger.FieldError, err)
		return nil, err
	}

	log.Infow("sweep complete",
		logger.FieldSamples, len(samples),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return samples, nil
}
