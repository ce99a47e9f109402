package am

import (
	"slices"

	"github.com/teranos/tension/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Sweep samples: 0 = default (200), negative = invalid
	if c.Sweep.Samples < 0 {
		return errors.NewInvalidRequestError("sweep.samples must be >= 1, got %d (omit for default %d)", c.Sweep.Samples, DefaultSamples)
	}

	// Sweep workers: 0 = one per CPU, negative = invalid
	if c.Sweep.Workers < 0 {
		return errors.NewInvalidRequestError("sweep.workers must be >= 0, got %d", c.Sweep.Workers)
	}

	if c.Output.Format != "" && !slices.Contains(Formats, c.Output.Format) {
		return errors.WithHintf(
			errors.NewInvalidRequestError("output.format %q is not supported", c.Output.Format),
			"supported formats: %v", Formats)
	}

	return nil
}
