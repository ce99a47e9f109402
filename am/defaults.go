package am

import (
	"fmt"

	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Sweep defaults
	v.SetDefault("sweep.samples", DefaultSamples)
	v.SetDefault("sweep.parallel", false)
	v.SetDefault("sweep.workers", 0)

	// Output defaults
	v.SetDefault("output.format", FormatTable)
	v.SetDefault("output.percent", true)

	// Log defaults
	v.SetDefault("log.json", false)
}

// BindEnvVars explicitly binds configuration keys to environment variables
func BindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("sweep.samples", "TENSION_SWEEP_SAMPLES")
	_ = v.BindEnv("sweep.parallel", "TENSION_SWEEP_PARALLEL")
	_ = v.BindEnv("sweep.workers", "TENSION_SWEEP_WORKERS")
	_ = v.BindEnv("output.format", "TENSION_OUTPUT_FORMAT")
	_ = v.BindEnv("output.percent", "TENSION_OUTPUT_PERCENT")
	_ = v.BindEnv("log.json", "TENSION_LOG_JSON")
}

// GetSamples returns the sweep sample count (default: 200)
func (c *Config) GetSamples() int {
	if c.Sweep.Samples == 0 {
		return DefaultSamples
	}
	return c.Sweep.Samples
}

// GetFormat returns the output format (default: table)
func (c *Config) GetFormat() string {
	if c.Output.Format == "" {
		return FormatTable
	}
	return c.Output.Format
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Sweep: {Samples: %d, Parallel: %t, Workers: %d}, Output: {Format: %s}}",
		c.Sweep.Samples, c.Sweep.Parallel, c.Sweep.Workers, c.Output.Format)
}
