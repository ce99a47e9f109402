// Package am loads tension's configuration ("I am").
//
// Sources, lowest precedence first: built-in defaults, /etc/tension/am.toml,
// ~/.tension/am.toml, the nearest ./am.toml walking up from the working
// directory, TENSION_* environment variables. Command-line flags override
// all of them at the call site.
package am

// Config represents the tension configuration
type Config struct {
	Sweep  SweepConfig  `mapstructure:"sweep" json:"sweep" yaml:"sweep" toml:"sweep"`
	Output OutputConfig `mapstructure:"output" json:"output" yaml:"output" toml:"output"`
	Log    LogConfig    `mapstructure:"log" json:"log" yaml:"log" toml:"log"`
}

// SweepConfig configures the tension sweep
type SweepConfig struct {
	Samples  int  `mapstructure:"samples" json:"samples" yaml:"samples" toml:"samples"`      // Grid points over [0,1] (default: 200)
	Parallel bool `mapstructure:"parallel" json:"parallel" yaml:"parallel" toml:"parallel"` // Evaluate the grid concurrently
	Workers  int  `mapstructure:"workers" json:"workers" yaml:"workers" toml:"workers"`      // 0 = one per CPU
}

// OutputConfig configures how results are written
type OutputConfig struct {
	Format  string `mapstructure:"format" json:"format" yaml:"format" toml:"format"`     // table, csv, json, yaml, toml
	Percent bool   `mapstructure:"percent" json:"percent" yaml:"percent" toml:"percent"` // Scale probabilities to 0-100
}

// LogConfig configures logging
type LogConfig struct {
	JSON bool `mapstructure:"json" json:"json" yaml:"json" toml:"json"` // Structured JSON logs on stderr
}

// Output formats
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTOML  = "toml"
)

// Formats lists every supported output format.
var Formats = []string{FormatTable, FormatCSV, FormatJSON, FormatYAML, FormatTOML}

// DefaultSamples is enough points for a smooth chart line.
const DefaultSamples = 200

const (
	ConfigFileName = "am.toml"
	EnvPrefix      = "TENSION"
)
