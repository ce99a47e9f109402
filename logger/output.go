package logger

// Output controls what categories of information are shown at each verbosity level.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed regardless of severity.
//
// Verbosity Levels:
//
//	0 (default) - Results and errors
//	1 (-v)      - + Sweep summaries, band annotations
//	2 (-vv)     - + Timing, resolved configuration
//	3 (-vvv)    - + Raw (unnormalized) weights

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults OutputCategory = iota // Distributions, tables, exported data
	OutputErrors                        // Errors with hints

	// Level 1 (-v) - Informational
	OutputSummary // Sweep summaries, most likely scale, band annotations

	// Level 2 (-vv) - Detailed
	OutputTiming // Operation timing
	OutputConfig // Config values loaded/applied

	// Level 3 (-vvv) - Debug
	OutputWeights // Raw weights before normalization
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults: VerbosityUser,
	OutputErrors:  VerbosityUser,
	OutputSummary: VerbosityInfo,
	OutputTiming:  VerbosityDebug,
	OutputConfig:  VerbosityDebug,
	OutputWeights: VerbosityTrace,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		// Unknown category, default to highest verbosity required
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}
