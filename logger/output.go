package logger

// Output controls what categories of information are shown at each verbosity level.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed regardless of severity.
//
// Verbosity Levels:
//
//	0 (default) - User-facing output only: results, errors with hints, final status
//	1 (-v)      - + Progress, startup info, operation summaries
//	2 (-vv)     - + Query details, timing, config loaded
//	3 (-vvv)    - + Watch events, internal flow
//	4 (-vvvv)   - + Full document dumps

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults    OutputCategory = iota // Query results, command output
	OutputErrors                           // Errors with hints and resolution steps
	OutputUserStatus                       // Final success/failure status

	// Level 1 (-v) - Informational
	OutputProgress      // Progress indicators (e.g., "Imported 50/100 regions")
	OutputStartup       // Startup banners, config summary
	OutputOperationInfo // High-level operation summaries

	// Level 2 (-vv) - Detailed
	OutputQueries // Query shapes and candidate counts
	OutputTiming  // Operation timing (e.g., "query took 42ms")
	OutputConfig  // Config values loaded/applied

	// Level 3 (-vvv) - Debug
	OutputWatchEvents // Filesystem watch events and debounce decisions
	OutputInternalOp  // Internal operation flow

	// Level 4 (-vvvv) - Full dump
	OutputDataDump // Full document/region contents
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults:    VerbosityUser,
	OutputErrors:     VerbosityUser,
	OutputUserStatus: VerbosityUser,

	OutputProgress:      VerbosityInfo,
	OutputStartup:       VerbosityInfo,
	OutputOperationInfo: VerbosityInfo,

	OutputQueries: VerbosityDebug,
	OutputTiming:  VerbosityDebug,
	OutputConfig:  VerbosityDebug,

	OutputWatchEvents: VerbosityTrace,
	OutputInternalOp:  VerbosityTrace,

	OutputDataDump: VerbosityAll,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		// Unknown category, default to highest verbosity required
		return verbosity >= VerbosityAll
	}
	return verbosity >= minLevel
}

// categoryNames provides human-readable names for output categories
var categoryNames = map[OutputCategory]string{
	OutputResults:       "results",
	OutputErrors:        "errors",
	OutputUserStatus:    "status",
	OutputProgress:      "progress",
	OutputStartup:       "startup",
	OutputOperationInfo: "operation-info",
	OutputQueries:       "queries",
	OutputTiming:        "timing",
	OutputConfig:        "config",
	OutputWatchEvents:   "watch-events",
	OutputInternalOp:    "internal",
	OutputDataDump:      "data-dump",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}

// VerbosityDescription returns a description of what's shown at each level
func VerbosityDescription(verbosity int) string {
	switch verbosity {
	case VerbosityUser:
		return "results and errors only"
	case VerbosityInfo:
		return "results, errors, progress, and status"
	case VerbosityDebug:
		return "above + queries, timing, config details"
	case VerbosityTrace:
		return "above + watch events and internal flow"
	case VerbosityAll:
		return "full output including document dumps"
	default:
		if verbosity > VerbosityAll {
			return "maximum verbosity"
		}
		return "unknown verbosity level"
	}
}
