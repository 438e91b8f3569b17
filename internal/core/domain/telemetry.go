package domain

// BuildOutcome reports how a cell's shared library was obtained.
type BuildOutcome string

const (
	// OutcomeCached means an existing artifact was reused without invoking the build tool.
	OutcomeCached BuildOutcome = "cached"
	// OutcomeBuilt means the build tool ran and produced the artifact.
	OutcomeBuilt BuildOutcome = "built"
)

// String returns the outcome name.
func (o BuildOutcome) String() string {
	return string(o)
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
