package logger

import "go.uber.org/zap/zapcore"

// Verbosity level constants for CLI flag counts.
const (
	VerbosityUser  = 0 // No flags: results, warnings, and errors only
	VerbosityInfo  = 1 // -v: + progress, scan summaries
	VerbosityDebug = 2 // -vv: + per-file scan details, trigger decisions
	VerbosityTrace = 3 // -vvv: + per-label context resolution
)

// VerbosityToLevel maps verbosity flags (-v, -vv, ...) to zap log levels.
//
//	0 (none) -> WarnLevel  (errors and warnings only)
//	1 (-v)   -> InfoLevel  (+ informational messages)
//	2+ (-vv) -> DebugLevel (+ debug messages)
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityUser:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// ShouldLogTrace returns true for verbosity >= 3 (-vvv)
func ShouldLogTrace(verbosity int) bool {
	return verbosity >= VerbosityTrace
}
