package log

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"github.com/tevino/abool"
)

// concept
/*
- Logging function:
  - check if level is active
  - hand the line to the default slog logger synchronously
- Backend:
  - tint handler writing to the GlobalWriter
  - stderr by default, so that command output on stdout stays clean
  - colors only when writing to a terminal
*/

const timeFormat string = "060102 15:04:05.000"

// Severity describes a log level.
type Severity uint32

func (s Severity) toSLogLevel() slog.Level {
	// Convert to slog level.
	switch s {
	case TraceLevel:
		return slog.LevelDebug
	case DebugLevel:
		return slog.LevelDebug
	case InfoLevel:
		return slog.LevelInfo
	case WarningLevel:
		return slog.LevelWarn
	case ErrorLevel:
		return slog.LevelError
	case CriticalLevel:
		return slog.LevelError
	}
	// Failed to convert, return default log level
	return slog.LevelWarn
}

// Log Levels.
const (
	TraceLevel    Severity = 1
	DebugLevel    Severity = 2
	InfoLevel     Severity = 3
	WarningLevel  Severity = 4
	ErrorLevel    Severity = 5
	CriticalLevel Severity = 6
)

var (
	logLevelInt = uint32(InfoLevel)
	logLevel    = &logLevelInt

	started = abool.NewBool(false)
)

// SetLogLevel sets a new log level.
func SetLogLevel(level Severity) {
	atomic.StoreUint32(logLevel, uint32(level))

	setupSLog(level)
}

// Name returns the name of the log level.
func (s Severity) Name() string {
	switch s {
	case TraceLevel:
		return "trace"
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarningLevel:
		return "warning"
	case ErrorLevel:
		return "error"
	case CriticalLevel:
		return "critical"
	default:
		return "none"
	}
}

func (s Severity) String() string {
	switch s {
	case TraceLevel:
		return "TRAC"
	case DebugLevel:
		return "DEBU"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARN"
	case ErrorLevel:
		return "ERRO"
	case CriticalLevel:
		return "CRIT"
	default:
		return "NONE"
	}
}

// ParseLevel returns the level severity of a log level name.
func ParseLevel(level string) Severity {
	switch strings.ToLower(level) {
	case "trace":
		return 1
	case "debug":
		return 2
	case "info":
		return 3
	case "warning", "warn":
		return 4
	case "error":
		return 5
	case "critical":
		return 6
	}
	return 0
}

// Start starts the logging system with the given level, writing to the given
// writer. If the writer is nil, logs are written to stderr.
// Until Start is called, the library logs through the standard slog default.
func Start(level string, w *LogWriter) error {
	if !started.SetToIf(false, true) {
		return nil
	}

	// Parse log level argument.
	initialLogLevel := InfoLevel
	if level != "" {
		initialLogLevel = ParseLevel(level)
		if initialLogLevel == 0 {
			fmt.Fprintf(os.Stderr, "log warning: invalid log level %q, falling back to level info\n", level)
			initialLogLevel = InfoLevel
		}
	}

	// Setup writer.
	if w == nil {
		w = NewStderrWriter()
	}
	GlobalWriter = w

	// Init logging systems.
	SetLogLevel(initialLogLevel)
	return nil
}

// Shutdown closes the log writer. Logging continues to work, but all lines
// written afterwards are dropped by the writer.
func Shutdown() {
	if started.SetToIf(true, false) {
		GlobalWriter.Close()
	}
}
