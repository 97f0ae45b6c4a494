package log

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"
)

var (
	warnLogLines = new(uint64)
	errLogLines  = new(uint64)
	critLogLines = new(uint64)
)

func log(level Severity, msg string) {
	logger := slog.Default()
	slogLevel := level.toSLogLevel()
	if !logger.Enabled(context.Background(), slogLevel) {
		return
	}

	// Skip runtime.Callers, log and the exported logging function.
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	record := slog.NewRecord(time.Now(), slogLevel, msg, pcs[0])
	if level == TraceLevel || level == CriticalLevel {
		record.AddAttrs(slog.String("severity", level.Name()))
	}
	_ = logger.Handler().Handle(context.Background(), record)
}

func fastcheck(level Severity) bool {
	return uint32(level) >= atomic.LoadUint32(logLevel)
}

// Trace is used to log tiny steps.
func Trace(msg string) {
	if fastcheck(TraceLevel) {
		log(TraceLevel, msg)
	}
}

// Tracef is used to log tiny steps.
func Tracef(format string, things ...any) {
	if fastcheck(TraceLevel) {
		log(TraceLevel, fmt.Sprintf(format, things...))
	}
}

// Debug is used to log minor errors or unexpected events. These occurrences are usually not worth mentioning in itself, but they might hint at a bigger problem.
func Debug(msg string) {
	if fastcheck(DebugLevel) {
		log(DebugLevel, msg)
	}
}

// Debugf is used to log minor errors or unexpected events. These occurrences are usually not worth mentioning in itself, but they might hint at a bigger problem.
func Debugf(format string, things ...any) {
	if fastcheck(DebugLevel) {
		log(DebugLevel, fmt.Sprintf(format, things...))
	}
}

// Info is used to log mildly significant events. Should be used to inform about somewhat bigger or user affecting events that happen.
func Info(msg string) {
	if fastcheck(InfoLevel) {
		log(InfoLevel, msg)
	}
}

// Infof is used to log mildly significant events. Should be used to inform about somewhat bigger or user affecting events that happen.
func Infof(format string, things ...any) {
	if fastcheck(InfoLevel) {
		log(InfoLevel, fmt.Sprintf(format, things...))
	}
}

// Warning is used to log (potentially) bad events, but nothing broke (even a little) and there is no need to panic yet.
func Warning(msg string) {
	atomic.AddUint64(warnLogLines, 1)
	if fastcheck(WarningLevel) {
		log(WarningLevel, msg)
	}
}

// Warningf is used to log (potentially) bad events, but nothing broke (even a little) and there is no need to panic yet.
func Warningf(format string, things ...any) {
	atomic.AddUint64(warnLogLines, 1)
	if fastcheck(WarningLevel) {
		log(WarningLevel, fmt.Sprintf(format, things...))
	}
}

// Error is used to log errors that break or impair functionality. The task/process may have to be aborted and tried again later. The system is still operational. Maybe User/Admin should be informed.
func Error(msg string) {
	atomic.AddUint64(errLogLines, 1)
	if fastcheck(ErrorLevel) {
		log(ErrorLevel, msg)
	}
}

// Errorf is used to log errors that break or impair functionality. The task/process may have to be aborted and tried again later. The system is still operational.
func Errorf(format string, things ...any) {
	atomic.AddUint64(errLogLines, 1)
	if fastcheck(ErrorLevel) {
		log(ErrorLevel, fmt.Sprintf(format, things...))
	}
}

// Critical is used to log events that completely break the system. Operation cannot continue. User/Admin must be informed.
func Critical(msg string) {
	atomic.AddUint64(critLogLines, 1)
	if fastcheck(CriticalLevel) {
		log(CriticalLevel, msg)
	}
}

// Criticalf is used to log events that completely break the system. Operation cannot continue. User/Admin must be informed.
func Criticalf(format string, things ...any) {
	atomic.AddUint64(critLogLines, 1)
	if fastcheck(CriticalLevel) {
		log(CriticalLevel, fmt.Sprintf(format, things...))
	}
}

// TotalWarningLogLines returns the total amount of warning log lines since
// start of the program.
func TotalWarningLogLines() uint64 {
	return atomic.LoadUint64(warnLogLines)
}

// TotalErrorLogLines returns the total amount of error log lines since start
// of the program.
func TotalErrorLogLines() uint64 {
	return atomic.LoadUint64(errLogLines)
}

// TotalCriticalLogLines returns the total amount of critical log lines since
// start of the program.
func TotalCriticalLogLines() uint64 {
	return atomic.LoadUint64(critLogLines)
}
