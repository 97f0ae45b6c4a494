package log

import (
	"log/slog"

	"github.com/lmittmann/tint"
)

func setupSLog(level Severity) {
	handlerLogLevel := level.toSLogLevel()

	writer := GlobalWriter
	if writer == nil {
		writer = NewStderrWriter()
		GlobalWriter = writer
	}

	logHandler := tint.NewHandler(writer, &tint.Options{
		AddSource:  level <= DebugLevel,
		Level:      handlerLogLevel,
		TimeFormat: timeFormat,
		NoColor:    !writer.IsTerminal(),
	})

	// Set as default logger.
	slog.SetDefault(slog.New(logHandler))
	// Set actual log level.
	slog.SetLogLoggerLevel(handlerLogLevel)
}
