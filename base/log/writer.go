package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// GlobalWriter is the global log writer.
var GlobalWriter *LogWriter

// LogWriter serializes log output to a single destination.
type LogWriter struct {
	writeLock  sync.Mutex
	isTerminal bool
	out        io.Writer
	file       *os.File
}

// NewStderrWriter creates a new log writer that will write to stderr.
// Colored output is only enabled if stderr is a terminal.
func NewStderrWriter() *LogWriter {
	fd := os.Stderr.Fd()
	return &LogWriter{
		out:        colorable.NewColorable(os.Stderr),
		isTerminal: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

// NewWriter creates a new log writer that will write to the given writer.
// Output is never colored.
func NewWriter(w io.Writer) *LogWriter {
	return &LogWriter{
		out: w,
	}
}

// NewFileWriter creates a new log writer that will write to a file. The file path will be <dir>/2006-01-02-15-04-05.log (with current date and time)
func NewFileWriter(dir string) (*LogWriter, error) {
	if err := os.MkdirAll(dir, 0o0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile := fmt.Sprintf("%s.log", time.Now().UTC().Format("2006-01-02-15-04-05"))
	file, err := os.Create(filepath.Join(dir, logFile))
	if err != nil {
		return nil, err
	}
	return &LogWriter{
		out:  file,
		file: file,
	}, nil
}

// Write writes the buffer to the writer.
func (l *LogWriter) Write(buf []byte) (int, error) {
	if l == nil {
		return 0, fmt.Errorf("log writer not initialized")
	}

	l.writeLock.Lock()
	defer l.writeLock.Unlock()

	if l.out == nil {
		// Closed.
		return len(buf), nil
	}
	return l.out.Write(buf)
}

// IsTerminal returns true if the writer writes to a terminal.
func (l *LogWriter) IsTerminal() bool {
	return l != nil && l.isTerminal
}

// Close closes the writer.
func (l *LogWriter) Close() {
	if l == nil {
		return
	}

	l.writeLock.Lock()
	defer l.writeLock.Unlock()

	if l.file != nil {
		_ = l.file.Close()
	}
	l.out = nil
}
