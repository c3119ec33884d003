package app

import (
	"fmt"
	"io"
	"os"
	"time"
)

// DebugLogPath is where -debug writes its log, relative to the working directory.
const DebugLogPath = "./mipmapgen-debug.log"

// Logger records job progress tagged with the component that produced it,
// such as "app" or "input". Both binaries share one Logger per run.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// NoopLogger drops everything. It is the default when -debug is off.
type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// FileLogger writes one timestamped line per entry.
type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

// OpenFileLogger appends to the log file at path. The returned closer
// releases the file.
func OpenFileLogger(path string) (FileLogger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return FileLogger{}, nil, fmt.Errorf("open log %s: %w", path, err)
	}
	return NewFileLogger(f), f, nil
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
