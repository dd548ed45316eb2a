package calculation

import (
	"fmt"
	"io"
)

// Logger is a minimal logging interface for the plan engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// WriterLogger writes level-prefixed lines to W. The CLI uses it for --debug.
type WriterLogger struct {
	W io.Writer
}

func (l WriterLogger) logf(level, format string, args ...any) {
	fmt.Fprintf(l.W, level+" "+format+"\n", args...)
}

func (l WriterLogger) Debugf(format string, args ...any) { l.logf("DEBUG", format, args...) }
func (l WriterLogger) Infof(format string, args ...any)  { l.logf("INFO", format, args...) }
func (l WriterLogger) Warnf(format string, args ...any)  { l.logf("WARN", format, args...) }
func (l WriterLogger) Errorf(format string, args ...any) { l.logf("ERROR", format, args...) }
