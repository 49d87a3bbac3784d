package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Logger prints colored status lines to stderr
type Logger struct {
	out     io.Writer
	verbose bool
}

// NewLogger creates a new Logger; debug lines are only printed when verbose is set
func NewLogger(verbose bool) *Logger {
	return &Logger{out: color.Error, verbose: verbose}
}

// SetOutput redirects the logger
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// Debugf prints a dimmed line in verbose mode
func (l *Logger) Debugf(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.print(color.New(color.FgHiBlack), "debug: ", format, args...)
}

// Infof prints an informational line
func (l *Logger) Infof(format string, args ...any) {
	l.print(color.New(color.FgCyan), "", format, args...)
}

// Warnf prints a warning
func (l *Logger) Warnf(format string, args ...any) {
	l.print(color.New(color.FgYellow), "warning: ", format, args...)
}

// Errorf prints an error
func (l *Logger) Errorf(format string, args ...any) {
	l.print(color.New(color.FgRed), "error: ", format, args...)
}

func (l *Logger) print(c *color.Color, prefix, format string, args ...any) {
	c.Fprintln(l.out, prefix+fmt.Sprintf(format, args...))
}
