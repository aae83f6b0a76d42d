// Package logger provides the leveled console logger used by the rename and
// annotation commands.
//
// Output is timestamped and thread-safe. Color is enabled automatically when
// the writer is a terminal and disabled otherwise (or via NO_COLOR), so piped
// output stays clean for scripting.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Log levels, lowest to highest severity.
const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

// ConsoleLogger writes timestamped, level-filtered messages to a writer.
// A nil writer silently discards everything, which keeps library call sites
// free of nil checks.
type ConsoleLogger struct {
	writer io.Writer
	level  int
	mutex  sync.Mutex

	warnColor    *color.Color
	errorColor   *color.Color
	successColor *color.Color
}

// NewConsoleLogger creates a ConsoleLogger writing to w at the given level.
// Valid levels are "debug", "info", "warn" and "error" (case-insensitive);
// anything else, including empty, falls back to "info".
func NewConsoleLogger(w io.Writer, level string) *ConsoleLogger {
	cl := &ConsoleLogger{
		writer:       w,
		level:        parseLevel(level),
		warnColor:    color.New(color.FgYellow),
		errorColor:   color.New(color.FgRed),
		successColor: color.New(color.FgGreen),
	}
	if !writerIsTerminal(w) {
		cl.warnColor.DisableColor()
		cl.errorColor.DisableColor()
		cl.successColor.DisableColor()
	}
	return cl
}

// writerIsTerminal reports whether w is a TTY that should receive color.
// color.NoColor already folds in the NO_COLOR convention.
func writerIsTerminal(w io.Writer) bool {
	if color.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func parseLevel(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// Debug logs diagnostic detail shown only at debug level.
func (cl *ConsoleLogger) Debug(format string, args ...interface{}) {
	cl.log(levelDebug, nil, format, args...)
}

// Info logs normal progress messages.
func (cl *ConsoleLogger) Info(format string, args ...interface{}) {
	cl.log(levelInfo, nil, format, args...)
}

// Success logs a completed-milestone message in green.
func (cl *ConsoleLogger) Success(format string, args ...interface{}) {
	cl.log(levelInfo, cl.successColor, format, args...)
}

// Warn logs recoverable problems in yellow.
func (cl *ConsoleLogger) Warn(format string, args ...interface{}) {
	cl.log(levelWarn, cl.warnColor, format, args...)
}

// Error logs failures in red.
func (cl *ConsoleLogger) Error(format string, args ...interface{}) {
	cl.log(levelError, cl.errorColor, format, args...)
}

// Path prints a bare destination path with no timestamp or level prefix.
// Verbose mode reports every written file this way, one path per line, so
// the output can be piped straight into other tools.
func (cl *ConsoleLogger) Path(path string) {
	if cl == nil || cl.writer == nil {
		return
	}
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	fmt.Fprintln(cl.writer, path)
}

func (cl *ConsoleLogger) log(level int, c *color.Color, format string, args ...interface{}) {
	if cl == nil || cl.writer == nil || level < cl.level {
		return
	}

	message := fmt.Sprintf(format, args...)
	if c != nil {
		message = c.Sprint(message)
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	fmt.Fprintf(cl.writer, "[%s] %s\n", time.Now().Format("15:04:05"), message)
}
