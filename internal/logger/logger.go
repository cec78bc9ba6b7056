// Package logger provides the leveled, colored output used by the
// consign CLI for status and error reporting.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cast"
)

// Logger writes level-tagged lines to a single destination.
type Logger struct {
	out      io.Writer
	minLevel slog.Level
}

// New returns a logger writing to out at Info level and above.
func New(out io.Writer) *Logger {
	return &Logger{out: out, minLevel: slog.LevelInfo}
}

// std is the default logger used by the package-level helpers.
var std = New(os.Stderr)

// SetVerbose lowers the default logger's threshold to Debug.
func SetVerbose(verbose bool) {
	if verbose {
		std.minLevel = slog.LevelDebug
	} else {
		std.minLevel = slog.LevelInfo
	}
}

// Level tag styles.
var (
	debugTag = color.New(color.Bold, color.FgHiBlack)
	infoTag  = color.New(color.Bold, color.FgWhite)
	warnTag  = color.New(color.Bold, color.FgYellow)
	errorTag = color.New(color.Bold, color.FgRed)
	warnText = color.New(color.FgYellow)
	errText  = color.New(color.FgRed)
)

// Debug logs at debug level; hidden unless verbose.
func Debug(msg string, data ...any) { std.log(slog.LevelDebug, msg, data...) }

// Info logs at info level.
func Info(msg string, data ...any) { std.log(slog.LevelInfo, msg, data...) }

// Warn logs at warn level.
func Warn(msg string, data ...any) { std.log(slog.LevelWarn, msg, data...) }

// Error logs at error level.
func Error(msg string, data ...any) { std.log(slog.LevelError, msg, data...) }

func (l *Logger) log(level slog.Level, msg string, data ...any) {
	if level < l.minLevel {
		return
	}

	var str strings.Builder
	switch level {
	case slog.LevelDebug:
		str.WriteString(debugTag.Sprint("DEBUG "))
		str.WriteString(msg)
	case slog.LevelWarn:
		str.WriteString(warnTag.Sprint("WARN "))
		str.WriteString(warnText.Sprint(msg))
	case slog.LevelError:
		str.WriteString(errorTag.Sprint("ERROR "))
		str.WriteString(errText.Sprint(msg))
	default:
		str.WriteString(infoTag.Sprint("INFO "))
		str.WriteString(msg)
	}

	for _, d := range data {
		str.WriteString(" ")
		str.WriteString(cast.ToString(d))
	}
	str.WriteString("\n")

	fmt.Fprint(l.out, str.String())
}
