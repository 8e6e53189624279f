// Package logx is the process-wide logger. It wraps pterm's structured
// logger so every binary shares one format and level.
package logx

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/pterm/pterm"
)

// Level is the minimum severity that gets written
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelDisabled
)

// Format selects the output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var current atomic.Pointer[pterm.Logger]

func init() {
	l := pterm.DefaultLogger.WithLevel(pterm.LogLevelInfo).WithWriter(os.Stderr)
	current.Store(l)
}

func logger() *pterm.Logger {
	return current.Load()
}

// SetLevel changes the minimum level
func SetLevel(level Level) {
	current.Store(logger().WithLevel(toPterm(level)))
}

// SetFormat switches between the colorful text formatter and JSON lines
func SetFormat(format Format) {
	switch format {
	case FormatJSON:
		current.Store(logger().WithFormatter(pterm.LogFormatterJSON))
	default:
		current.Store(logger().WithFormatter(pterm.LogFormatterColorful))
	}
}

// SetOutput redirects log output
func SetOutput(w io.Writer) {
	current.Store(logger().WithWriter(w))
}

// ParseLevel maps a config string ("debug", "info", ...) to a Level.
// Unknown values fall back to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "trace":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "off", "disabled", "none":
		return LevelDisabled
	default:
		return LevelInfo
	}
}

func toPterm(level Level) pterm.LogLevel {
	switch level {
	case LevelDebug:
		return pterm.LogLevelDebug
	case LevelWarn:
		return pterm.LogLevelWarn
	case LevelError:
		return pterm.LogLevelError
	case LevelDisabled:
		return pterm.LogLevelDisabled
	default:
		return pterm.LogLevelInfo
	}
}

// args turns alternating key/value pairs into pterm arguments
func args(kv []any) [][]pterm.LoggerArgument {
	if len(kv) == 0 {
		return nil
	}
	return [][]pterm.LoggerArgument{logger().Args(kv...)}
}

// Debug logs msg with optional key/value pairs
func Debug(msg string, kv ...any) { logger().Debug(msg, args(kv)...) }

// Info logs msg with optional key/value pairs
func Info(msg string, kv ...any) { logger().Info(msg, args(kv)...) }

// Warn logs msg with optional key/value pairs
func Warn(msg string, kv ...any) { logger().Warn(msg, args(kv)...) }

// Error logs msg with optional key/value pairs
func Error(msg string, kv ...any) { logger().Error(msg, args(kv)...) }

// Fatal logs msg and exits with status 1
func Fatal(msg string, kv ...any) {
	logger().Error(msg, args(kv)...)
	os.Exit(1)
}

func Debugf(format string, a ...any) { logger().Debug(fmt.Sprintf(format, a...)) }
func Infof(format string, a ...any)  { logger().Info(fmt.Sprintf(format, a...)) }
func Warnf(format string, a ...any)  { logger().Warn(fmt.Sprintf(format, a...)) }
func Errorf(format string, a ...any) { logger().Error(fmt.Sprintf(format, a...)) }

func Fatalf(format string, a ...any) {
	logger().Error(fmt.Sprintf(format, a...))
	os.Exit(1)
}
