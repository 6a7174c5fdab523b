// Package logger provides the leveled, colored console logging used by
// the gebconf command line tools. The engine packages never log; they
// return errors and leave presentation to this package.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log message.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// Logger writes leveled messages to a single destination.
type Logger struct {
	mu       sync.Mutex
	level    Level
	writer   io.Writer
	noColor  bool
	showTime bool
}

var defaultLogger = &Logger{
	level:    InfoLevel,
	writer:   os.Stdout,
	showTime: true,
}

// SetLevel sets the default logger's level.
func SetLevel(level Level) {
	defaultLogger.mu.Lock()
	defaultLogger.level = level
	defaultLogger.mu.Unlock()
}

// SetNoColor disables color output on the default logger.
func SetNoColor(noColor bool) {
	defaultLogger.mu.Lock()
	defaultLogger.noColor = noColor
	defaultLogger.mu.Unlock()
}

// ParseLevel parses a string log level, defaulting to info.
func ParseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	case "fatal":
		return FatalLevel
	default:
		return InfoLevel
	}
}

// Package-level helpers for the default logger.
func Debug(args ...interface{})                 { defaultLogger.log(DebugLevel, args...) }
func Debugf(format string, args ...interface{}) { defaultLogger.logf(DebugLevel, format, args...) }
func Info(args ...interface{})                  { defaultLogger.log(InfoLevel, args...) }
func Infof(format string, args ...interface{})  { defaultLogger.logf(InfoLevel, format, args...) }
func Warn(args ...interface{})                  { defaultLogger.log(WarnLevel, args...) }
func Warnf(format string, args ...interface{})  { defaultLogger.logf(WarnLevel, format, args...) }
func Error(args ...interface{})                 { defaultLogger.log(ErrorLevel, args...) }
func Errorf(format string, args ...interface{}) { defaultLogger.logf(ErrorLevel, format, args...) }
func Fatal(args ...interface{})                 { defaultLogger.log(FatalLevel, args...) }
func Fatalf(format string, args ...interface{}) { defaultLogger.logf(FatalLevel, format, args...) }

func (l *Logger) log(level Level, args ...interface{}) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	var parts []string
	if l.showTime {
		timestamp := time.Now().Format("15:04:05")
		parts = append(parts, l.paint(colorGray, timestamp))
	}
	levelStr, levelColor := levelString(level)
	parts = append(parts, l.paint(levelColor, levelStr))
	parts = append(parts, fmt.Sprint(args...))
	_, _ = fmt.Fprintln(l.writer, strings.Join(parts, " "))
	l.mu.Unlock()

	if level == FatalLevel {
		os.Exit(1)
	}
}

func (l *Logger) logf(level Level, format string, args ...interface{}) {
	l.log(level, fmt.Sprintf(format, args...))
}

func (l *Logger) paint(color, s string) string {
	if l.noColor {
		return s
	}
	return color + s + colorReset
}

func levelString(level Level) (string, string) {
	switch level {
	case DebugLevel:
		return "DEBUG", colorGray
	case InfoLevel:
		return "INFO ", colorGreen
	case WarnLevel:
		return "WARN ", colorYellow
	case ErrorLevel:
		return "ERROR", colorRed
	case FatalLevel:
		return "FATAL", colorRed + colorBold
	default:
		return "UNKNOWN", colorReset
	}
}
