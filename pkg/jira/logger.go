package jira

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Logger is the logging interface consumed by the request pipeline and
// the tool layer. Implementations must be safe for concurrent use.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// NoopLogger discards everything. It is the default when no logger is
// configured.
type NoopLogger struct{}

func (NoopLogger) Debug(msg string, fields map[string]interface{}) {}
func (NoopLogger) Info(msg string, fields map[string]interface{})  {}
func (NoopLogger) Warn(msg string, fields map[string]interface{})  {}
func (NoopLogger) Error(msg string, fields map[string]interface{}) {}

// Log levels in ascending severity.
const (
	LevelDebug = iota
	LevelInfo
	LevelWarn
	LevelError
)

// StderrLogger writes leveled lines to standard error. Stdout is
// reserved for the MCP stdio transport, so nothing may ever log there.
type StderrLogger struct {
	MinLevel int
}

// NewStderrLogger builds a logger from a level name (debug, info, warn,
// error). Unknown names fall back to info.
func NewStderrLogger(level string) *StderrLogger {
	minLevel := LevelInfo

	switch strings.ToLower(level) {
	case "debug":
		minLevel = LevelDebug
	case "info":
		minLevel = LevelInfo
	case "warn", "warning":
		minLevel = LevelWarn
	case "error":
		minLevel = LevelError
	}

	return &StderrLogger{MinLevel: minLevel}
}

func (l *StderrLogger) log(level int, name, msg string, fields map[string]interface{}) {
	if level < l.MinLevel {
		return
	}

	line := fmt.Sprintf("[%s] %s", name, msg)

	if len(fields) > 0 {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		for _, k := range keys {
			line += fmt.Sprintf(" %s=%v", k, fields[k])
		}
	}

	fmt.Fprintln(os.Stderr, line)
}

func (l *StderrLogger) Debug(msg string, fields map[string]interface{}) {
	l.log(LevelDebug, "DEBUG", msg, fields)
}

func (l *StderrLogger) Info(msg string, fields map[string]interface{}) {
	l.log(LevelInfo, "INFO", msg, fields)
}

func (l *StderrLogger) Warn(msg string, fields map[string]interface{}) {
	l.log(LevelWarn, "WARN", msg, fields)
}

func (l *StderrLogger) Error(msg string, fields map[string]interface{}) {
	l.log(LevelError, "ERROR", msg, fields)
}
