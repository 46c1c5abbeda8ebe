package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Logger is the structured logging surface used across the application.
// Every entry carries the name of the component that produced it.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// ParseLevel maps a textual level to a LogLevel. Unknown values yield InfoLevel
// together with an error so the caller can report the bad setting.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "", "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return InfoLevel, fmt.Errorf("invalid log level '%s'", s)
	}
}

func (l LogLevel) zerologLevel() zerolog.Level {
	switch l {
	case DebugLevel:
		return zerolog.DebugLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l LogLevel) String() string {
	return l.zerologLevel().String()
}

// New builds a logger writing to w. format is "json" or "console".
func New(w io.Writer, level LogLevel, format string) *ZerologAdapter {
	if strings.ToLower(format) == "json" {
		return NewZerolog(w, level.zerologLevel())
	}
	return NewZerolog(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}, level.zerologLevel())
}

// Nop discards everything.
func Nop() *ZerologAdapter {
	return &ZerologAdapter{logger: zerolog.Nop()}
}
