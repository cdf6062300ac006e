package logging

import (
	"io"
	"log"
	"os"
	"strings"
)

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Logger is a small leveled wrapper around the standard library logger.
type Logger struct {
	level Level
	info  *log.Logger
	err   *log.Logger
	debug *log.Logger
}

// New creates a logger filtering messages below the given level.
// Unknown levels fall back to info.
func New(level string) *Logger {
	return &Logger{
		level: parseLevel(level),
		info:  log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime),
		err:   log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime),
		debug: log.New(os.Stdout, "DEBUG: ", log.Ldate|log.Ltime),
	}
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() *Logger {
	return &Logger{
		level: LevelInfo,
		info:  log.New(io.Discard, "", 0),
		err:   log.New(io.Discard, "", 0),
		debug: log.New(io.Discard, "", 0),
	}
}

func parseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l *Logger) Info(format string, v ...any) {
	if l.level == LevelError {
		return
	}
	l.info.Printf(format, v...)
}

func (l *Logger) Error(format string, v ...any) {
	l.err.Printf(format, v...)
}

func (l *Logger) Debug(format string, v ...any) {
	if l.level != LevelDebug {
		return
	}
	l.debug.Printf(format, v...)
}
