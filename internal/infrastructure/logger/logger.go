package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// New creates a console logger on stdout
func New(level string) zerolog.Logger {
	return NewWithWriter(level, os.Stdout)
}

// NewWithFile creates a console logger that also appends JSON entries to path
func NewWithFile(level, path string) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		return New(level), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return NewWithWriter(level, os.Stdout, f), f, nil
}

// NewWithWriter creates a logger writing pretty output to console and raw JSON to files
func NewWithWriter(level string, console io.Writer, files ...io.Writer) zerolog.Logger {
	zerolog.SetGlobalLevel(parseLogLevel(level))

	writers := make([]io.Writer, 0, len(files)+1)
	writers = append(writers, zerolog.ConsoleWriter{Out: console})
	writers = append(writers, files...)

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Caller().
		Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// parseLogLevel parses log level string to zerolog.Level
func parseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}
