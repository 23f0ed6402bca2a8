// Package logging provides leveled console and file logging for tubegrab.
package logging

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Level is the active debug verbosity (0-3). D calls above this level
// are dropped.
var Level int

var (
	logger  = zerolog.New(consoleWriter()).With().Timestamp().Logger()
	logFile *os.File
)

func consoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
}

// Setup directs logs to the console and the program log file.
func Setup(logFilePath string, level int) error {
	Level = level

	f, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %q: %w", logFilePath, err)
	}
	logFile = f

	logger = zerolog.New(zerolog.MultiLevelWriter(consoleWriter(), f)).
		With().Timestamp().Logger()
	return nil
}

// Close flushes and closes the log file, if one was opened.
func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// D logs a debug message at the given verbosity level.
func D(l int, format string, args ...any) {
	if l > Level {
		return
	}
	logger.Debug().Msgf(format, args...)
}

// I logs an informational message.
func I(format string, args ...any) {
	logger.Info().Msgf(format, args...)
}

// W logs a warning.
func W(format string, args ...any) {
	logger.Warn().Msgf(format, args...)
}

// E logs an error.
func E(format string, args ...any) {
	logger.Error().Msgf(format, args...)
}

// S logs a success message.
func S(format string, args ...any) {
	logger.Info().Str("result", "success").Msgf(format, args...)
}
