// Package logging configures the process-wide zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const appName = "gsd-kimi"

// Level maps a -v count to a zerolog level.
func Level(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// Setup configures the global logger: human-readable output on console and
// JSON lines appended to logPath. An empty logPath disables the file. The
// returned closer releases the log file.
func Setup(console io.Writer, verbosity int, logPath string) io.Closer {
	zerolog.SetGlobalLevel(Level(verbosity))

	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
	}}

	var closer io.Closer = nopCloser{}
	var fileErr error
	if logPath != "" {
		f, err := openLogFile(logPath)
		if err == nil {
			writers = append(writers, f)
			closer = f
		}
		fileErr = err
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()
	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", logPath).Msg("Failed to open log file, logging to console only")
	}
	log.Debug().Int("verbosity", verbosity).Str("logFile", logPath).Msg("Logger initialized")
	return closer
}

// DefaultLogPath returns $XDG_STATE_HOME/gsd-kimi/gsd-kimi.log.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, appName, appName+".log")
}

// Get returns a logger tagged with the component name.
func Get(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// Operation logs the start of an operation and returns a function that logs
// its completion with the elapsed time.
func Operation(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Operation started")
	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
