package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	once   sync.Once
	logger zerolog.Logger
)

// Config holds the configuration for the global logger.
type Config struct {
	Level  string
	Output string // "stdout", "stderr", or a file path
	Pretty bool   // console writer for local development
}

// Init initializes the global logger. Only the first call has any
// effect; later calls are no-ops so subcommands and tests can call it
// freely. On a bad file output the logger falls back to stderr and the
// error is returned.
func Init(cfg Config) error {
	var initErr error

	once.Do(func() {
		level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			level = zerolog.InfoLevel
		}
		zerolog.SetGlobalLevel(level)
		zerolog.TimeFieldFormat = time.RFC3339Nano

		output, err := resolveOutput(cfg.Output)
		if err != nil {
			initErr = err
			output = os.Stderr
		}

		if cfg.Pretty {
			output = zerolog.ConsoleWriter{
				Out:        output,
				TimeFormat: "2006-01-02 15:04:05",
			}
		}

		logger = zerolog.New(output).With().Timestamp().Logger()
		zerolog.DefaultContextLogger = &logger
	})

	return initErr
}

// resolveOutput maps the configured output to a writer, creating the
// log directory when a file path is given.
func resolveOutput(out string) (io.Writer, error) {
	switch out {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	}

	if dir := filepath.Dir(out); dir != "." && dir != string(filepath.Separator) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	file, err := os.OpenFile(out, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// Get returns the global logger instance.
func Get() *zerolog.Logger {
	return &logger
}
