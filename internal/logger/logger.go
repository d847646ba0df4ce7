// Package logger provides a configured zerolog instance.
package logger

import (
	"github.com/ilindan-dev/notification-dispatch/internal/config"
	"github.com/rs/zerolog"
	"os"
)

// NewLogger creates a new configured instance of zerolog.Logger.
// Output goes to stderr; stdout is reserved for the console channels.
func NewLogger(cfg *config.Config) (*zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Logger.Level)
	if err != nil || cfg.Logger.Level == "" {
		level = zerolog.InfoLevel
	}

	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr}

	logger := zerolog.New(consoleWriter).With().
		Timestamp().
		Str("service", "notification-dispatch").
		Caller().
		Logger().
		Level(level)

	return &logger, nil
}
