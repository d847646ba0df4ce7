package notifiers

import (
	"context"
	"fmt"
	"github.com/rs/zerolog"
	"io"
)

// PushChannel delivers notifications as mobile push notifications.
type PushChannel struct {
	out    io.Writer
	logger zerolog.Logger
}

// NewPushChannel creates a new instance of PushChannel that writes to out.
// A nil out falls back to stdout.
func NewPushChannel(out io.Writer, logger *zerolog.Logger) *PushChannel {
	return &PushChannel{
		out:    consoleOr(out),
		logger: componentLogger(logger, "push_channel"),
	}
}

// Deliver implements the Channel interface for push notifications.
func (c *PushChannel) Deliver(_ context.Context, message string) error {
	if _, err := fmt.Fprintf(c.out, "Sending push notification: %s\n", message); err != nil {
		c.logger.Error().Err(err).Msg("failed to write push notification")
		return fmt.Errorf("push channel: %w", err)
	}

	c.logger.Debug().Int("length", len(message)).Msg("push notification delivered")
	return nil
}
