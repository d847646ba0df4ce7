package notifiers

import (
	"context"
	"fmt"
	"github.com/rs/zerolog"
	"io"
)

// EmailChannel delivers notifications as email.
// The transport is a console stand-in: one line per message on the sink.
type EmailChannel struct {
	out    io.Writer
	logger zerolog.Logger
}

// NewEmailChannel creates a new instance of EmailChannel that writes to out.
// A nil out falls back to stdout.
func NewEmailChannel(out io.Writer, logger *zerolog.Logger) *EmailChannel {
	return &EmailChannel{
		out:    consoleOr(out),
		logger: componentLogger(logger, "email_channel"),
	}
}

// Deliver implements the Channel interface for email.
func (c *EmailChannel) Deliver(_ context.Context, message string) error {
	if _, err := fmt.Fprintf(c.out, "Sending email: %s\n", message); err != nil {
		c.logger.Error().Err(err).Msg("failed to write email")
		return fmt.Errorf("email channel: %w", err)
	}

	c.logger.Debug().Int("length", len(message)).Msg("email delivered")
	return nil
}
