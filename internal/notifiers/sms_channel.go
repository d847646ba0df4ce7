package notifiers

import (
	"context"
	"fmt"
	"github.com/rs/zerolog"
	"io"
)

// SMSChannel delivers notifications as text messages.
type SMSChannel struct {
	out    io.Writer
	logger zerolog.Logger
}

// NewSMSChannel creates a new instance of SMSChannel that writes to out.
// A nil out falls back to stdout.
func NewSMSChannel(out io.Writer, logger *zerolog.Logger) *SMSChannel {
	return &SMSChannel{
		out:    consoleOr(out),
		logger: componentLogger(logger, "sms_channel"),
	}
}

// Deliver implements the Channel interface for SMS.
func (c *SMSChannel) Deliver(_ context.Context, message string) error {
	if _, err := fmt.Fprintf(c.out, "Sending SMS: %s\n", message); err != nil {
		c.logger.Error().Err(err).Msg("failed to write sms")
		return fmt.Errorf("sms channel: %w", err)
	}

	c.logger.Debug().Int("length", len(message)).Msg("sms delivered")
	return nil
}
