package notifiers

import (
	"context"
	"fmt"
	"github.com/ilindan-dev/notification-dispatch/internal/domain/model"
	"github.com/rs/zerolog"
	"reflect"
)

// Notifier validates messages and hands them to exactly one Channel.
// The channel is bound at construction and never changes; build a new
// Notifier to switch channels. A Notifier is safe for concurrent use.
type Notifier struct {
	channel Channel
	logger  zerolog.Logger
}

// New creates a Notifier bound to channel. It fails with
// model.ErrInvalidConfiguration when channel is nil, including a nil pointer
// stored in the interface.
func New(channel Channel, logger *zerolog.Logger) (*Notifier, error) {
	if isNil(channel) {
		return nil, fmt.Errorf("%w: channel is required", model.ErrInvalidConfiguration)
	}

	return &Notifier{
		channel: channel,
		logger:  componentLogger(logger, "notifier"),
	}, nil
}

// SendNotification delivers message through the bound channel exactly once.
// An empty message fails with model.ErrInvalidArgument before the channel is
// touched. Whitespace-only messages are passed through unchanged.
// Errors are returned to the caller, which decides whether to log them.
func (n *Notifier) SendNotification(ctx context.Context, message string) error {
	if message == "" {
		return fmt.Errorf("%w: message cannot be empty", model.ErrInvalidArgument)
	}

	if err := n.channel.Deliver(ctx, message); err != nil {
		return fmt.Errorf("failed to deliver notification: %w", err)
	}

	n.logger.Debug().Msg("notification handed to channel")
	return nil
}

func isNil(channel Channel) bool {
	if channel == nil {
		return true
	}
	v := reflect.ValueOf(channel)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// componentLogger derives a child logger, tolerating a nil parent.
func componentLogger(logger *zerolog.Logger, component string) zerolog.Logger {
	if logger == nil {
		return zerolog.Nop()
	}
	return logger.With().Str("component", component).Logger()
}
