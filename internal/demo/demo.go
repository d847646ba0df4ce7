// Package demo runs the fixed notification scenarios shown by cmd/demo.
package demo

import (
	"context"
	"fmt"
	"github.com/ilindan-dev/notification-dispatch/internal/notifiers"
	"github.com/rs/zerolog"
	"io"
)

type scenario struct {
	heading string
	channel func() notifiers.Channel
	message string
}

// Runner sends one message through each stub channel, swapping channels by
// building a new Notifier for every scenario.
type Runner struct {
	out    io.Writer
	logger *zerolog.Logger
}

// NewRunner creates a Runner that prints the banner, headings and channel output to out.
func NewRunner(out io.Writer, logger *zerolog.Logger) *Runner {
	return &Runner{out: out, logger: logger}
}

// Run executes the three scenarios in order and stops at the first failure.
func (r *Runner) Run(ctx context.Context) error {
	scenarios := []scenario{
		{
			heading: "Sending with Email Service:",
			channel: func() notifiers.Channel { return notifiers.NewEmailChannel(r.out, r.logger) },
			message: "Your order #123 has shipped.",
		},
		{
			heading: "Sending with SMS Service:",
			channel: func() notifiers.Channel { return notifiers.NewSMSChannel(r.out, r.logger) },
			message: "Your package will arrive tomorrow.",
		},
		{
			heading: "Sending with Push Notification Service:",
			channel: func() notifiers.Channel { return notifiers.NewPushChannel(r.out, r.logger) },
			message: "Your driver is nearby.",
		},
	}

	if _, err := fmt.Fprint(r.out, "Notification System Demo\n------------------------\n"); err != nil {
		return err
	}

	for _, s := range scenarios {
		notifier, err := notifiers.New(s.channel(), r.logger)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(r.out, "\n%s\n", s.heading); err != nil {
			return err
		}
		if err := notifier.SendNotification(ctx, s.message); err != nil {
			return fmt.Errorf("demo: %s: %w", s.heading, err)
		}
	}

	return nil
}
