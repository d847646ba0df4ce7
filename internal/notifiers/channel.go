package notifiers

import "context"

// Channel is the delivery capability a Notifier depends on.
// This allows us to swap channels (email, SMS, push) without touching the Notifier.
type Channel interface {
	// Deliver sends a non-empty message through the channel's transport.
	Deliver(ctx context.Context, message string) error
}
