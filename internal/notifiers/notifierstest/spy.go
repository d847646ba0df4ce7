// Package notifierstest provides test doubles for the notifiers package.
package notifierstest

import (
	"context"
	"sync"
)

// SpyChannel records the messages it is asked to deliver instead of sending them.
type SpyChannel struct {
	mu       sync.Mutex
	calls    int
	last     string
	messages []string
	err      error
}

// NewSpyChannel creates a SpyChannel that always succeeds.
func NewSpyChannel() *SpyChannel {
	return &SpyChannel{}
}

// NewFailingSpyChannel creates a SpyChannel that records the call and returns err.
func NewFailingSpyChannel(err error) *SpyChannel {
	return &SpyChannel{err: err}
}

// Deliver implements notifiers.Channel.
func (s *SpyChannel) Deliver(_ context.Context, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	s.last = message
	s.messages = append(s.messages, message)
	return s.err
}

// Calls returns how many times Deliver was invoked.
func (s *SpyChannel) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// LastMessage returns the most recent message, or "" if none was delivered.
func (s *SpyChannel) LastMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Messages returns a copy of every message delivered so far, in order.
func (s *SpyChannel) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.messages...)
}
