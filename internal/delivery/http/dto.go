package http

import (
	"github.com/google/uuid"
)

// SendNotificationRequest defines the structure for a send request.
// Message is a pointer so `binding:"required"` rejects an absent or null field
// while still letting "" through to the notifier, which rejects it.
type SendNotificationRequest struct {
	Channel string  `json:"channel"`
	Message *string `json:"message" binding:"required"`
}

// NotificationResponse is returned once a message has been handed to a channel.
type NotificationResponse struct {
	ID      uuid.UUID `json:"id"`
	Channel string    `json:"channel"`
	Status  string    `json:"status"`
}

// ChannelsResponse lists the channels the server can send through.
type ChannelsResponse struct {
	Channels []string `json:"channels"`
}

// ErrorResponse defines a standard structure for API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}
