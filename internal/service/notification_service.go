package service

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/ilindan-dev/notification-dispatch/internal/domain/model"
	"github.com/ilindan-dev/notification-dispatch/internal/notifiers"
	"github.com/rs/zerolog"
)

// ChannelResolver finds the channel registered for a kind.
type ChannelResolver interface {
	Lookup(kind model.Channel) (notifiers.Channel, error)
	Kinds() []model.Channel
}

// NotificationService routes a message to the requested channel through a Notifier.
type NotificationService struct {
	channels ChannelResolver
	logger   zerolog.Logger
}

func NewNotificationService(channels ChannelResolver, logger *zerolog.Logger) *NotificationService {
	return &NotificationService{
		channels: channels,
		logger:   logger.With().Str("layer", "service").Logger(),
	}
}

// Send delivers message over the channel of the given kind and returns the ID
// used to correlate the send in logs. A fresh Notifier is built per call, so
// each request is bound to exactly one channel.
func (s *NotificationService) Send(ctx context.Context, kind model.Channel, message string) (uuid.UUID, error) {
	id := uuid.New()
	log := s.logger.With().Stringer("notification_id", id).Str("channel", string(kind)).Logger()

	channel, err := s.channels.Lookup(kind)
	if err != nil {
		log.Warn().Err(err).Msg("invalid channel")
		return uuid.Nil, err
	}

	notifier, err := notifiers.New(channel, &log)
	if err != nil {
		log.Error().Err(err).Msg("failed to build notifier")
		return uuid.Nil, fmt.Errorf("failed to build notifier: %w", err)
	}

	if err := notifier.SendNotification(ctx, message); err != nil {
		log.Warn().Err(err).Msg("notification not sent")
		return uuid.Nil, err
	}

	log.Info().Msg("notification dispatched")
	return id, nil
}

// Channels lists the channel kinds that can be used with Send.
func (s *NotificationService) Channels() []model.Channel {
	return s.channels.Kinds()
}
