package notifiers

import (
	"fmt"
	"github.com/ilindan-dev/notification-dispatch/internal/config"
	"github.com/ilindan-dev/notification-dispatch/internal/domain/model"
	"github.com/rs/zerolog"
	"io"
	"sort"
)

// Registry holds one channel instance per enabled channel kind.
// It is read-only after construction.
type Registry struct {
	channels map[model.Channel]Channel
	logger   zerolog.Logger
}

// NewRegistry creates the channels listed in the configuration, all writing to out.
func NewRegistry(cfg *config.Config, out io.Writer, logger *zerolog.Logger) (*Registry, error) {
	log := componentLogger(logger, "registry")
	if out == nil {
		return nil, fmt.Errorf("%w: output sink is required", model.ErrInvalidConfiguration)
	}

	channels := make(map[model.Channel]Channel, len(cfg.Notifiers.Enabled))
	for _, name := range cfg.Notifiers.Enabled {
		kind, err := model.ParseChannel(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", model.ErrInvalidConfiguration, err)
		}

		switch kind {
		case model.ChannelEmail:
			channels[kind] = NewEmailChannel(out, logger)
		case model.ChannelSMS:
			channels[kind] = NewSMSChannel(out, logger)
		case model.ChannelPush:
			channels[kind] = NewPushChannel(out, logger)
		}
		log.Info().Str("channel", string(kind)).Msg("channel enabled")
	}

	return &Registry{
		channels: channels,
		logger:   log,
	}, nil
}

// Lookup returns the channel registered for kind.
func (r *Registry) Lookup(kind model.Channel) (Channel, error) {
	channel, ok := r.channels[kind]
	if !ok {
		r.logger.Warn().Str("channel", string(kind)).Msg("no channel registered")
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownChannel, kind)
	}
	return channel, nil
}

// Kinds returns the registered channel kinds in sorted order.
func (r *Registry) Kinds() []model.Channel {
	kinds := make([]model.Channel, 0, len(r.channels))
	for kind := range r.channels {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
