package http

import (
	"context"
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ilindan-dev/notification-dispatch/internal/config"
	"github.com/ilindan-dev/notification-dispatch/internal/domain/model"
	"github.com/rs/zerolog"
	"net/http"
)

const statusDispatched = "dispatched"

// NotificationSender is the part of the service layer the handlers use.
type NotificationSender interface {
	Send(ctx context.Context, kind model.Channel, message string) (uuid.UUID, error)
	Channels() []model.Channel
}

type Handlers struct {
	service        NotificationSender
	defaultChannel string
	logger         zerolog.Logger
}

// NewHandlers creates a new instance of Handlers.
func NewHandlers(cfg *config.Config, service NotificationSender, logger *zerolog.Logger) *Handlers {
	return &Handlers{
		service:        service,
		defaultChannel: cfg.Notifiers.Default,
		logger:         logger.With().Str("layer", "http_handler").Logger(),
	}
}

// RegisterRoutes sets up the routing for the notification API.
func (h *Handlers) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.POST("/notifications", h.SendNotification)
		api.GET("/channels", h.ListChannels)
	}
}

// SendNotification handles the HTTP request for sending a message.
func (h *Handlers) SendNotification(c *gin.Context) {
	var req SendNotificationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn().Err(err).Msg("invalid request body")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	name := req.Channel
	if name == "" {
		name = h.defaultChannel
	}
	kind, err := model.ParseChannel(name)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	id, err := h.service.Send(c.Request.Context(), kind, *req.Message)
	if err != nil {
		if errors.Is(err, model.ErrInvalidArgument) || errors.Is(err, model.ErrUnknownChannel) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		h.logger.Error().Err(err).Str("channel", string(kind)).Msg("failed to send notification")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to send notification"})
		return
	}

	c.JSON(http.StatusAccepted, NotificationResponse{
		ID:      id,
		Channel: string(kind),
		Status:  statusDispatched,
	})
}

// ListChannels handles the HTTP request for the enabled channels.
func (h *Handlers) ListChannels(c *gin.Context) {
	kinds := h.service.Channels()
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, string(k))
	}
	c.JSON(http.StatusOK, ChannelsResponse{Channels: names})
}
