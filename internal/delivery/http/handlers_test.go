package http

import (
	"bytes"
	"encoding/json"
	"github.com/gin-gonic/gin"
	"github.com/ilindan-dev/notification-dispatch/internal/config"
	"github.com/ilindan-dev/notification-dispatch/internal/domain/model"
	"github.com/ilindan-dev/notification-dispatch/internal/notifiers"
	"github.com/ilindan-dev/notification-dispatch/internal/notifiers/notifierstest"
	"github.com/ilindan-dev/notification-dispatch/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
)

type spyResolver struct {
	spies map[model.Channel]*notifierstest.SpyChannel
}

func (r *spyResolver) Lookup(kind model.Channel) (notifiers.Channel, error) {
	spy, ok := r.spies[kind]
	if !ok {
		return nil, model.ErrUnknownChannel
	}
	return spy, nil
}

func (r *spyResolver) Kinds() []model.Channel {
	return []model.Channel{model.ChannelEmail, model.ChannelSMS}
}

func setupRouter(t *testing.T) (*gin.Engine, *spyResolver) {
	t.Helper()

	logger := zerolog.Nop()
	cfg := &config.Config{
		HTTP:      config.HTTPConfig{GinMode: gin.TestMode},
		Notifiers: config.NotifiersConfig{Default: "email"},
	}
	resolver := &spyResolver{spies: map[model.Channel]*notifierstest.SpyChannel{
		model.ChannelEmail: notifierstest.NewSpyChannel(),
		model.ChannelSMS:   notifierstest.NewSpyChannel(),
	}}
	svc := service.NewNotificationService(resolver, &logger)
	return NewRouter(cfg, NewHandlers(cfg, svc, &logger), &logger), resolver
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSendNotification_Success(t *testing.T) {
	router, resolver := setupRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/notifications",
		`{"channel":"sms","message":"Your driver is nearby."}`)

	require.Equal(t, http.StatusAccepted, w.Code)

	var resp NotificationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "sms", resp.Channel)
	assert.Equal(t, statusDispatched, resp.Status)
	assert.NotEmpty(t, resp.ID)

	spy := resolver.spies[model.ChannelSMS]
	assert.Equal(t, 1, spy.Calls())
	assert.Equal(t, "Your driver is nearby.", spy.LastMessage())
}

func TestSendNotification_DefaultChannel(t *testing.T) {
	router, resolver := setupRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/notifications", `{"message":"hi"}`)

	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "hi", resolver.spies[model.ChannelEmail].LastMessage())
}

func TestSendNotification_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"absent message", `{"channel":"email"}`},
		{"null message", `{"channel":"email","message":null}`},
		{"empty message", `{"channel":"email","message":""}`},
		{"unknown channel", `{"channel":"fax","message":"hi"}`},
		{"disabled channel", `{"channel":"push","message":"hi"}`},
		{"malformed json", `{"channel":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, resolver := setupRouter(t)

			w := doRequest(router, http.MethodPost, "/api/v1/notifications", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
			for _, spy := range resolver.spies {
				assert.Zero(t, spy.Calls())
			}
		})
	}
}

func TestListChannels(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/channels", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp ChannelsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"email", "sms"}, resp.Channels)
}

func TestHealth(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestSendNotification_MessageValidationLayer(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"absent field fails binding", `{"channel":"email"}`, "'required' tag"},
		{"empty string reaches notifier", `{"channel":"email","message":""}`, model.ErrInvalidArgument.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, resolver := setupRouter(t)

			w := doRequest(router, http.MethodPost, "/api/v1/notifications", tt.body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Contains(t, resp.Error, tt.wantErr)
			assert.Zero(t, resolver.spies[model.ChannelEmail].Calls())
		})
	}
}
