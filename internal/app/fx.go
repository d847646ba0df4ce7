package app

import (
	"context"
	"github.com/ilindan-dev/notification-dispatch/internal/config"
	deliveryHTTP "github.com/ilindan-dev/notification-dispatch/internal/delivery/http"
	"github.com/ilindan-dev/notification-dispatch/internal/demo"
	"github.com/ilindan-dev/notification-dispatch/internal/logger"
	"github.com/ilindan-dev/notification-dispatch/internal/notifiers"
	"github.com/ilindan-dev/notification-dispatch/internal/service"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"net/http"
)

// CommonModule provides dependencies that are shared between the API and demo applications.
var CommonModule = fx.Options(
	fx.Provide(
		// Core components
		config.NewConfig,
		logger.NewLogger,
		notifiers.NewOutput,
	),
)

// DemoModule runs the fixed channel-switching scenarios once and exits.
var DemoModule = fx.Options(
	CommonModule,
	fx.Provide(demo.NewRunner),
	fx.Invoke(func(runner *demo.Runner, shutdowner fx.Shutdowner, logger *zerolog.Logger, lc fx.Lifecycle) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				go func() {
					code := 0
					if err := runner.Run(context.Background()); err != nil {
						logger.Error().Err(err).Msg("demo failed")
						code = 1
					}
					_ = shutdowner.Shutdown(fx.ExitCode(code))
				}()
				return nil
			},
		})
	}),
)

// APIModule defines the Fx module for the HTTP API application.
var APIModule = fx.Options(
	CommonModule,
	fx.Provide(
		fx.Annotate(notifiers.NewRegistry, fx.As(new(service.ChannelResolver))),
		fx.Annotate(service.NewNotificationService, fx.As(new(deliveryHTTP.NotificationSender))),
		deliveryHTTP.NewHandlers,
		deliveryHTTP.NewServer,
	),

	fx.Invoke(func(server *deliveryHTTP.Server, lc fx.Lifecycle) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				go func() {
					if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
						panic(err)
					}
				}()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				return server.Shutdown(ctx)
			},
		})
	}),
)
