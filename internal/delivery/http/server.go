package http

import (
	"github.com/gin-gonic/gin"
	"github.com/ilindan-dev/notification-dispatch/internal/config"
	"github.com/rs/zerolog"
	"net/http"
)

// Server is a wrapper for the HTTP server.
type Server struct {
	*http.Server
	logger zerolog.Logger
}

// NewRouter builds the Gin engine with middleware, API routes and the health check.
func NewRouter(cfg *config.Config, handlers *Handlers, logger *zerolog.Logger) *gin.Engine {
	log := logger.With().Str("layer", "http_server").Logger()

	log.Info().Str("mode", cfg.HTTP.GinMode).Msg("setting gin mode")
	gin.SetMode(cfg.HTTP.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())

	log.Info().Msg("registering api routes")
	handlers.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

// NewServer creates and configures a new Gin server.
func NewServer(cfg *config.Config, handlers *Handlers, logger *zerolog.Logger) *Server {
	log := logger.With().Str("layer", "http_server").Logger()
	log.Info().Str("addr", cfg.HTTP.Port).Msg("initializing http server")

	server := &http.Server{
		Addr:    cfg.HTTP.Port,
		Handler: NewRouter(cfg, handlers, logger),
	}

	return &Server{server, log}
}
