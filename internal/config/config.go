package config

import (
	"errors"
	"github.com/spf13/viper"
	"strings"
)

// Config is the main struct that holds all configuration for the application.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Notifiers NotifiersConfig `mapstructure:"notifiers"`
}

// LoggerConfig holds logging-specific settings.
type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

// HTTPConfig holds HTTP server-specific settings.
type HTTPConfig struct {
	Port    string `mapstructure:"port"`
	GinMode string `mapstructure:"gin_mode"`
}

// NotifiersConfig holds configuration shared by all delivery channels.
type NotifiersConfig struct {
	// Output is the sink the stub channels print to: "stdout" or "stderr".
	Output string `mapstructure:"output"`
	// Default is the channel used when a request does not name one.
	Default string `mapstructure:"default"`
	// Enabled lists the channel kinds registered at startup.
	Enabled []string `mapstructure:"enabled"`
}

// NewConfig reads configs/config.yaml (if present) and environment variables
// into a configuration struct. Every key has a default, so the file is optional.
func NewConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("configs")

	v.SetDefault("logger.level", "info")
	v.SetDefault("http.port", ":8080")
	v.SetDefault("http.gin_mode", "release")
	v.SetDefault("notifiers.output", "stdout")
	v.SetDefault("notifiers.default", "email")
	v.SetDefault("notifiers.enabled", []string{"email", "sms", "push"})

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
