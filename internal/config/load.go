package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default configuration values, used when neither a config file nor an
// environment variable supplies a setting.
const (
	DefaultPort     = 8080
	DefaultLogLevel = "info"
)

// Load reads configuration from an optional config file and environment
// variables. Environment variables use the TASKS_ prefix with underscores
// for nesting (e.g. TASKS_SERVER_PORT) and take precedence over values
// from the config file. Returns a populated Config struct or an error if
// loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("TASKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env vars apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
