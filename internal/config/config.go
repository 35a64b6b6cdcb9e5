package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var (
	validLogLevels  = []interface{}{"debug", "info", "warn", "error"}
	validLogFormats = []interface{}{"json", "text"}
	validGinModes   = []interface{}{"debug", "release", "test"}
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort      string        `json:"server_port"`
	ReadTimeout     time.Duration `json:"http_read_timeout"`
	WriteTimeout    time.Duration `json:"http_write_timeout"`
	IdleTimeout     time.Duration `json:"http_idle_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	GinMode         string        `json:"gin_mode"`

	// Admin listener for /metrics and probes
	AdminEnabled bool   `json:"admin_enabled"`
	AdminPort    string `json:"admin_port"`

	// Logging configuration
	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:     getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		GinMode:         strings.ToLower(getEnv("GIN_MODE", "release")),
		AdminEnabled:    getEnvBool("ADMIN_ENABLED", true),
		AdminPort:       getEnv("ADMIN_PORT", "9090"),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:       strings.ToLower(getEnv("LOG_FORMAT", "json")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.ServerPort, validation.Required, is.Port),
		validation.Field(&c.ReadTimeout, validation.Min(time.Millisecond)),
		validation.Field(&c.WriteTimeout, validation.Min(time.Millisecond)),
		validation.Field(&c.IdleTimeout, validation.Min(time.Millisecond)),
		validation.Field(&c.ShutdownTimeout, validation.Min(time.Millisecond)),
		validation.Field(&c.GinMode, validation.In(validGinModes...)),
		validation.Field(&c.AdminPort,
			validation.When(c.AdminEnabled,
				validation.Required,
				is.Port,
				validation.NotIn(c.ServerPort).Error("must differ from server_port"),
			),
		),
		validation.Field(&c.LogLevel, validation.In(validLogLevels...)),
		validation.Field(&c.LogFormat, validation.In(validLogFormats...)),
	)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ServerAddr returns the listen address of the public server.
func (c *Config) ServerAddr() string {
	return ":" + c.ServerPort
}

// AdminAddr returns the listen address of the admin server.
func (c *Config) AdminAddr() string {
	return ":" + c.AdminPort
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets an environment variable as bool with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
