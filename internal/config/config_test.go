package config

import (
	"os"
	"testing"
	"time"
)

var envVars = []string{
	"SERVER_PORT",
	"HTTP_READ_TIMEOUT",
	"HTTP_WRITE_TIMEOUT",
	"HTTP_IDLE_TIMEOUT",
	"SHUTDOWN_TIMEOUT",
	"GIN_MODE",
	"ADMIN_ENABLED",
	"ADMIN_PORT",
	"LOG_LEVEL",
	"LOG_FORMAT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	originalEnv := make(map[string]string)
	for _, env := range envVars {
		originalEnv[env] = os.Getenv(env)
		os.Unsetenv(env)
	}

	t.Cleanup(func() {
		for env, val := range originalEnv {
			if val == "" {
				os.Unsetenv(env)
			} else {
				os.Setenv(env, val)
			}
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "8080" {
			t.Errorf("ServerPort = %v, want 8080", cfg.ServerPort)
		}
		if cfg.ReadTimeout != 10*time.Second {
			t.Errorf("ReadTimeout = %v, want 10s", cfg.ReadTimeout)
		}
		if cfg.WriteTimeout != 10*time.Second {
			t.Errorf("WriteTimeout = %v, want 10s", cfg.WriteTimeout)
		}
		if cfg.IdleTimeout != 120*time.Second {
			t.Errorf("IdleTimeout = %v, want 120s", cfg.IdleTimeout)
		}
		if cfg.ShutdownTimeout != 5*time.Second {
			t.Errorf("ShutdownTimeout = %v, want 5s", cfg.ShutdownTimeout)
		}
		if cfg.GinMode != "release" {
			t.Errorf("GinMode = %v, want release", cfg.GinMode)
		}
		if !cfg.AdminEnabled {
			t.Errorf("AdminEnabled = false, want true")
		}
		if cfg.AdminPort != "9090" {
			t.Errorf("AdminPort = %v, want 9090", cfg.AdminPort)
		}
		if cfg.LogLevel != "info" {
			t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
		}
		if cfg.LogFormat != "json" {
			t.Errorf("LogFormat = %v, want json", cfg.LogFormat)
		}
	})

	t.Run("custom values from environment", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("SERVER_PORT", "3000")
		os.Setenv("HTTP_READ_TIMEOUT", "2s")
		os.Setenv("SHUTDOWN_TIMEOUT", "30s")
		os.Setenv("GIN_MODE", "DEBUG")
		os.Setenv("ADMIN_PORT", "3001")
		os.Setenv("LOG_LEVEL", "debug")
		os.Setenv("LOG_FORMAT", "text")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "3000" {
			t.Errorf("ServerPort = %v, want 3000", cfg.ServerPort)
		}
		if cfg.ReadTimeout != 2*time.Second {
			t.Errorf("ReadTimeout = %v, want 2s", cfg.ReadTimeout)
		}
		if cfg.ShutdownTimeout != 30*time.Second {
			t.Errorf("ShutdownTimeout = %v, want 30s", cfg.ShutdownTimeout)
		}
		if cfg.GinMode != "debug" {
			t.Errorf("GinMode = %v, want debug", cfg.GinMode)
		}
		if cfg.AdminAddr() != ":3001" {
			t.Errorf("AdminAddr() = %v, want :3001", cfg.AdminAddr())
		}
		if cfg.ServerAddr() != ":3000" {
			t.Errorf("ServerAddr() = %v, want :3000", cfg.ServerAddr())
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
		}
		if cfg.LogFormat != "text" {
			t.Errorf("LogFormat = %v, want text", cfg.LogFormat)
		}
	})

	t.Run("unparseable durations fall back to defaults", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("HTTP_WRITE_TIMEOUT", "soon")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.WriteTimeout != 10*time.Second {
			t.Errorf("WriteTimeout = %v, want 10s", cfg.WriteTimeout)
		}
	})

	t.Run("admin listener can be disabled", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("ADMIN_ENABLED", "false")
		os.Setenv("ADMIN_PORT", "8080")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.AdminEnabled {
			t.Errorf("AdminEnabled = true, want false")
		}
	})
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"non numeric port", map[string]string{"SERVER_PORT": "http"}},
		{"port out of range", map[string]string{"SERVER_PORT": "70000"}},
		{"admin port equals server port", map[string]string{"SERVER_PORT": "8080", "ADMIN_PORT": "8080"}},
		{"negative timeout", map[string]string{"HTTP_READ_TIMEOUT": "-1s"}},
		{"unknown log level", map[string]string{"LOG_LEVEL": "verbose"}},
		{"unknown log format", map[string]string{"LOG_FORMAT": "xml"}},
		{"unknown gin mode", map[string]string{"GIN_MODE": "production"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				os.Setenv(k, v)
			}

			if _, err := Load(); err == nil {
				t.Errorf("Load() error = nil, want validation error")
			}
		})
	}
}
