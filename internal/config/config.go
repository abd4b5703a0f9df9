// Package config provides configuration utilities for the application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/omarelders/shipdash/internal/common"
)

// Config holds everything the dashboard needs to talk to the shipment API
// and to render itself.
type Config struct {
	ServerURL      string `mapstructure:"server_url" validate:"required,url"`
	LogLevel       string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat      string `mapstructure:"log_format" validate:"oneof=text json"`
	PrefsPath      string `mapstructure:"prefs_path" validate:"required"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"min=1,max=300"`
}

// Timeout returns the request timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SetDefaults installs default values on the given Viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server_url", "http://localhost:8000")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("timeout_seconds", 30)
	v.SetDefault("prefs_path", defaultPrefsPath())
}

func defaultPrefsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "shipdash.db"
	}
	return filepath.Join(home, ".config", "shipdash", "shipdash.db")
}

// Load reads the configuration out of Viper and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg.PrefsPath = ExpandPath(cfg.PrefsPath)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, common.NewUserError("invalid configuration", err)
	}
	return &cfg, nil
}
