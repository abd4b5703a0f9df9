package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.ServerURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.NotEmpty(t, cfg.PrefsPath)
}

func TestLoad_RejectsBadServerURL(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("server_url", "not a url")

	_, err := Load(v)
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownLogLevel(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("log_level", "chatty")

	_, err := Load(v)
	assert.Error(t, err)
}

func TestLoad_RejectsZeroTimeout(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("timeout_seconds", 0)

	_, err := Load(v)
	assert.Error(t, err)
}

func TestConfig_Timeout(t *testing.T) {
	cfg := Config{TimeoutSeconds: 30}
	assert.Equal(t, "30s", cfg.Timeout().String())
}
