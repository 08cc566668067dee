package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defauts(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIURL, cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "development", cfg.App.Env)
	assert.False(t, cfg.App.IsProduction())
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestFromViper_NextPublicAPIURL(t *testing.T) {
	v := viper.New()
	v.Set("NEXT_PUBLIC_API_URL", "http://localhost:8000/api/")
	v.Set("NODE_ENV", "production")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/api", cfg.API.BaseURL, "le / final doit être retiré")
	assert.True(t, cfg.App.IsProduction())
}

func TestFromViper_APIURLPrioritaire(t *testing.T) {
	v := viper.New()
	v.Set("NEXT_PUBLIC_API_URL", "http://ancien/api")
	v.Set("API_URL", "http://nouveau/api")
	v.Set("API_TIMEOUT_SECONDS", "12")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "http://nouveau/api", cfg.API.BaseURL)
	assert.Equal(t, 12*time.Second, cfg.API.Timeout)
}

func TestFromViper_TimeoutInvalide(t *testing.T) {
	v := viper.New()
	v.Set("API_TIMEOUT_SECONDS", "abc")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
}
