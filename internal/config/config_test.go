package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, 0.2, cfg.Temperature)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 3, cfg.Workers)
	assert.True(t, cfg.KeepPreamble)
	assert.Equal(t, "8090", cfg.Port)
	assert.Equal(t, int64(52428800), cfg.MaxUploadBytes)
	assert.Equal(t, time.Hour, cfg.StatsWindow)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("EXAM2NB_MODEL", "gpt-4o")
	t.Setenv("EXAM2NB_WORKERS", "5")
	t.Setenv("EXAM2NB_KEEP_PREAMBLE", "false")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg := Load()
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, 5, cfg.Workers)
	assert.False(t, cfg.KeepPreamble)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
}

func TestLoad_ClampsInvalidValues(t *testing.T) {
	t.Setenv("EXAM2NB_TEMPERATURE", "7.5")
	t.Setenv("EXAM2NB_WORKERS", "-1")
	t.Setenv("EXAM2NB_MAX_RETRIES", "0")

	cfg := Load()
	assert.Equal(t, 0.2, cfg.Temperature)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 3, cfg.MaxRetries)
}

func TestValidate(t *testing.T) {
	cfg := Config{}
	assert.Error(t, cfg.Validate())

	cfg.OpenAIAPIKey = "sk-test"
	assert.NoError(t, cfg.Validate())
}
