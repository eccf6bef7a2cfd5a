package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "taskboard.db", cfg.Database.DSN)
	assert.Equal(t, "rule", cfg.Extractor.Strategy)
	assert.Equal(t, "UTC", cfg.Extractor.Timezone)
	assert.Equal(t, 300*time.Millisecond, cfg.Suggest.Debounce)
	assert.Equal(t, 5, cfg.Suggest.Limit)
	assert.Equal(t, 3, cfg.LLM.RetryAttempts)
	assert.Equal(t, time.Second, cfg.LLM.RetryDelay)
	assert.Equal(t, float64(20), cfg.RateLimit.PerSecond)
	assert.Equal(t, 40, cfg.RateLimit.Burst)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_SERVER_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_DSN", "postgres://localhost/taskboard")
	t.Setenv("SUGGEST_DEBOUNCE", "150ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost/taskboard", cfg.Database.DSN)
	assert.Equal(t, 150*time.Millisecond, cfg.Suggest.Debounce)
}

func TestLoadLLMStrategyRequiresProviders(t *testing.T) {
	t.Setenv("EXTRACTOR_STRATEGY", "llm")

	_, err := Load()
	require.Error(t, err)
}
