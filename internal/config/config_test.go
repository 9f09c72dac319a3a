package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://data.brreg.no/enhetsregisteret/api/enheter", cfg.Brreg.BaseURL)
	assert.Equal(t, 10, cfg.Brreg.PageSize)
	assert.Equal(t, 10, cfg.Brreg.TimeoutSecs)
	assert.Equal(t, 5.0, cfg.Brreg.RatePerSec)

	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "categorize.db", cfg.Cache.Path)
	assert.Equal(t, 24, cfg.Cache.TTLHours)

	assert.Equal(t, 4, cfg.Batch.Concurrency)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CATEGORIZE_BATCH_CONCURRENCY", "16")
	t.Setenv("CATEGORIZE_CACHE_ENABLED", "false")
	t.Setenv("CATEGORIZE_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Batch.Concurrency)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestDelimiterRune(t *testing.T) {
	assert.Equal(t, ',', CSVConfig{}.DelimiterRune())
	assert.Equal(t, ';', CSVConfig{Delimiter: ";"}.DelimiterRune())
	assert.Equal(t, '\t', CSVConfig{Delimiter: "\t"}.DelimiterRune())
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))

	assert.Error(t, InitLogger(LogConfig{Level: "not-a-level"}))
}
