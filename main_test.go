package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markup-chain-poc/server/internal/core"
	"github.com/markup-chain-poc/server/internal/markup/model"
	"github.com/markup-chain-poc/server/internal/markup/pipeline"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, core.Development, cfg.Environment)
	assert.Equal(t, model.DefaultRatesConfig(), cfg.Rates)
	assert.Equal(t, pipeline.Config{Sink: pipeline.SinkStdout, Scale: 2}, cfg.Pipeline)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("MARKUP_FOOD_RATE", "0.2")
	t.Setenv("PIPELINE_TRACE", "true")
	t.Setenv("PIPELINE_SINK", "log")
	t.Setenv("PIPELINE_SCALE", "3")

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, core.Production, cfg.Environment)
	assert.Equal(t, "0.2", cfg.Rates.Food)
	assert.Equal(t, pipeline.Config{Trace: true, Sink: pipeline.SinkLog, Scale: 3}, cfg.Pipeline)

	rates, err := cfg.Rates.Table()
	require.NoError(t, err)
	assert.Equal(t, "0.2", rates.RateFor(model.Food).String())
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	t.Setenv("PIPELINE_SCALE", "two")
	_, err := loadConfig()
	assert.Error(t, err)

	t.Setenv("PIPELINE_SCALE", "-1")
	_, err = loadConfig()
	assert.ErrorContains(t, err, "non-negative")
}

func TestLoadConfigAcceptsWholeUnitScale(t *testing.T) {
	t.Setenv("PIPELINE_SCALE", "0")
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, int32(0), cfg.Pipeline.Scale)
}
