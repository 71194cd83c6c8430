package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfloor/planscan/internal/classify"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefaultPipelineSettings(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 800, cfg.Pipeline.MaxDimension)
	assert.Equal(t, 50.0, cfg.Pipeline.EdgeThreshold)
	assert.False(t, cfg.Pipeline.Denoise)
	assert.Equal(t, 10, cfg.Pipeline.MinRegionPoints)
	assert.Equal(t, 1000, cfg.Pipeline.MaxRegionPoints)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 0.05, cfg.Output.MetersPerPixel)
	assert.Equal(t, 3.0, cfg.Output.WallHeight)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero max dimension", func(c *Config) { c.Pipeline.MaxDimension = 0 }},
		{"negative edge threshold", func(c *Config) { c.Pipeline.EdgeThreshold = -1 }},
		{"inverted region bounds", func(c *Config) { c.Pipeline.MaxRegionPoints = 5 }},
		{"unknown output format", func(c *Config) { c.Output.Format = "stl" }},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }},
		{"zero port", func(c *Config) { c.Server.Port = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestPipelineOptionsCarriesThresholds(t *testing.T) {
	cfg := Default()
	opts := cfg.PipelineOptions()

	assert.Equal(t, classify.DefaultThresholds(), opts.Thresholds)
	assert.Equal(t, cfg.Pipeline.MaxDimension, opts.MaxDimension)
	assert.Equal(t, cfg.Pipeline.EdgeThreshold, opts.EdgeThreshold)
	assert.Equal(t, "eng", opts.LabelLanguage)
	assert.False(t, opts.ReadLabels)
}

func TestPipelineOptionsHonorsOverrides(t *testing.T) {
	cfg := Default()
	cfg.Pipeline.EdgeThreshold = 80
	cfg.Pipeline.Classifier.BoundaryMargin = 8
	cfg.Pipeline.Labels.Enabled = true

	opts := cfg.PipelineOptions()
	assert.Equal(t, 80.0, opts.EdgeThreshold)
	assert.Equal(t, 8, opts.Thresholds.BoundaryMargin)
	assert.True(t, opts.ReadLabels)
}
