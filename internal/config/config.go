// Package config defines the planscan configuration and loads it from files,
// environment variables and defaults.
package config

import (
	"fmt"
	"time"

	"github.com/openfloor/planscan/internal/classify"
	"github.com/openfloor/planscan/internal/floorplan"
)

// Config is the complete configuration for the planscan tool, covering the
// CLI, the pipeline and the HTTP server.
type Config struct {
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Mode     string `mapstructure:"mode" yaml:"mode" json:"mode"` // "debug" or "release"

	Pipeline PipelineConfig `mapstructure:"pipeline" yaml:"pipeline" json:"pipeline"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output" json:"output"`
	Server   ServerConfig   `mapstructure:"server" yaml:"server" json:"server"`
}

// PipelineConfig contains the image-to-geometry settings.
type PipelineConfig struct {
	MaxDimension    int     `mapstructure:"max_dimension" yaml:"max_dimension" json:"max_dimension"`
	EdgeThreshold   float64 `mapstructure:"edge_threshold" yaml:"edge_threshold" json:"edge_threshold"`
	Denoise         bool    `mapstructure:"denoise" yaml:"denoise" json:"denoise"`
	DenoiseRadius   float64 `mapstructure:"denoise_radius" yaml:"denoise_radius" json:"denoise_radius"`
	MinRegionPoints int     `mapstructure:"min_region_points" yaml:"min_region_points" json:"min_region_points"`
	MaxRegionPoints int     `mapstructure:"max_region_points" yaml:"max_region_points" json:"max_region_points"`

	Classifier ClassifierConfig `mapstructure:"classifier" yaml:"classifier" json:"classifier"`
	Labels     LabelsConfig     `mapstructure:"labels" yaml:"labels" json:"labels"`
}

// ClassifierConfig exposes the decision-table thresholds. Changing them is
// possible but not expected.
type ClassifierConfig struct {
	WallMinArea      float64 `mapstructure:"wall_min_area" yaml:"wall_min_area" json:"wall_min_area"`
	DoorMinArea      float64 `mapstructure:"door_min_area" yaml:"door_min_area" json:"door_min_area"`
	WindowMinArea    float64 `mapstructure:"window_min_area" yaml:"window_min_area" json:"window_min_area"`
	WallAspectHigh   float64 `mapstructure:"wall_aspect_high" yaml:"wall_aspect_high" json:"wall_aspect_high"`
	WallAspectLow    float64 `mapstructure:"wall_aspect_low" yaml:"wall_aspect_low" json:"wall_aspect_low"`
	DoorAspectLow    float64 `mapstructure:"door_aspect_low" yaml:"door_aspect_low" json:"door_aspect_low"`
	DoorAspectHigh   float64 `mapstructure:"door_aspect_high" yaml:"door_aspect_high" json:"door_aspect_high"`
	WindowAspectHigh float64 `mapstructure:"window_aspect_high" yaml:"window_aspect_high" json:"window_aspect_high"`
	WindowAspectLow  float64 `mapstructure:"window_aspect_low" yaml:"window_aspect_low" json:"window_aspect_low"`
	BoundaryMargin   int     `mapstructure:"boundary_margin" yaml:"boundary_margin" json:"boundary_margin"`
}

// LabelsConfig controls optional room-label OCR.
type LabelsConfig struct {
	Enabled  bool   `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
	Language string `mapstructure:"language" yaml:"language" json:"language"`
}

// OutputConfig contains export settings for the process command.
type OutputConfig struct {
	Format         string  `mapstructure:"format" yaml:"format" json:"format"` // "json" or "obj"
	MetersPerPixel float64 `mapstructure:"meters_per_pixel" yaml:"meters_per_pixel" json:"meters_per_pixel"`
	WallHeight     float64 `mapstructure:"wall_height" yaml:"wall_height" json:"wall_height"`
}

// ServerConfig contains HTTP server settings for the serve command.
type ServerConfig struct {
	Host            string      `mapstructure:"host" yaml:"host" json:"host"`
	Port            int         `mapstructure:"port" yaml:"port" json:"port"`
	MaxUploadMB     int64       `mapstructure:"max_upload_mb" yaml:"max_upload_mb" json:"max_upload_mb"`
	ShutdownTimeout int         `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" json:"shutdown_timeout"` // seconds
	Redis           RedisConfig `mapstructure:"redis" yaml:"redis" json:"redis"`
}

// RedisConfig controls the optional result cache.
type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
	Addr     string        `mapstructure:"addr" yaml:"addr" json:"addr"`
	Password string        `mapstructure:"password" yaml:"password" json:"password"`
	DB       int           `mapstructure:"db" yaml:"db" json:"db"`
	TTL      time.Duration `mapstructure:"ttl" yaml:"ttl" json:"ttl"`
}

// Default returns the stock configuration.
func Default() *Config {
	t := classify.DefaultThresholds()
	return &Config{
		LogLevel: "info",
		Mode:     "debug",
		Pipeline: PipelineConfig{
			MaxDimension:    800,
			EdgeThreshold:   50,
			DenoiseRadius:   1.5,
			MinRegionPoints: 10,
			MaxRegionPoints: 1000,
			Classifier: ClassifierConfig{
				WallMinArea:      t.WallMinArea,
				DoorMinArea:      t.DoorMinArea,
				WindowMinArea:    t.WindowMinArea,
				WallAspectHigh:   t.WallAspectHigh,
				WallAspectLow:    t.WallAspectLow,
				DoorAspectLow:    t.DoorAspectLow,
				DoorAspectHigh:   t.DoorAspectHigh,
				WindowAspectHigh: t.WindowAspectHigh,
				WindowAspectLow:  t.WindowAspectLow,
				BoundaryMargin:   t.BoundaryMargin,
			},
			Labels: LabelsConfig{Language: "eng"},
		},
		Output: OutputConfig{
			Format:         "json",
			MetersPerPixel: 0.05,
			WallHeight:     3.0,
		},
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			MaxUploadMB:     20,
			ShutdownTimeout: 10,
			Redis: RedisConfig{
				Addr: "localhost:6379",
				TTL:  time.Hour,
			},
		},
	}
}

// Validate checks invariants the rest of the code relies on.
func (c *Config) Validate() error {
	if c.Pipeline.MaxDimension <= 0 {
		return fmt.Errorf("pipeline.max_dimension must be positive, got %d", c.Pipeline.MaxDimension)
	}
	if c.Pipeline.EdgeThreshold < 0 {
		return fmt.Errorf("pipeline.edge_threshold must be non-negative, got %g", c.Pipeline.EdgeThreshold)
	}
	if c.Pipeline.MaxRegionPoints <= c.Pipeline.MinRegionPoints {
		return fmt.Errorf("pipeline.max_region_points (%d) must exceed min_region_points (%d)",
			c.Pipeline.MaxRegionPoints, c.Pipeline.MinRegionPoints)
	}
	if c.Output.Format != "json" && c.Output.Format != "obj" {
		return fmt.Errorf("output.format must be json or obj, got %q", c.Output.Format)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	return nil
}

// PipelineOptions translates the configuration into pipeline options.
func (c *Config) PipelineOptions() floorplan.Options {
	cl := c.Pipeline.Classifier
	return floorplan.Options{
		MaxDimension:    c.Pipeline.MaxDimension,
		EdgeThreshold:   c.Pipeline.EdgeThreshold,
		Denoise:         c.Pipeline.Denoise,
		DenoiseRadius:   c.Pipeline.DenoiseRadius,
		MinRegionPoints: c.Pipeline.MinRegionPoints,
		MaxRegionPoints: c.Pipeline.MaxRegionPoints,
		Thresholds: classify.Thresholds{
			WallMinArea:      cl.WallMinArea,
			DoorMinArea:      cl.DoorMinArea,
			WindowMinArea:    cl.WindowMinArea,
			WallAspectHigh:   cl.WallAspectHigh,
			WallAspectLow:    cl.WallAspectLow,
			DoorAspectLow:    cl.DoorAspectLow,
			DoorAspectHigh:   cl.DoorAspectHigh,
			WindowAspectHigh: cl.WindowAspectHigh,
			WindowAspectLow:  cl.WindowAspectLow,
			BoundaryMargin:   cl.BoundaryMargin,
		},
		ReadLabels:    c.Pipeline.Labels.Enabled,
		LabelLanguage: c.Pipeline.Labels.Language,
	}
}
