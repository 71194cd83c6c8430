package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the base name of the configuration file.
	ConfigFileName = "planscan"

	// EnvPrefix prefixes environment variables (PLANSCAN_SERVER_PORT etc).
	EnvPrefix = "PLANSCAN"
)

// Loader reads configuration from file, environment and defaults.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader bound to the global viper instance so cobra
// flag bindings take effect.
func NewLoader() *Loader {
	return &Loader{v: viper.GetViper()}
}

// SetConfigFile pins the loader to an explicit config file path instead of
// the search paths.
func (l *Loader) SetConfigFile(path string) {
	l.v.SetConfigFile(path)
}

// Load resolves the configuration. Precedence, highest first: bound flags,
// environment variables, config file, defaults. A missing config file is not
// an error; a malformed one is.
func (l *Loader) Load() (*Config, error) {
	// A .env file next to the binary feeds the environment before viper
	// reads it. Missing files are fine.
	_ = godotenv.Load()

	l.v.SetConfigName(ConfigFileName)
	l.v.SetConfigType("yaml")
	l.v.AddConfigPath(".")
	l.v.AddConfigPath("$HOME/.config/planscan")
	l.v.AddConfigPath("/etc/planscan")

	l.v.SetEnvPrefix(EnvPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()

	l.setDefaults()

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Default()
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (l *Loader) setDefaults() {
	d := Default()

	l.v.SetDefault("log_level", d.LogLevel)
	l.v.SetDefault("mode", d.Mode)

	l.v.SetDefault("pipeline.max_dimension", d.Pipeline.MaxDimension)
	l.v.SetDefault("pipeline.edge_threshold", d.Pipeline.EdgeThreshold)
	l.v.SetDefault("pipeline.denoise", d.Pipeline.Denoise)
	l.v.SetDefault("pipeline.denoise_radius", d.Pipeline.DenoiseRadius)
	l.v.SetDefault("pipeline.min_region_points", d.Pipeline.MinRegionPoints)
	l.v.SetDefault("pipeline.max_region_points", d.Pipeline.MaxRegionPoints)
	l.v.SetDefault("pipeline.classifier.wall_min_area", d.Pipeline.Classifier.WallMinArea)
	l.v.SetDefault("pipeline.classifier.door_min_area", d.Pipeline.Classifier.DoorMinArea)
	l.v.SetDefault("pipeline.classifier.window_min_area", d.Pipeline.Classifier.WindowMinArea)
	l.v.SetDefault("pipeline.classifier.wall_aspect_high", d.Pipeline.Classifier.WallAspectHigh)
	l.v.SetDefault("pipeline.classifier.wall_aspect_low", d.Pipeline.Classifier.WallAspectLow)
	l.v.SetDefault("pipeline.classifier.door_aspect_low", d.Pipeline.Classifier.DoorAspectLow)
	l.v.SetDefault("pipeline.classifier.door_aspect_high", d.Pipeline.Classifier.DoorAspectHigh)
	l.v.SetDefault("pipeline.classifier.window_aspect_high", d.Pipeline.Classifier.WindowAspectHigh)
	l.v.SetDefault("pipeline.classifier.window_aspect_low", d.Pipeline.Classifier.WindowAspectLow)
	l.v.SetDefault("pipeline.classifier.boundary_margin", d.Pipeline.Classifier.BoundaryMargin)
	l.v.SetDefault("pipeline.labels.enabled", d.Pipeline.Labels.Enabled)
	l.v.SetDefault("pipeline.labels.language", d.Pipeline.Labels.Language)

	l.v.SetDefault("output.format", d.Output.Format)
	l.v.SetDefault("output.meters_per_pixel", d.Output.MetersPerPixel)
	l.v.SetDefault("output.wall_height", d.Output.WallHeight)

	l.v.SetDefault("server.host", d.Server.Host)
	l.v.SetDefault("server.port", d.Server.Port)
	l.v.SetDefault("server.max_upload_mb", d.Server.MaxUploadMB)
	l.v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	l.v.SetDefault("server.redis.enabled", d.Server.Redis.Enabled)
	l.v.SetDefault("server.redis.addr", d.Server.Redis.Addr)
	l.v.SetDefault("server.redis.password", d.Server.Redis.Password)
	l.v.SetDefault("server.redis.db", d.Server.Redis.DB)
	l.v.SetDefault("server.redis.ttl", d.Server.Redis.TTL)
}
