package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config represents the complete application configuration
type Config struct {
	Thresholds ThresholdsConfig `koanf:"thresholds"`
	Pipeline   PipelineConfig   `koanf:"pipeline"`
	Export     ExportConfig     `koanf:"export"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// ThresholdsConfig holds the proximity thresholds used by duplicate
// grouping and nearby search
type ThresholdsConfig struct {
	DuplicateMeters float64 `koanf:"duplicate_meters"`
	VeryCloseMeters float64 `koanf:"very_close_meters"`
	NearbyRadiusKm  float64 `koanf:"nearby_radius_km"`
}

// PipelineConfig holds extraction pipeline settings
type PipelineConfig struct {
	// Number of OCR payloads processed concurrently per batch
	BatchSize int `koanf:"batch_size"`
}

// ExportConfig holds export document settings
type ExportConfig struct {
	Directory string   `koanf:"directory"`
	BaseName  string   `koanf:"base_name"`
	Formats   []string `koanf:"formats"` // gpx, kml, geojson
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// envPrefix is the prefix for environment overrides, e.g.
// PHOTOROUTE_THRESHOLDS__NEARBY_RADIUS_KM=2.5
const envPrefix = "PHOTOROUTE_"

// defaults mirror the thresholds the duplicate grouper and pipeline ship with
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"thresholds.duplicate_meters":  10.0,
		"thresholds.very_close_meters": 25.0,
		"thresholds.nearby_radius_km":  1.0,
		"pipeline.batch_size":          5,
		"export.directory":             ".",
		"export.base_name":             "photoroute",
		"export.formats":               []string{"gpx", "kml", "geojson"},
		"logging.level":                "info",
		"logging.format":               "text",
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// environment variable overrides, in that precedence order
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("load environment overrides: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Pipeline.BatchSize < 1 {
		return Config{}, fmt.Errorf("pipeline.batch_size must be at least 1, got %d", cfg.Pipeline.BatchSize)
	}
	if cfg.Thresholds.DuplicateMeters <= 0 || cfg.Thresholds.VeryCloseMeters <= 0 {
		return Config{}, fmt.Errorf("proximity thresholds must be positive")
	}

	return cfg, nil
}
