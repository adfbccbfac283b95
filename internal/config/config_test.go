package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 10.0, cfg.Thresholds.DuplicateMeters)
	assert.Equal(t, 25.0, cfg.Thresholds.VeryCloseMeters)
	assert.Equal(t, 1.0, cfg.Thresholds.NearbyRadiusKm)
	assert.Equal(t, 5, cfg.Pipeline.BatchSize)
	assert.Equal(t, ".", cfg.Export.Directory)
	assert.Equal(t, "photoroute", cfg.Export.BaseName)
	assert.Equal(t, []string{"gpx", "kml", "geojson"}, cfg.Export.Formats)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
thresholds:
  duplicate_meters: 15.0
  nearby_radius_km: 2.5
export:
  formats:
    - gpx
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 15.0, cfg.Thresholds.DuplicateMeters)
	assert.Equal(t, 2.5, cfg.Thresholds.NearbyRadiusKm)
	assert.Equal(t, []string{"gpx"}, cfg.Export.Formats)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Unset keys keep their defaults
	assert.Equal(t, 25.0, cfg.Thresholds.VeryCloseMeters)
	assert.Equal(t, 5, cfg.Pipeline.BatchSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PHOTOROUTE_THRESHOLDS__NEARBY_RADIUS_KM", "3.5")
	t.Setenv("PHOTOROUTE_LOGGING__FORMAT", "json")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3.5, cfg.Thresholds.NearbyRadiusKm)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_Validation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pipeline:\n  batch_size: 0\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "batch_size")

	require.NoError(t, os.WriteFile(path, []byte("thresholds:\n  duplicate_meters: -1\n"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}
