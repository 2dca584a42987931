package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Database.DSN)
	assert.True(t, cfg.Checks.OrphanSubstations)
	assert.True(t, cfg.Checks.DuplicateCodes)
	assert.Equal(t, -90.0, cfg.Checks.Latitude.Min)
	assert.Equal(t, 180.0, cfg.Checks.Longitude.Max)
}

func TestLoadConfig_YAMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid-data.yaml")
	raw := []byte(`
database:
  dsn: host=db port=5432 user=ops dbname=grid password=secret sslmode=disable
checks:
  orphanSubstations: false
  duplicateCodes: true
  coordinateRange: true
  latitude:
    min: 4
    max: 14
  longitude:
    min: 2.5
    max: 15
`)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Contains(t, cfg.Database.DSN, "dbname=grid")
	assert.False(t, cfg.Checks.OrphanSubstations)
	assert.Equal(t, 4.0, cfg.Checks.Latitude.Min)
	assert.Equal(t, 15.0, cfg.Checks.Longitude.Max)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, exitUsage, exitCode(err))
}
