package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/progress-hub/learning-tracker/internal/domain/course"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "learning-tracker", cfg.App.Name)
	assert.Equal(t, EnvDevelopment, cfg.App.Environment)
	assert.False(t, cfg.App.Debug)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, course.DefaultDefinitions(), cfg.Catalog.Definitions)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("APP_NAME", "tracker-test")
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_DEBUG", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "tracker-test", cfg.App.Name)
	assert.Equal(t, EnvProduction, cfg.App.Environment)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

func TestLoad_CatalogFileOverridesThresholds(t *testing.T) {
	t.Setenv("TRACKER_CATALOG_FILE", "testdata/catalog.toml")

	cfg, err := Load()
	require.NoError(t, err)

	defs := cfg.Catalog.Definitions
	require.Len(t, defs, course.Count)

	// Overridden, including the case-insensitive "spring" entry.
	assert.Equal(t, 700, defs[course.Java].RequiredCredits)
	assert.Equal(t, 500, defs[course.Spring].RequiredCredits)

	// Omitted courses keep their defaults.
	assert.Equal(t, 400, defs[course.DSA].RequiredCredits)
	assert.Equal(t, 480, defs[course.Databases].RequiredCredits)
}

func TestLoad_CatalogFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		t.Setenv("TRACKER_CATALOG_FILE", "testdata/absent.toml")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("unknown course", func(t *testing.T) {
		t.Setenv("TRACKER_CATALOG_FILE", "testdata/broken.toml")
		_, err := Load()
		assert.ErrorContains(t, err, "unknown course")
	})
}

func TestLoadCatalogFile_RejectsNonPositiveCredits(t *testing.T) {
	path := t.TempDir() + "/catalog.toml"
	require.NoError(t, os.WriteFile(path, []byte("[[courses]]\nname = \"Java\"\nrequired_credits = 0\n"), 0o644))

	_, err := loadCatalogFile(path)
	assert.ErrorContains(t, err, "must be positive")
}
