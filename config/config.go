// Package config loads application configuration from environment
// variables and an optional TOML catalog file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/progress-hub/learning-tracker/internal/domain/course"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig

	// Course catalog
	Catalog CatalogConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string
	Environment Environment
	Debug       bool
	LogLevel    string
}

// CatalogConfig holds the course catalog settings. The course set is
// closed: only the required-credit thresholds are configurable, the
// four course identities are fixed.
type CatalogConfig struct {
	// Path of the optional TOML file overriding the thresholds.
	Path string

	// Definitions for building the catalog, in catalog order.
	Definitions []course.Definition
}

// Load loads configuration from environment variables and, when
// TRACKER_CATALOG_FILE is set, from the TOML catalog file.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "learning-tracker"),
			Environment: Environment(getEnv("APP_ENV", string(EnvDevelopment))),
			Debug:       getEnvBool("APP_DEBUG", false),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Catalog: CatalogConfig{
			Path:        getEnv("TRACKER_CATALOG_FILE", ""),
			Definitions: course.DefaultDefinitions(),
		},
	}

	if cfg.Catalog.Path != "" {
		defs, err := loadCatalogFile(cfg.Catalog.Path)
		if err != nil {
			return nil, fmt.Errorf("config: load catalog file %s: %w", cfg.Catalog.Path, err)
		}
		cfg.Catalog.Definitions = defs
	}

	return cfg, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// CATALOG FILE
// ══════════════════════════════════════════════════════════════════════════════

// catalogFile mirrors the TOML catalog document.
type catalogFile struct {
	Courses []catalogCourse `toml:"courses"`
}

// catalogCourse is one course entry of the catalog document.
type catalogCourse struct {
	Name            string `toml:"name"`
	RequiredCredits int    `toml:"required_credits"`
}

// loadCatalogFile reads threshold overrides for the closed course set.
// Every named course must belong to the catalog; omitted courses keep
// their default threshold.
func loadCatalogFile(path string) ([]course.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc catalogFile
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	defs := course.DefaultDefinitions()
	for _, entry := range doc.Courses {
		id, err := course.ParseID(entry.Name)
		if err != nil {
			return nil, fmt.Errorf("unknown course %q", entry.Name)
		}
		if entry.RequiredCredits <= 0 {
			return nil, fmt.Errorf("course %q: required_credits must be positive", entry.Name)
		}
		defs[id] = course.Definition{ID: id, RequiredCredits: entry.RequiredCredits}
	}
	return defs, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// ENV HELPERS
// ══════════════════════════════════════════════════════════════════════════════

// getEnv returns the environment variable value or a default.
func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns the boolean environment variable value or a default.
func getEnvBool(key string, defaultValue bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return parsed
}
