package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "inventory_log.json", cfg.Paths.InventorySnapshot)
	assert.Equal(t, "grades.txt", cfg.Paths.GradesInput)
	assert.Equal(t, "grade_report.txt", cfg.Paths.GradesReport)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("DEPOT_LOGGING_LEVEL", "debug")
	t.Setenv("DEPOT_PATHS_GRADES_INPUT", "custom_grades.txt")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "custom_grades.txt", cfg.Paths.GradesInput)
	// Untouched keys keep their defaults.
	assert.Equal(t, "grade_report.txt", cfg.Paths.GradesReport)
}

func TestLoadInvalidLogLevel(t *testing.T) {
	t.Setenv("DEPOT_LOGGING_LEVEL", "loud")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Logging.Level")
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "depot.yaml")
	content := "logging:\n  level: warn\npaths:\n  inventory_snapshot: /tmp/inv.json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("DEPOT_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "/tmp/inv.json", cfg.Paths.InventorySnapshot)
	assert.Equal(t, "grades.txt", cfg.Paths.GradesInput)
}

func TestLoadConfigFileBeatenByEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "depot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: warn\n"), 0o644))
	t.Setenv("DEPOT_CONFIG", path)
	t.Setenv("DEPOT_LOGGING_LEVEL", "error")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoadMissingConfigFile(t *testing.T) {
	t.Setenv("DEPOT_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	require.Error(t, err)
}
