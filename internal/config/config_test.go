package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/mvbarbosa/robodata/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	configContent := []byte(`
listen_address = ":9000"
interval = 5
data_dir = "/var/lib/robodata"
history_limit = 250
log_level = "debug"
telemetry = true
database = "/path/to/metrics.db"
`)
	configPath := filepath.Join(tempDir, "robodata.toml")
	err := os.WriteFile(configPath, configContent, 0o600)
	require.NoError(t, err)

	t.Setenv("ROBODATA_CONFIG", configPath)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ListenAddress, "Expected ListenAddress :9000")
	assert.Equal(t, 5, cfg.Interval, "Expected Interval 5")
	assert.Equal(t, "/var/lib/robodata", cfg.DataDir, "Expected DataDir /var/lib/robodata")
	assert.Equal(t, 250, cfg.HistoryLimit, "Expected HistoryLimit 250")
	assert.Equal(t, "debug", cfg.LogLevel, "Expected LogLevel debug")
	assert.True(t, cfg.Telemetry, "Expected Telemetry true")
	assert.Equal(t, "/path/to/metrics.db", cfg.TelemetryDB, "Expected TelemetryDB /path/to/metrics.db")
}

func TestLoadDefaults(t *testing.T) {
	// Point at a nonexistent file so no robodata.toml on the search path is picked up
	t.Setenv("ROBODATA_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))

	cfg, err := config.Load()
	require.NoError(t, err, "Failed to load config")

	assert.Equal(t, config.DefaultListenAddress, cfg.ListenAddress, "Expected default ListenAddress")
	assert.Equal(t, config.DefaultInterval, cfg.Interval, "Expected default Interval 2")
	assert.Equal(t, config.DefaultDataDir, cfg.DataDir, "Expected default DataDir")
	assert.Equal(t, 0, cfg.HistoryLimit, "Expected default HistoryLimit 0 (unbounded)")
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel, "Expected default LogLevel info")
	assert.False(t, cfg.Telemetry, "Expected default Telemetry false")
}

func TestLoadConfigFileInvalidFormat(t *testing.T) {
	tempDir := t.TempDir()

	configContent := []byte(`
This is not a valid TOML file
`)
	configPath := filepath.Join(tempDir, "robodata.toml")
	err := os.WriteFile(configPath, configContent, 0o600)
	require.NoError(t, err)

	t.Setenv("ROBODATA_CONFIG", configPath)

	_, err = config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to read configuration")
}

func TestInvalidLogLevel(t *testing.T) {
	tempDir := t.TempDir()

	configContent := []byte(`
log_level = "invalid"
`)
	configPath := filepath.Join(tempDir, "robodata.toml")
	err := os.WriteFile(configPath, configContent, 0o600)
	require.NoError(t, err)

	t.Setenv("ROBODATA_CONFIG", configPath)

	_, err = config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func TestInvalidInterval(t *testing.T) {
	tempDir := t.TempDir()

	configContent := []byte(`
interval = 0
`)
	configPath := filepath.Join(tempDir, "robodata.toml")
	err := os.WriteFile(configPath, configContent, 0o600)
	require.NoError(t, err)

	t.Setenv("ROBODATA_CONFIG", configPath)

	_, err = config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid interval")
}

func TestTelemetryRequiresDatabase(t *testing.T) {
	cfg := &config.Config{
		ListenAddress: ":8000",
		Interval:      2,
		DataDir:       "data",
		LogLevel:      "info",
		Telemetry:     true,
		TelemetryDB:   "",
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database required")
}
