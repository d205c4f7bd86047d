package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CALC_CONFIG_FILE", "")
	t.Setenv("CALC_ADDR", "")
	t.Setenv("CALC_HISTORY_LIMIT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 100, cfg.HistoryLimit)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9000\"\nauth_enabled: true\nhistory_limit: 5\nlog_level: debug\n"), 0644))

	t.Setenv("CALC_CONFIG_FILE", path)
	t.Setenv("CALC_ADDR", ":9100")
	t.Setenv("CALC_AUTH_ENABLED", "")
	t.Setenv("CALC_HISTORY_LIMIT", "not-a-number")
	t.Setenv("CALC_LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9100", cfg.Addr)
	assert.True(t, cfg.AuthEnabled)
	assert.Equal(t, 5, cfg.HistoryLimit)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadBadFile(t *testing.T) {
	t.Setenv("CALC_CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := Load()
	assert.Error(t, err)
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("CALC_TEST_BOOL", "true")
	t.Setenv("CALC_TEST_BAD_BOOL", "maybe")
	assert.True(t, getEnvAsBool("CALC_TEST_BOOL", false))
	assert.True(t, getEnvAsBool("CALC_TEST_BAD_BOOL", true))
	assert.Equal(t, "x", getEnv("CALC_TEST_UNSET", "x"))
	assert.Equal(t, 7, getEnvAsInt("CALC_TEST_UNSET", 7))
}
