package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir runs the test from an empty directory so no crmseed.yaml or .env is found.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
	t.Setenv("HOME", dir)
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_MODEL", "")
	return dir
}

func TestLoadDefaults(t *testing.T) {
	inTempDir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, "crmseed.db", cfg.Store.Path)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.False(t, cfg.AI.Enabled)
	assert.Equal(t, "gpt-5-mini", cfg.AI.Model)
	assert.False(t, cfg.AI.UseAI())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadFromYAML(t *testing.T) {
	dir := inTempDir(t)

	yaml := `
output:
  dir: ./data
seed: 42
server:
  port: 8088
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "crmseed.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "./data", cfg.Output.Dir)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 8088, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	inTempDir(t)
	t.Setenv("CRMSEED_OUTPUT_DIR", "/tmp/crm-out")
	t.Setenv("CRMSEED_SEED", "7")
	t.Setenv("CRMSEED_AI_ENABLED", "true")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/crm-out", cfg.Output.Dir)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "sk-test", cfg.AI.APIKey)
	assert.True(t, cfg.AI.UseAI())
}

func TestLoadDotEnv(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CRMSEED_STORE_PATH=from-dotenv.db\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("CRMSEED_STORE_PATH") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.db", cfg.Store.Path)
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		logger, err := NewLogger(LogConfig{Level: "debug", Format: format})
		require.NoError(t, err, format)
		assert.NotNil(t, logger)
	}

	_, err := NewLogger(LogConfig{Level: "loud", Format: "json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}
