package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://adopcion-api.onrender.com", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Output.Colors)
	assert.NotEmpty(t, cfg.Session.File)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "adopctl.yaml")
	content := `
api:
  base_url: https://staging.example.com
  timeout: 30s
logging:
  level: debug
session:
  file: /tmp/custom-session.yaml
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://staging.example.com", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/custom-session.yaml", cfg.Session.File)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ADOPCTL_API_BASE_URL", "https://env.example.com")
	t.Setenv("ADOPCTL_LOGGING_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.API.BaseURL)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "adopctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  base_url: https://file.example.com\n"), 0o600))
	t.Setenv("ADOPCTL_API_BASE_URL", "https://env.example.com")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.API.BaseURL)
}

func TestLoad_InvalidLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "adopctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0o600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid logging level")
}

func TestLoad_InvalidTimeout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "adopctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  timeout: -5s\n"), 0o600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "api.timeout must be positive")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
