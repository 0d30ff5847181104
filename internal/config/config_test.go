package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)
	return tmpFile
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfigFile(t, `{
		"critical_weight": 0.3,
		"max_attempts": 1,
		"retry_delay_seconds": 20,
		"max_words": 12,
		"model": "gemini-2.5-flash",
		"verbose": true
	}`)

	fileCfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, fileCfg)

	cfg := DefaultConfig()
	fileCfg.ApplyTo(&cfg)

	assert.Equal(t, 0.3, cfg.CriticalWeight)
	assert.Equal(t, 1, cfg.MaxAttempts)
	assert.Equal(t, 20, cfg.RetryDelaySeconds)
	assert.Equal(t, 12, cfg.MaxWords)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{ invalid json }`)

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestApplyTo_MissingKeysKeepDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"model": "custom-model", "max_words": 10}`)

	fileCfg, err := LoadConfig(path)
	require.NoError(t, err)

	cfg := DefaultConfig()
	fileCfg.ApplyTo(&cfg)

	assert.Equal(t, 10, cfg.MaxWords)
	assert.Equal(t, "custom-model", cfg.Model)

	// Keys the file never mentions keep their defaults.
	assert.Equal(t, 0.7, cfg.CriticalWeight)
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, 15, cfg.RetryDelaySeconds)
}

func TestApplyTo_ExplicitZerosSurvive(t *testing.T) {
	// max_words 0 disables the cutoff and critical_weight 0 forces the
	// uplifting tone; both must override the non-zero defaults.
	path := writeConfigFile(t, `{"max_words": 0, "critical_weight": 0}`)

	fileCfg, err := LoadConfig(path)
	require.NoError(t, err)

	cfg := DefaultConfig()
	fileCfg.ApplyTo(&cfg)

	assert.Equal(t, 0, cfg.MaxWords)
	assert.Equal(t, 0.0, cfg.CriticalWeight)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_Ranges(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "weight above one", cfg: Config{CriticalWeight: 1.5}, wantErr: "critical_weight"},
		{name: "weight negative", cfg: Config{CriticalWeight: -0.1}, wantErr: "critical_weight"},
		{name: "negative attempts", cfg: Config{MaxAttempts: -1}, wantErr: "max_attempts"},
		{name: "negative delay", cfg: Config{RetryDelaySeconds: -5}, wantErr: "retry_delay_seconds"},
		{name: "negative cutoff", cfg: Config{MaxWords: -1}, wantErr: "max_words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
}
