package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-agent/internal/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Success(t *testing.T) {
	path := writeConfig(t, `{
		"bank_file": "bank.json",
		"api_key": "test-key",
		"model": "gemini-1.5-flash",
		"role": "finance",
		"count": 8,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "bank.json", cfg.BankFile)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "gemini-1.5-flash", cfg.Model)
	assert.Equal(t, types.RoleFinance, cfg.Role)
	assert.Equal(t, 8, cfg.Count)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.ErrorContains(t, err, "config path is empty")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, "{not json")

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "failed to parse config JSON")
}

func TestValidate(t *testing.T) {
	valid := Config{Role: types.RoleOperations, Count: 6}
	assert.NoError(t, valid.Validate())

	empty := Config{}
	assert.NoError(t, empty.Validate())

	negative := Config{Count: -1}
	assert.ErrorContains(t, negative.Validate(), "'count' must be non-negative")

	badRole := Config{Role: "astronaut"}
	assert.ErrorContains(t, badRole.Validate(), "unknown role")
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "flag-key"}
	merged := cfg.MergeWithDefaults(Config{
		APIKey: "file-key",
		Model:  "gemini-1.5-pro",
		Role:   types.RoleDataAnalytics,
		Count:  10,
	})

	assert.Equal(t, "flag-key", merged.APIKey)
	assert.Equal(t, "gemini-1.5-pro", merged.Model)
	assert.Equal(t, types.RoleDataAnalytics, merged.Role)
	assert.Equal(t, 10, merged.Count)
	assert.Equal(t, DefaultBankFile, merged.BankFile)
}

func TestMergeWithDefaults_BankFileFallsBackToDefault(t *testing.T) {
	cfg := Config{}
	merged := cfg.MergeWithDefaults(Config{BankFile: "from-file.json"})
	assert.Equal(t, "from-file.json", merged.BankFile)

	merged = cfg.MergeWithDefaults(Config{})
	assert.Equal(t, DefaultBankFile, merged.BankFile)
}
