package toml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagesum"
	pstoml "pagesum/toml"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ReadsTOMLFile(t *testing.T) {
	path := writeConfig(t, `
[gemini]
api_key = "file-key"
model = "gemini-2.0-flash"

[extract]
dedupe_images = true
max_images = 5

[summarize]
max_prompt_len = 4096
`)

	cfg, err := pstoml.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.True(t, cfg.Extract.DedupeImages)
	assert.Equal(t, 5, cfg.Extract.MaxImages)
	assert.Equal(t, 4096, cfg.Summarize.MaxPromptLen)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := pstoml.Load(filepath.Join(t.TempDir(), "nope.toml"))

	require.NoError(t, err)
	assert.Empty(t, cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.False(t, cfg.Extract.DedupeImages)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[gemini]
api_key = "file-key"
`)
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-flash")
	t.Setenv("EXTRACT_DEDUPE_IMAGES", "true")

	cfg, err := pstoml.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.True(t, cfg.Extract.DedupeImages)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, `not toml at all [`)

	_, err := pstoml.Load(path)

	require.Error(t, err)
	assert.Equal(t, pagesum.EINVALID, pagesum.ErrorCode(err))
}
