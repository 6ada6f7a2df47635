package agent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestOpenStore_ReadsFile(t *testing.T) {
	path := writeConfig(t, `
video:
  max_highlights: 8
  clip_duration: 30
output:
  dir: out
scheduler:
  watch:
    - https://www.youtube.com/playlist?list=PL123
`)

	store, err := OpenStore(path)
	require.NoError(t, err)

	assert.Equal(t, path, store.Path())
	assert.Equal(t, 8, store.GetInt(KeyMaxHighlights, DefaultMaxHighlights))
	assert.Equal(t, 30, store.GetInt(KeyClipDuration, DefaultClipDurationSec))
	assert.Equal(t, "out", store.GetString(KeyOutputDir, DefaultOutputDir))
	assert.Equal(t, []string{"https://www.youtube.com/playlist?list=PL123"}, store.GetStringSlice(KeySchedulerWatch))
}

func TestOpenStore_MissingFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	store, err := OpenStore(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxHighlights, store.GetInt(KeyMaxHighlights, DefaultMaxHighlights))
	assert.Equal(t, DefaultYtdlpBinary, store.GetString(KeyYtdlpBinary, DefaultYtdlpBinary))
}

func TestOpenStore_MalformedFile(t *testing.T) {
	path := writeConfig(t, "video: [not: closed")

	_, err := OpenStore(path)
	assert.Error(t, err)
}

func TestStore_GetUsesCallerDefaultForUnknownKey(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 42, store.GetInt("no.such.key", 42))
	assert.Equal(t, "fallback", store.GetString("no.such.key", "fallback"))
}

func TestStore_SetOverridesFileValue(t *testing.T) {
	path := writeConfig(t, "video:\n  max_highlights: 8\n")

	store, err := OpenStore(path)
	require.NoError(t, err)

	store.SetInt(KeyMaxHighlights, 3)
	assert.Equal(t, 3, store.GetInt(KeyMaxHighlights, DefaultMaxHighlights))

	store.SetString(KeyOutputDir, "elsewhere")
	assert.Equal(t, "elsewhere", store.GetString(KeyOutputDir, DefaultOutputDir))
}
