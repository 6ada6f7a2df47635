package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/SlipperySkater/clippy-ai-agent/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestConfigPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	path := settings.GetConfigPath()
	if path != model.DefaultConfigPath {
		t.Errorf("Expected default config path %s, got %s", model.DefaultConfigPath, path)
	}

	// Test setting custom value
	customPath := "/etc/clippy/agent.yaml"
	settings.SetConfigPath(customPath)

	retrievedPath := settings.GetConfigPath()
	if retrievedPath != customPath {
		t.Errorf("Expected config path %s, got %s", customPath, retrievedPath)
	}
}

func TestBatchFile(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// No default; empty until set
	if settings.GetBatchFile() != "" {
		t.Error("Batch file should be empty by default")
	}

	settings.SetBatchFile("/home/user/batch.txt")
	if settings.GetBatchFile() != "/home/user/batch.txt" {
		t.Errorf("Expected batch file /home/user/batch.txt, got %s", settings.GetBatchFile())
	}
}

func TestMaxClips(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	maxClips := settings.GetMaxClips()
	if maxClips != DefaultMaxClips {
		t.Errorf("Expected default max clips %d, got %d", DefaultMaxClips, maxClips)
	}

	// Test setting custom value
	settings.SetMaxClips(8)

	retrievedMax := settings.GetMaxClips()
	if retrievedMax != 8 {
		t.Errorf("Expected max clips 8, got %d", retrievedMax)
	}

	// Test boundary values
	settings.SetMaxClips(0) // Should be clamped to 1
	if settings.GetMaxClips() != model.MinMaxClips {
		t.Error("Max clips should be clamped to minimum 1")
	}

	settings.SetMaxClips(100) // Should be clamped to the ceiling
	if settings.GetMaxClips() != MaxClipsCeiling {
		t.Errorf("Max clips should be clamped to maximum %d", MaxClipsCeiling)
	}
}

func TestVerboseLogs(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetVerboseLogs() != DefaultVerboseLogs {
		t.Error("Verbose logging should default to off")
	}

	settings.SetVerboseLogs(true)
	if !settings.GetVerboseLogs() {
		t.Error("Verbose logging should stay enabled after set")
	}
}
