package config

import (
	"fyne.io/fyne/v2"

	"github.com/SlipperySkater/clippy-ai-agent/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyConfigPath  = "agent_config_path"
	KeyBatchFile   = "last_batch_file"
	KeyMaxClips    = "max_clips_per_video"
	KeyVerboseLogs = "verbose_logging"
)

// Default values
const (
	DefaultMaxClips    = model.DefaultMaxClips
	DefaultVerboseLogs = false
	MaxClipsCeiling    = 50
)

// Settings manages application configuration persisted between sessions
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetConfigPath returns the last used agent config file path
func (s *Settings) GetConfigPath() string {
	path := s.app.Preferences().String(KeyConfigPath)
	if path == "" {
		s.SetConfigPath(model.DefaultConfigPath)
		return model.DefaultConfigPath
	}
	return path
}

// SetConfigPath remembers the agent config file path
func (s *Settings) SetConfigPath(path string) {
	s.app.Preferences().SetString(KeyConfigPath, path)
}

// GetBatchFile returns the last used batch list file path
func (s *Settings) GetBatchFile() string {
	return s.app.Preferences().String(KeyBatchFile)
}

// SetBatchFile remembers the batch list file path
func (s *Settings) SetBatchFile(path string) {
	s.app.Preferences().SetString(KeyBatchFile, path)
}

// GetMaxClips returns the number of clips to extract per video
func (s *Settings) GetMaxClips() int {
	value := s.app.Preferences().Int(KeyMaxClips)
	if value <= 0 {
		s.SetMaxClips(DefaultMaxClips)
		return DefaultMaxClips
	}
	return value
}

// SetMaxClips sets the number of clips to extract per video
func (s *Settings) SetMaxClips(count int) {
	if count < model.MinMaxClips {
		count = model.MinMaxClips
	}
	if count > MaxClipsCeiling {
		count = MaxClipsCeiling
	}
	s.app.Preferences().SetInt(KeyMaxClips, count)
}

// GetVerboseLogs returns whether debug-level logging is enabled
func (s *Settings) GetVerboseLogs() bool {
	return s.app.Preferences().BoolWithFallback(KeyVerboseLogs, DefaultVerboseLogs)
}

// SetVerboseLogs sets whether debug-level logging is enabled
func (s *Settings) SetVerboseLogs(verbose bool) {
	s.app.Preferences().SetBool(KeyVerboseLogs, verbose)
}
