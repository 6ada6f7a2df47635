package agent

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/spf13/viper"
)

// Configuration keys
const (
	KeyMaxHighlights     = "video.max_highlights"
	KeyClipDuration      = "video.clip_duration"
	KeyOutputDir         = "output.dir"
	KeyWorkDir           = "workspace.dir"
	KeySchedulerInterval = "scheduler.interval_minutes"
	KeySchedulerWatch    = "scheduler.watch"
	KeyYtdlpBinary       = "tools.ytdlp"
	KeyFFmpegBinary      = "tools.ffmpeg"
	KeyFFprobeBinary     = "tools.ffprobe"
)

// Default values
const (
	DefaultMaxHighlights     = 5
	DefaultClipDurationSec   = 45
	DefaultOutputDir         = "clips"
	DefaultWorkDir           = "work"
	DefaultSchedulerInterval = 60

	DefaultYtdlpBinary   = "yt-dlp"
	DefaultFFmpegBinary  = "ffmpeg"
	DefaultFFprobeBinary = "ffprobe"
)

// Store is the viper-backed agent configuration. A missing config file is
// not an error; the store then serves defaults and runtime overrides only.
// Malformed YAML is an error.
type Store struct {
	mu   sync.RWMutex
	v    *viper.Viper
	path string
}

// OpenStore loads the configuration file at path
func OpenStore(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	return &Store{v: v, path: path}, nil
}

// setDefaults registers all default values
func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyMaxHighlights, DefaultMaxHighlights)
	v.SetDefault(KeyClipDuration, DefaultClipDurationSec)
	v.SetDefault(KeyOutputDir, DefaultOutputDir)
	v.SetDefault(KeyWorkDir, DefaultWorkDir)
	v.SetDefault(KeySchedulerInterval, DefaultSchedulerInterval)
	v.SetDefault(KeySchedulerWatch, []string{})
	v.SetDefault(KeyYtdlpBinary, DefaultYtdlpBinary)
	v.SetDefault(KeyFFmpegBinary, DefaultFFmpegBinary)
	v.SetDefault(KeyFFprobeBinary, DefaultFFprobeBinary)
}

// Path returns the config file path the store was opened with
func (s *Store) Path() string {
	return s.path
}

// GetInt returns the integer at key, or def when the key is absent
func (s *Store) GetInt(key string, def int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.v.Get(key) == nil {
		return def
	}
	return s.v.GetInt(key)
}

// GetString returns the string at key, or def when the key is absent
func (s *Store) GetString(key, def string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.v.Get(key) == nil {
		return def
	}
	return s.v.GetString(key)
}

// GetStringSlice returns the string slice at key, or nil when absent
func (s *Store) GetStringSlice(key string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.GetStringSlice(key)
}

// SetInt overrides the integer at key for the lifetime of the store
func (s *Store) SetInt(key string, value int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Set(key, value)
}

// SetString overrides the string at key for the lifetime of the store
func (s *Store) SetString(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Set(key, value)
}
